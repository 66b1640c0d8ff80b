// Package apache monitors Apache webserver instances using the information
// provided by `mod_status`.  The status endpoint must be queried with the
// `?auto` parameter so the output is machine readable, e.g.
//
//     checks:
//      - type: apache
//        statusUrl: http://localhost/server-status?auto
package apache

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hostagent/checks/internal/aggregator"
	"github.com/hostagent/checks/internal/checks"
	"github.com/hostagent/checks/internal/checks/base"
	"github.com/hostagent/checks/internal/core/common/httpclient"
	"github.com/hostagent/checks/internal/core/config"
	"github.com/pkg/errors"
)

const checkType = "apache"

func init() {
	checks.Register(checkType, func() interface{} { return &Check{} }, &Config{})
}

// Config is the check-specific config with the generic config embedded
type Config struct {
	config.CheckConfig    `yaml:",inline"`
	httpclient.HTTPConfig `yaml:",inline"`

	// The URL of the Apache mod_status endpoint; must include `?auto`
	StatusURL string `yaml:"statusUrl" default:"http://localhost/server-status?auto"`
}

// Validate the apache-specific config
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.StatusURL)
	if err != nil {
		return errors.Wrapf(err, "statusUrl %q is not a valid URL", c.StatusURL)
	}
	if parsed.Host == "" {
		return errors.Errorf("statusUrl %q has no host", c.StatusURL)
	}
	return nil
}

// Check collects Apache worker and connection metrics
type Check struct {
	base.CheckBase

	conf   *Config
	client *http.Client
	tags   []interface{}
}

// Configure the check with a validated config
func (c *Check) Configure(conf *Config) error {
	c.conf = conf

	client, err := conf.HTTPConfig.Build(conf.Proxy)
	if err != nil {
		return errors.WithMessage(err, "could not build HTTP client")
	}
	c.client = client

	parsed, err := url.Parse(conf.StatusURL)
	if err != nil {
		return err
	}
	port := parsed.Port()
	if port == "" {
		if parsed.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	c.tags = []interface{}{
		"apache_host:" + parsed.Hostname(),
		"port:" + port,
	}

	return nil
}

// Run does one round of collection from the status endpoint.
func (c *Check) Run(ctx context.Context) error {
	body, err := c.fetchStatus(ctx)
	if err != nil {
		c.ServiceCheck(serviceCheckName, aggregator.ServiceCheckCritical, c.tags, "", err.Error())
		return err
	}
	defer body.Close()

	submitted := c.parseAndSubmit(body)
	if submitted == 0 {
		c.ServiceCheck(serviceCheckName, aggregator.ServiceCheckCritical, c.tags, "",
			"No metrics were fetched for this instance. Make sure the status endpoint is queried with ?auto.")
		return errors.Errorf("no recognized metrics in mod_status output from %s", c.conf.StatusURL)
	}

	c.ServiceCheck(serviceCheckName, aggregator.ServiceCheckOK, c.tags, "", "")
	return nil
}

func (c *Check) fetchStatus(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.conf.StatusURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to %s", c.conf.StatusURL)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("status endpoint %s returned HTTP %d", c.conf.StatusURL, resp.StatusCode)
	}
	return resp.Body, nil
}

// parseAndSubmit reads the `key: value` lines of the auto status output and
// submits every recognized field, returning how many samples were submitted.
func (c *Check) parseAndSubmit(body io.Reader) int {
	submitted := 0

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			continue
		}
		field, rawValue := parts[0], parts[1]

		if field == "Scoreboard" {
			submitted += c.submitScoreboard(rawValue)
			continue
		}

		gaugeName, isGauge := gauges[field]
		rateName, isRate := rates[field]
		if !isGauge && !isRate {
			continue
		}

		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			c.Log().WithField("field", field).Debugf("Attempted to parse %q as a number and failed, skipping", rawValue)
			continue
		}
		if kilobyteFields[field] {
			value *= 1024
		}

		if isGauge {
			c.Gauge(gaugeName, value, c.tags, "")
			submitted++
		}
		if isRate {
			c.Rate(rateName, value, c.tags, "")
			submitted++
		}
	}
	if err := scanner.Err(); err != nil {
		c.Warn(fmt.Sprintf("Error reading mod_status output: %s", err))
	}

	return submitted
}

// submitScoreboard counts the worker slots in each state of the scoreboard
// string and submits a gauge per state.
func (c *Check) submitScoreboard(scoreboard string) int {
	counts := map[string]float64{}
	for _, name := range scoreboardStates {
		counts[name] = 0
	}
	for i := 0; i < len(scoreboard); i++ {
		if name, ok := scoreboardStates[scoreboard[i]]; ok {
			counts[name]++
		}
	}

	for name, count := range counts {
		c.Gauge(name, count, c.tags, "")
	}
	return len(counts)
}
