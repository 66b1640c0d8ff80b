// Package config contains the configuration structures for the check runner
// and the individual checks, along with the logic to load and validate them
// from YAML.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Config is the top-level configuration of the check runner.
type Config struct {
	// Hostname to report metrics with.  If blank, the OS-reported hostname
	// is used.
	Hostname string `yaml:"hostname,omitempty"`
	// IntervalSeconds is the default collection interval for checks that
	// don't specify their own.
	IntervalSeconds int `yaml:"intervalSeconds" default:"15" validate:"gt=0"`
	// LogLevel of the runner's own output
	LogLevel string `yaml:"logLevel" default:"info" validate:"oneof=debug info warn error"`
	// DiagnosticsAddress is the listen address of the local status/metrics
	// endpoint.  Set to an empty string to disable it.
	DiagnosticsAddress string `yaml:"diagnosticsAddress" default:"127.0.0.1:8095"`
	// Proxy settings used for checks that make outbound HTTP requests
	Proxy *ProxyConfig `yaml:"proxy,omitempty"`
	// Checks to run
	Checks []CheckConfig `yaml:"checks" default:"[]"`
}

// initialize propagates top-level settings down to the individual check
// configs and fills in anything that can be derived from the environment.
func (c *Config) initialize() (*Config, error) {
	if c.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, err
		}
		log.WithField("hostname", hostname).Info("Using hostname from OS")
		c.Hostname = hostname
	}

	for i := range c.Checks {
		c.Checks[i].Hostname = c.Hostname
		c.Checks[i].Proxy = c.Proxy
		if c.Checks[i].IntervalSeconds == 0 {
			c.Checks[i].IntervalSeconds = c.IntervalSeconds
		}
	}

	return c, nil
}

// LogrusLevel returns the parsed log level, defaulting to info on bad input.
func (c *Config) LogrusLevel() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
