// Package httpclient has the embeddable HTTP config that checks reaching
// their target service over HTTP share.
package httpclient

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/hostagent/checks/internal/core/common/auth"
	"github.com/hostagent/checks/internal/core/config"
	"github.com/hostagent/checks/internal/utils/timeutil"
)

const defaultTimeout = 10 * time.Second

// HTTPConfig can be embedded inside a check config.
type HTTPConfig struct {
	// HTTP timeout duration for both reads and writes. This should be a
	// duration string that is accepted by https://golang.org/pkg/time/#ParseDuration
	HTTPTimeout timeutil.Duration `yaml:"httpTimeout"`

	// Basic Auth username to use on each request, if any.
	Username string `yaml:"username"`
	// Basic Auth password to use on each request, if any.
	Password string `yaml:"password" neverLog:"true"`

	// If true, the target's TLS cert will not be verified.
	SkipVerify bool `yaml:"skipVerify"`
	// Path to the CA cert that has signed the TLS cert, unnecessary if
	// `skipVerify` is set to false.
	CACertPath string `yaml:"caCertPath"`
	// Path to the client TLS cert to use for TLS required connections
	ClientCertPath string `yaml:"clientCertPath"`
	// Path to the client TLS key to use for TLS required connections
	ClientKeyPath string `yaml:"clientKeyPath"`

	// NoProxy disables the agent-level proxy for this check's requests only.
	NoProxy bool `yaml:"noProxy"`
}

// Timeout returns the configured timeout, or the default when unset.
func (h *HTTPConfig) Timeout() time.Duration {
	if h.HTTPTimeout == 0 {
		return defaultTimeout
	}
	return h.HTTPTimeout.AsDuration()
}

// Build returns a configured http.Client.  The proxy config comes from the
// top-level runner config and may be nil; the check-level NoProxy flag
// overrides it for hosts the user wants reached directly.
func (h *HTTPConfig) Build(proxy *config.ProxyConfig) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy.ProxyFunc(h.NoProxy)

	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: h.SkipVerify,
	}
	if _, err := auth.TLSConfig(transport.TLSClientConfig, h.CACertPath, h.ClientCertPath, h.ClientKeyPath); err != nil {
		return nil, err
	}

	var roundTripper http.RoundTripper = transport

	if h.Username != "" {
		roundTripper = &auth.TransportWithBasicAuth{
			RoundTripper: roundTripper,
			Username:     h.Username,
			Password:     h.Password,
		}
	}

	return &http.Client{
		Timeout:   h.Timeout(),
		Transport: roundTripper,
	}, nil
}
