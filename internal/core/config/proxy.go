package config

import (
	"net/http"
	"net/url"
)

// ProxyConfig holds the outbound proxy settings shared by all checks.  A
// check instance can opt out of the proxy entirely with its own noProxy
// setting.
type ProxyConfig struct {
	// HTTP proxy URL for plain http requests
	HTTP string `yaml:"http,omitempty"`
	// HTTPS proxy URL for https requests
	HTTPS string `yaml:"https,omitempty"`
	// NoProxy lists hostnames that must always be reached directly
	NoProxy []string `yaml:"noProxy,omitempty"`
}

// URLFor returns the proxy URL to use for the given request URL, or nil if
// the request should go direct.  Hosts listed in NoProxy always go direct.
func (pc *ProxyConfig) URLFor(reqURL *url.URL) (*url.URL, error) {
	if pc == nil {
		return nil, nil
	}

	host := reqURL.Hostname()
	for _, noProxyHost := range pc.NoProxy {
		if noProxyHost == host {
			return nil, nil
		}
	}

	var raw string
	if reqURL.Scheme == "https" {
		raw = pc.HTTPS
	} else {
		raw = pc.HTTP
	}
	if raw == "" {
		return nil, nil
	}
	return url.Parse(raw)
}

// ProxyFunc is suitable for http.Transport.Proxy.  When skip is true the
// returned func disables the proxy altogether, which is what a check's
// noProxy option maps to.
func (pc *ProxyConfig) ProxyFunc(skip bool) func(*http.Request) (*url.URL, error) {
	if pc == nil || skip {
		return nil
	}
	return func(req *http.Request) (*url.URL, error) {
		return pc.URLFor(req.URL)
	}
}
