package config

import (
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfigFromContent([]byte(`
checks:
 - type: apache
`))
	require.NoError(t, err)

	assert.Equal(t, 15, conf.IntervalSeconds)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, "127.0.0.1:8095", conf.DiagnosticsAddress)

	hostname, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, hostname, conf.Hostname)
}

func TestLoadConfigPropagation(t *testing.T) {
	conf, err := LoadConfigFromContent([]byte(`
hostname: myhost
intervalSeconds: 30
proxy:
  http: http://proxy:3128
checks:
 - type: apache
 - type: apache
   intervalSeconds: 5
`))
	require.NoError(t, err)
	require.Len(t, conf.Checks, 2)

	// The first check inherits the top-level interval, the second keeps its
	// own.
	assert.Equal(t, 30, conf.Checks[0].IntervalSeconds)
	assert.Equal(t, 5, conf.Checks[1].IntervalSeconds)
	for _, check := range conf.Checks {
		assert.Equal(t, "myhost", check.Hostname)
		require.NotNil(t, check.Proxy)
		assert.Equal(t, "http://proxy:3128", check.Proxy.HTTP)
	}
}

func TestLoadConfigOtherConfigInlined(t *testing.T) {
	conf, err := LoadConfigFromContent([]byte(`
hostname: myhost
checks:
 - type: apache
   statusUrl: http://apache:8080/server-status?auto
   extraTags:
    - env:prod
`))
	require.NoError(t, err)
	require.Len(t, conf.Checks, 1)

	check := conf.Checks[0]
	assert.Equal(t, "apache", check.Type)
	assert.Equal(t, []string{"env:prod"}, check.ExtraTags)
	assert.Equal(t, "http://apache:8080/server-status?auto",
		check.OtherConfig["statusUrl"])
}

func TestLoadConfigValidation(t *testing.T) {
	_, err := LoadConfigFromContent([]byte(`
logLevel: verbose
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logLevel")

	_, err = LoadConfigFromContent([]byte(`
intervalSeconds: -1
`))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := LoadConfigFromContent([]byte("checks: [unclosed"))
	require.Error(t, err)
}

func TestLogrusLevel(t *testing.T) {
	conf := &Config{LogLevel: "debug"}
	assert.Equal(t, "debug", conf.LogrusLevel().String())

	conf = &Config{LogLevel: "bogus"}
	assert.Equal(t, "info", conf.LogrusLevel().String())
}

func TestProxyURLFor(t *testing.T) {
	pc := &ProxyConfig{
		HTTP:    "http://proxy:3128",
		HTTPS:   "http://sproxy:3128",
		NoProxy: []string{"internal.example.com"},
	}

	httpURL, _ := url.Parse("http://service.example.com/status")
	proxyURL, err := pc.URLFor(httpURL)
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "http://proxy:3128", proxyURL.String())

	httpsURL, _ := url.Parse("https://service.example.com/status")
	proxyURL, err = pc.URLFor(httpsURL)
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "http://sproxy:3128", proxyURL.String())

	skipped, _ := url.Parse("http://internal.example.com/status")
	proxyURL, err = pc.URLFor(skipped)
	require.NoError(t, err)
	assert.Nil(t, proxyURL)
}

func TestProxyFuncSkip(t *testing.T) {
	pc := &ProxyConfig{HTTP: "http://proxy:3128"}
	assert.Nil(t, pc.ProxyFunc(true))
	assert.NotNil(t, pc.ProxyFunc(false))

	var nilProxy *ProxyConfig
	assert.Nil(t, nilProxy.ProxyFunc(false))
}
