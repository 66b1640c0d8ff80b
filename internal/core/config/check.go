package config

// CheckConfig is used to configure check instances.  The fields common to
// every check live here; anything custom to a particular check type ends up
// in OtherConfig and is decoded into the check's own config struct.
type CheckConfig struct {
	Type string `yaml:"type,omitempty"`
	// IntervalSeconds will default to the top-level IntervalSeconds value if
	// unset or 0
	IntervalSeconds int `yaml:"intervalSeconds,omitempty" default:"0"`
	// ExtraTags attached to every sample this check submits
	ExtraTags []string `yaml:"extraTags,omitempty"`
	// OtherConfig is everything else that is custom to a particular check
	OtherConfig map[string]interface{} `yaml:",inline" default:"{}" json:"-"`
	// ValidationError is where a message concerning validation issues can go
	// so that diagnostics can output it.
	ValidationError string `yaml:"-" json:"-"`
	// The remaining fields are propagated from the top-level config and
	// cannot be set by the user directly on the check
	Hostname string       `yaml:"-"`
	Proxy    *ProxyConfig `yaml:"-"`
}

// CoreConfig provides a way of getting the CheckConfig when embedded in a
// struct that is referenced through a more generic interface.
func (cc *CheckConfig) CoreConfig() *CheckConfig {
	return cc
}

// GetOtherConfig returns generic config as a map
func (cc *CheckConfig) GetOtherConfig() map[string]interface{} {
	return cc.OtherConfig
}

// CheckCustomConfig represents a check-specific configuration struct that
// embeds CheckConfig.
type CheckCustomConfig interface {
	CoreConfig() *CheckConfig
}

// CustomConfigurable is anything that can hold arbitrary extra config to be
// decoded into a more specific struct.
type CustomConfigurable interface {
	GetOtherConfig() map[string]interface{}
}
