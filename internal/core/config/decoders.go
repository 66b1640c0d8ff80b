package config

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/creasty/defaults"
	"github.com/hostagent/checks/internal/core/config/validation"
	"github.com/pkg/errors"
)

// LoadConfig reads and parses the runner config at the given path.
func LoadConfig(path string) (*Config, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %s", path)
	}
	return LoadConfigFromContent(contents)
}

// LoadConfigFromContent transforms yaml to a Config struct
func LoadConfigFromContent(fileContent []byte) (*Config, error) {
	config := &Config{}

	if err := defaults.Set(config); err != nil {
		panic(fmt.Sprintf("Config defaults are wrong types: %s", err))
	}

	if err := yaml.Unmarshal(fileContent, config); err != nil {
		return nil, err
	}

	if err := validation.ValidateStruct(config); err != nil {
		return nil, err
	}

	return config.initialize()
}
