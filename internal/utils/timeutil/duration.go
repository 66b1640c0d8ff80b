// Package timeutil has a YAML-friendly wrapper around time.Duration.
package timeutil

import (
	"time"

	"github.com/pkg/errors"
)

// Duration is a time.Duration that unmarshals from a duration string such as
// "10s" or "1m30s".
type Duration time.Duration

// AsDuration converts back to the stdlib type
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(str)
	if err != nil {
		return errors.Wrapf(err, "could not parse duration %q", str)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
