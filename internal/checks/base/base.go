// Package base has the embeddable core that all checks build on.  It owns
// submission to the host aggregator: value handling, tag normalization,
// deprecation shims, and the per-instance warning list surfaced in status
// output.
package base

import (
	"sync"

	"github.com/hostagent/checks/internal/aggregator"
	"github.com/hostagent/checks/internal/metricname"
	"github.com/sirupsen/logrus"
)

const (
	deprecationIncrement  = "increment"
	deprecationDeviceName = "device_name"
)

var deprecationMessages = map[string]string{
	deprecationIncrement: "DEPRECATION NOTICE: `Increment`/`Decrement` are deprecated, please use " +
		"`Gauge` or `Count` instead, with a different metric name",
	deprecationDeviceName: "DEPRECATION NOTICE: `deviceName` is deprecated, please use a `device:` " +
		"tag in the `tags` list instead",
}

// CheckBase is embedded by every check implementation.  It is initialized by
// the manager before Configure is called, with the aggregator Sender injected
// so tests can substitute a capturing one.
type CheckBase struct {
	name      string
	checkID   string
	hostname  string
	sender    aggregator.Sender
	log       logrus.FieldLogger
	extraTags []string

	lock sync.Mutex
	// Warnings accumulated since the last drain, shown on the status page
	warnings []string
	// Deprecation notices fire at most once per check instance, never
	// process-globally.
	firedDeprecations map[string]bool
}

// InitCheck wires the base up with its identity and the host aggregator
// boundary.  Must be called before any submission method.
func (cb *CheckBase) InitCheck(name, checkID, hostname string, sender aggregator.Sender, extraTags []string) {
	cb.name = name
	cb.checkID = checkID
	cb.hostname = hostname
	cb.sender = sender
	cb.extraTags = extraTags
	cb.firedDeprecations = map[string]bool{}
	cb.log = logrus.WithFields(logrus.Fields{
		"checkName": name,
		"checkID":   checkID,
	})
}

// Core returns the base itself; it exists so the manager can reach the base
// through the generic check interface.
func (cb *CheckBase) Core() *CheckBase {
	return cb
}

// Name of the check type
func (cb *CheckBase) Name() string {
	return cb.name
}

// CheckID uniquely identifies this configured instance
func (cb *CheckBase) CheckID() string {
	return cb.checkID
}

// Hostname the agent reports metrics with
func (cb *CheckBase) Hostname() string {
	return cb.hostname
}

// Log returns the check's logger
func (cb *CheckBase) Log() logrus.FieldLogger {
	return cb.log
}

// NormalizeMetricName turns an arbitrary string into a well-formed metric
// name (see the metricname package).
func (cb *CheckBase) NormalizeMetricName(name, prefix string, fixCase bool) string {
	return metricname.Normalize(name, prefix, fixCase)
}

// Warn records a warning message to be displayed in status output, in
// addition to logging it.
func (cb *CheckBase) Warn(message string) {
	cb.log.Warning(message)

	cb.lock.Lock()
	cb.warnings = append(cb.warnings, message)
	cb.lock.Unlock()
}

// GetWarnings drains and returns the accumulated warning messages.
func (cb *CheckBase) GetWarnings() []string {
	cb.lock.Lock()
	defer cb.lock.Unlock()

	warnings := cb.warnings
	cb.warnings = nil
	return warnings
}

// logDeprecation logs a deprecation notice at most once per check instance
// for the given key.
func (cb *CheckBase) logDeprecation(key string) {
	cb.lock.Lock()
	fired := cb.firedDeprecations[key]
	cb.firedDeprecations[key] = true
	cb.lock.Unlock()

	if !fired {
		cb.log.Warning(deprecationMessages[key])
	}
}
