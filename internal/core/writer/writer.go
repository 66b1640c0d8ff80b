// Package writer has the sender used when the runner operates standalone,
// without a host aggregator to hand samples to.  Everything submitted is
// written to the log so the binary is still useful for spot checks and for
// debugging check configs.
package writer

import (
	"github.com/hostagent/checks/internal/aggregator"
	log "github.com/sirupsen/logrus"
)

// LogWriter implements aggregator.Sender by logging every submission.
type LogWriter struct{}

var _ aggregator.Sender = &LogWriter{}

// New creates a LogWriter
func New() *LogWriter {
	return &LogWriter{}
}

// SubmitMetric implements aggregator.Sender
func (w *LogWriter) SubmitMetric(checkID string, mtype aggregator.MetricType, name string, value float64, tags []string, hostname string) {
	log.WithFields(log.Fields{
		"checkID":  checkID,
		"type":     mtype.String(),
		"value":    value,
		"tags":     tags,
		"hostname": hostname,
	}).Infof("metric %s", name)
}

// SubmitServiceCheck implements aggregator.Sender
func (w *LogWriter) SubmitServiceCheck(checkID string, name string, status aggregator.ServiceCheckStatus, tags []string, hostname string, message string) {
	log.WithFields(log.Fields{
		"checkID":  checkID,
		"status":   status.String(),
		"tags":     tags,
		"hostname": hostname,
		"message":  message,
	}).Infof("service check %s", name)
}

// SubmitEvent implements aggregator.Sender
func (w *LogWriter) SubmitEvent(checkID string, ev *aggregator.Event) {
	log.WithFields(log.Fields{
		"checkID":   checkID,
		"timestamp": ev.Timestamp,
		"tags":      ev.Tags,
	}).Infof("event %s", ev.Title)
}
