// Package checktest has test doubles for the aggregator boundary so checks
// can be exercised without a host process.
package checktest

import (
	"sync"

	"github.com/hostagent/checks/internal/aggregator"
)

// MetricCall records one SubmitMetric invocation.
type MetricCall struct {
	CheckID  string
	Type     aggregator.MetricType
	Name     string
	Value    float64
	Tags     []string
	Hostname string
}

// ServiceCheckCall records one SubmitServiceCheck invocation.
type ServiceCheckCall struct {
	CheckID  string
	Name     string
	Status   aggregator.ServiceCheckStatus
	Tags     []string
	Hostname string
	Message  string
}

// EventCall records one SubmitEvent invocation.
type EventCall struct {
	CheckID string
	Event   *aggregator.Event
}

// CapturingSender can be used in place of the real aggregator sender to
// capture everything a check submits.
type CapturingSender struct {
	// Use a lock since checks are allowed to submit from multiple
	// goroutines.
	lock sync.Mutex

	Metrics       []MetricCall
	ServiceChecks []ServiceCheckCall
	Events        []EventCall
}

var _ aggregator.Sender = &CapturingSender{}

// SubmitMetric implements aggregator.Sender
func (s *CapturingSender) SubmitMetric(checkID string, mtype aggregator.MetricType, name string, value float64, tags []string, hostname string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Metrics = append(s.Metrics, MetricCall{
		CheckID:  checkID,
		Type:     mtype,
		Name:     name,
		Value:    value,
		Tags:     tags,
		Hostname: hostname,
	})
}

// SubmitServiceCheck implements aggregator.Sender
func (s *CapturingSender) SubmitServiceCheck(checkID string, name string, status aggregator.ServiceCheckStatus, tags []string, hostname string, message string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ServiceChecks = append(s.ServiceChecks, ServiceCheckCall{
		CheckID:  checkID,
		Name:     name,
		Status:   status,
		Tags:     tags,
		Hostname: hostname,
		Message:  message,
	})
}

// SubmitEvent implements aggregator.Sender
func (s *CapturingSender) SubmitEvent(checkID string, ev *aggregator.Event) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Events = append(s.Events, EventCall{CheckID: checkID, Event: ev})
}

// MetricsNamed returns all captured metric calls with the given name.
func (s *CapturingSender) MetricsNamed(name string) []MetricCall {
	s.lock.Lock()
	defer s.lock.Unlock()
	var out []MetricCall
	for _, m := range s.Metrics {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}

// Reset discards everything captured so far.
func (s *CapturingSender) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Metrics = nil
	s.ServiceChecks = nil
	s.Events = nil
}
