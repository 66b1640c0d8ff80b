package base

import (
	"github.com/hostagent/checks/internal/aggregator"
)

// MetricSample is one sample to submit.  A nil Value means the sample is
// absent and submission is a silent no-op, so checks can pass through
// optional fields from the monitored service without guarding every call.
type MetricSample struct {
	Name  string
	Value *float64
	// Tags are coerced to strings on submission; entries that cannot be
	// coerced are dropped with a warning.
	Tags     []interface{}
	Hostname string
	// DeviceName is translated to a `device:` tag.
	//
	// Deprecated: put a `device:` tag in Tags instead.
	DeviceName string
}

// SubmitMetric sends one sample to the aggregator.  The empty hostname is
// passed through and means "the host this agent runs on" to the aggregator.
func (cb *CheckBase) SubmitMetric(mtype aggregator.MetricType, sample MetricSample) {
	if sample.Value == nil {
		// ignore metric sample
		return
	}

	tags := cb.normalizeTags(sample.Tags, sample.DeviceName)
	cb.sender.SubmitMetric(cb.checkID, mtype, sample.Name, *sample.Value, tags, sample.Hostname)
}

// Gauge submits a gauge sample
func (cb *CheckBase) Gauge(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.Gauge, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Rate submits a point from which the aggregator computes a per-second rate
func (cb *CheckBase) Rate(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.Rate, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Count submits a count sample summed over the flush interval
func (cb *CheckBase) Count(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.Count, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// MonotonicCount submits the raw value of an ever-increasing counter
func (cb *CheckBase) MonotonicCount(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.MonotonicCount, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Histogram submits a histogram sample
func (cb *CheckBase) Histogram(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.Histogram, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Historate submits a histogram-of-rates sample
func (cb *CheckBase) Historate(name string, value float64, tags []interface{}, hostname string) {
	cb.SubmitMetric(aggregator.Historate, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Increment bumps a raw counter by one.
//
// Deprecated: use Gauge or Count with a different metric name.
func (cb *CheckBase) Increment(name string, tags []interface{}, hostname string) {
	cb.logDeprecation(deprecationIncrement)
	value := 1.0
	cb.SubmitMetric(aggregator.Counter, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// Decrement lowers a raw counter by one.
//
// Deprecated: use Gauge or Count with a different metric name.
func (cb *CheckBase) Decrement(name string, tags []interface{}, hostname string) {
	cb.logDeprecation(deprecationIncrement)
	value := -1.0
	cb.SubmitMetric(aggregator.Counter, MetricSample{Name: name, Value: &value, Tags: tags, Hostname: hostname})
}

// ServiceCheck reports the health of a monitored service.  Hostname and
// message may be empty.
func (cb *CheckBase) ServiceCheck(name string, status aggregator.ServiceCheckStatus, tags []interface{}, hostname string, message string) {
	normalized := cb.normalizeTags(tags, "")
	cb.sender.SubmitServiceCheck(cb.checkID, name, status, normalized, hostname, message)
}
