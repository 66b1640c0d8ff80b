// Package aggregator defines the boundary between checks and the host
// aggregator that receives their samples.  Checks never talk to the host
// process directly; they are handed a Sender at configure time, which makes
// it trivial to substitute a capturing implementation in tests.
package aggregator

// MetricType is the kind of aggregation the host applies to a submitted
// sample.
type MetricType int

const (
	// Gauge tracks the last reported value.
	Gauge MetricType = iota
	// Rate is converted to a per-second rate between flushes.
	Rate
	// Count is summed over the flush interval.
	Count
	// MonotonicCount submits the raw value of an ever-increasing counter
	// and lets the host compute deltas.
	MonotonicCount
	// Counter is the legacy raw counter type.
	//
	// Deprecated: submit a Gauge or Count with a different metric name
	// instead.
	Counter
	// Histogram tracks the statistical distribution of values.
	Histogram
	// Historate computes per-interval rates and tracks their distribution.
	Historate
)

func (mt MetricType) String() string {
	switch mt {
	case Gauge:
		return "gauge"
	case Rate:
		return "rate"
	case Count:
		return "count"
	case MonotonicCount:
		return "monotonic_count"
	case Counter:
		return "counter"
	case Histogram:
		return "histogram"
	case Historate:
		return "historate"
	default:
		return "unknown"
	}
}

// ServiceCheckStatus is the reported health of a monitored service.
type ServiceCheckStatus int

const (
	// ServiceCheckOK means the service is healthy
	ServiceCheckOK ServiceCheckStatus = 0
	// ServiceCheckWarning means the service is degraded
	ServiceCheckWarning ServiceCheckStatus = 1
	// ServiceCheckCritical means the service is down or unreachable
	ServiceCheckCritical ServiceCheckStatus = 2
	// ServiceCheckUnknown means the status could not be determined
	ServiceCheckUnknown ServiceCheckStatus = 3
)

func (s ServiceCheckStatus) String() string {
	switch s {
	case ServiceCheckOK:
		return "OK"
	case ServiceCheckWarning:
		return "WARNING"
	case ServiceCheckCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Event is a one-off occurrence submitted by a check, as opposed to a
// periodically sampled metric.
type Event struct {
	Title          string   `json:"msg_title"`
	Text           string   `json:"msg_text"`
	Timestamp      int64    `json:"timestamp"`
	Priority       string   `json:"priority,omitempty"`
	Host           string   `json:"host,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	AlertType      string   `json:"alert_type,omitempty"`
	AggregationKey string   `json:"aggregation_key,omitempty"`
	SourceTypeName string   `json:"source_type_name,omitempty"`
}

// Sender accepts samples from a single check invocation.  Implementations
// must be safe for concurrent use since checks are allowed to submit from
// multiple goroutines.
type Sender interface {
	SubmitMetric(checkID string, mtype MetricType, name string, value float64, tags []string, hostname string)
	SubmitServiceCheck(checkID string, name string, status ServiceCheckStatus, tags []string, hostname string, message string)
	SubmitEvent(checkID string, ev *Event)
}
