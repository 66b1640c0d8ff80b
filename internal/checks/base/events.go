package base

import (
	"fmt"
	"unicode/utf8"

	"github.com/hostagent/checks/internal/aggregator"
)

// EventSample is a one-off occurrence to submit.  Field types are enforced at
// submission time so the aggregator boundary only ever sees clean values:
// the timestamp is truncated to whole seconds and the aggregation key is
// coerced to a string.
type EventSample struct {
	Title string
	Text  string
	// Timestamp in epoch seconds; fractional seconds are discarded
	Timestamp float64
	Priority  string
	Host      string
	Tags      []interface{}
	AlertType string
	// AggregationKey groups related events together; any value is accepted
	// and coerced to a string
	AggregationKey interface{}
	SourceTypeName string
}

// Event submits an event.  A title or text that is not valid UTF-8 aborts the
// submission of the whole event with a warning.
func (cb *CheckBase) Event(ev EventSample) {
	if !utf8.ValidString(ev.Title) || !utf8.ValidString(ev.Text) {
		cb.log.Warning("Error encoding event field to utf-8, can't submit event")
		return
	}

	out := &aggregator.Event{
		Title:          ev.Title,
		Text:           ev.Text,
		Timestamp:      int64(ev.Timestamp),
		Priority:       ev.Priority,
		Host:           ev.Host,
		Tags:           cb.normalizeTags(ev.Tags, ""),
		AlertType:      ev.AlertType,
		SourceTypeName: ev.SourceTypeName,
	}
	if ev.AggregationKey != nil {
		out.AggregationKey = fmt.Sprintf("%v", ev.AggregationKey)
	}

	cb.sender.SubmitEvent(cb.checkID, out)
}
