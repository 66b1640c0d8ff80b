package base

import (
	"strings"
	"testing"

	"github.com/hostagent/checks/internal/aggregator"
	"github.com/hostagent/checks/internal/checktest"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheck() (*CheckBase, *checktest.CapturingSender) {
	sender := &checktest.CapturingSender{}
	cb := &CheckBase{}
	cb.InitCheck("test", "test:0", "testhost", sender, nil)
	return cb, sender
}

func TestSubmitMetric(t *testing.T) {
	cb, sender := newTestCheck()

	cb.Gauge("some.metric", 42, []interface{}{"foo:bar"}, "")

	require.Len(t, sender.Metrics, 1)
	m := sender.Metrics[0]
	assert.Equal(t, "test:0", m.CheckID)
	assert.Equal(t, aggregator.Gauge, m.Type)
	assert.Equal(t, "some.metric", m.Name)
	assert.Equal(t, 42.0, m.Value)
	assert.Equal(t, []string{"foo:bar"}, m.Tags)
	assert.Equal(t, "", m.Hostname)
}

func TestSubmitMetricTypes(t *testing.T) {
	cb, sender := newTestCheck()

	cb.Rate("m.rate", 1, nil, "")
	cb.Count("m.count", 2, nil, "")
	cb.MonotonicCount("m.mono", 3, nil, "")
	cb.Histogram("m.hist", 4, nil, "")
	cb.Historate("m.historate", 5, nil, "")

	require.Len(t, sender.Metrics, 5)
	assert.Equal(t, aggregator.Rate, sender.Metrics[0].Type)
	assert.Equal(t, aggregator.Count, sender.Metrics[1].Type)
	assert.Equal(t, aggregator.MonotonicCount, sender.Metrics[2].Type)
	assert.Equal(t, aggregator.Histogram, sender.Metrics[3].Type)
	assert.Equal(t, aggregator.Historate, sender.Metrics[4].Type)
}

func TestSubmitMetricNilValueIsNoop(t *testing.T) {
	cb, sender := newTestCheck()

	cb.SubmitMetric(aggregator.Gauge, MetricSample{Name: "absent.metric", Value: nil})

	assert.Empty(t, sender.Metrics)
}

func TestTagCoercion(t *testing.T) {
	cb, sender := newTestCheck()

	tags := []interface{}{
		"plain:tag",
		[]byte("bytes:tag"),
		7,
		3.5,
		true,
		// Uncoercible: dropped with a warning, everything else survives
		struct{ a int }{1},
	}
	cb.Gauge("m", 1, tags, "")

	require.Len(t, sender.Metrics, 1)
	assert.Equal(t, []string{"plain:tag", "bytes:tag", "7", "3.5", "true"}, sender.Metrics[0].Tags)
	assert.Len(t, sender.Metrics[0].Tags, len(tags)-1)
}

func TestTagCoercionInvalidUTF8(t *testing.T) {
	cb, sender := newTestCheck()

	cb.Gauge("m", 1, []interface{}{"ok", string([]byte{0xff, 0xfe}), nil}, "")

	require.Len(t, sender.Metrics, 1)
	assert.Equal(t, []string{"ok"}, sender.Metrics[0].Tags)
}

func TestTagsInputNotMutated(t *testing.T) {
	cb, sender := newTestCheck()

	tags := []interface{}{"a", "b"}
	cb.Gauge("m", 1, tags, "")

	require.Len(t, sender.Metrics, 1)
	sender.Metrics[0].Tags[0] = "changed"
	assert.Equal(t, "a", tags[0])
}

func TestExtraTagsAppended(t *testing.T) {
	sender := &checktest.CapturingSender{}
	cb := &CheckBase{}
	cb.InitCheck("test", "test:0", "testhost", sender, []string{"env:prod"})

	cb.Gauge("m", 1, []interface{}{"foo:bar"}, "")

	require.Len(t, sender.Metrics, 1)
	assert.Equal(t, []string{"foo:bar", "env:prod"}, sender.Metrics[0].Tags)
}

func TestDeviceNameDeprecation(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	cb, sender := newTestCheck()

	value := 1.0
	sample := MetricSample{Name: "m", Value: &value, DeviceName: "sda1"}
	cb.SubmitMetric(aggregator.Gauge, sample)
	cb.SubmitMetric(aggregator.Gauge, sample)

	require.Len(t, sender.Metrics, 2)
	assert.Equal(t, []string{"device:sda1"}, sender.Metrics[0].Tags)

	// The deprecation notice fires only once per check instance
	notices := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, "DEPRECATION NOTICE") {
			notices++
		}
	}
	assert.Equal(t, 1, notices)
}

func TestIncrementDecrement(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	cb, sender := newTestCheck()

	cb.Increment("m.counter", nil, "")
	cb.Decrement("m.counter", nil, "")

	require.Len(t, sender.Metrics, 2)
	assert.Equal(t, aggregator.Counter, sender.Metrics[0].Type)
	assert.Equal(t, 1.0, sender.Metrics[0].Value)
	assert.Equal(t, aggregator.Counter, sender.Metrics[1].Type)
	assert.Equal(t, -1.0, sender.Metrics[1].Value)

	notices := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && strings.Contains(entry.Message, "DEPRECATION NOTICE") {
			notices++
		}
	}
	assert.Equal(t, 1, notices)
}

func TestServiceCheck(t *testing.T) {
	cb, sender := newTestCheck()

	cb.ServiceCheck("svc.can_connect", aggregator.ServiceCheckCritical, []interface{}{"url:http://x"}, "", "boom")

	require.Len(t, sender.ServiceChecks, 1)
	sc := sender.ServiceChecks[0]
	assert.Equal(t, "svc.can_connect", sc.Name)
	assert.Equal(t, aggregator.ServiceCheckCritical, sc.Status)
	assert.Equal(t, []string{"url:http://x"}, sc.Tags)
	assert.Equal(t, "", sc.Hostname)
	assert.Equal(t, "boom", sc.Message)
}

func TestEventFieldCoercion(t *testing.T) {
	cb, sender := newTestCheck()

	cb.Event(EventSample{
		Title:          "deploy finished",
		Text:           "all good",
		Timestamp:      1561161600.9,
		Tags:           []interface{}{"svc:web", 5},
		AggregationKey: 12345,
	})

	require.Len(t, sender.Events, 1)
	ev := sender.Events[0].Event
	assert.Equal(t, int64(1561161600), ev.Timestamp)
	assert.Equal(t, []string{"svc:web", "5"}, ev.Tags)
	assert.Equal(t, "12345", ev.AggregationKey)
}

func TestEventInvalidUTF8Dropped(t *testing.T) {
	cb, sender := newTestCheck()

	cb.Event(EventSample{
		Title: string([]byte{0xff, 0xfe}),
		Text:  "text",
	})

	assert.Empty(t, sender.Events)
}

func TestWarnings(t *testing.T) {
	cb, _ := newTestCheck()

	cb.Warn("first")
	cb.Warn("second")

	assert.Equal(t, []string{"first", "second"}, cb.GetWarnings())
	// Draining clears the list
	assert.Empty(t, cb.GetWarnings())
}
