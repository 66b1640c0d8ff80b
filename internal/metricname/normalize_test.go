package metricname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		name     string
		prefix   string
		fixCase  bool
		expected string
	}{
		// Clean ASCII names pass through untouched
		{name: "apache.net.request_per_s", expected: "apache.net.request_per_s"},
		{name: "simple", expected: "simple"},
		{name: "Foo.Bar-Baz", expected: "Foo.Bar_Baz"},
		{name: "fooBarBaz", fixCase: true, expected: "foo_bar_baz"},
		{name: "FooBar", prefix: "prefix", fixCase: true, expected: "prefix.foo_bar"},
		// Double underscores collapse
		{name: "a__b", expected: "a_b"},
		{name: "a____b", expected: "a_b"},
		{name: "_leading_and_trailing_", expected: "leading_and_trailing"},
		// Whitespace and punctuation become underscores
		{name: "metric (with) spaces", expected: "metric_with_spaces"},
		{name: "req/s", expected: "req_s"},
		{name: "a,b+c*d", expected: "a_b_c_d"},
		// Case is preserved without fixCase
		{name: "MixedCase", expected: "MixedCase"},
		// Underscores adjacent to dots collapse into the dot
		{name: "foo_.bar", expected: "foo.bar"},
		{name: "foo._bar", expected: "foo.bar"},
		{name: "MyMetric.Name", fixCase: true, expected: "my_metric.name"},
		// Purely numeric names only get the character-class substitution
		{name: "123", expected: "123"},
		{name: "1-2", expected: "1_2"},
		// Accented letters fold to their ASCII base
		{name: "résumé", expected: "resume"},
		{name: "Maré.Nòva", expected: "Mare.Nova"},
		// Code points with no ASCII decomposition are deleted
		{name: "host-µs", expected: "host_s"},
		// All punctuation collapses to an empty string
		{name: "()[]{}", expected: ""},
		{name: "- -", expected: ""},
		{name: "camelCase fixup", prefix: "some.prefix", fixCase: true, expected: "some.prefix.camel_case_fixup"},
		{name: "gauge", prefix: "raw", expected: "raw.gauge"},
	} {
		assert.Equal(t, tc.expected, Normalize(tc.name, tc.prefix, tc.fixCase),
			"Normalize(%q, %q, %v)", tc.name, tc.prefix, tc.fixCase)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"apache.performance.idle_workers",
		"Foo.Bar-Baz",
		"metric (with) spaces",
		"_leading_and_trailing_",
		"a__b",
	}
	for _, in := range inputs {
		once := Normalize(in, "", false)
		assert.Equal(t, once, Normalize(once, "", false), "input %q", in)
	}
}

func TestToUnderscoreSeparated(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected string
	}{
		{"FooBar", "foo_bar"},
		{"fooBar", "foo_bar"},
		{"fooBARBaz", "foo_bar_baz"},
		{"already_separated", "already_separated"},
		{"HTTPServer", "http_server"},
		{"Total kBytes", "total_k_bytes"},
		{"IdleWorkers", "idle_workers"},
		// A leading run of non-letters is substituted then trimmed
		{"5xxErrors", "xx_errors"},
	} {
		assert.Equal(t, tc.expected, ToUnderscoreSeparated(tc.in), "input %q", tc.in)
	}
}
