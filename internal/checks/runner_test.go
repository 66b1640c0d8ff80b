package checks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheck struct {
	run func(ctx context.Context) error
}

func (c *stubCheck) Run(ctx context.Context) error {
	return c.run(ctx)
}

func decodeResults(t *testing.T, payload string) []CheckResult {
	var results []CheckResult
	require.NoError(t, json.Unmarshal([]byte(payload), &results))
	return results
}

func TestRunCheckSuccess(t *testing.T) {
	check := &stubCheck{run: func(ctx context.Context) error { return nil }}
	assert.Equal(t, "", RunCheck(context.Background(), check))
}

func TestRunCheckError(t *testing.T) {
	check := &stubCheck{run: func(ctx context.Context) error {
		return errors.New("connection refused")
	}}

	results := decodeResults(t, RunCheck(context.Background(), check))
	require.Len(t, results, 1)
	assert.Equal(t, "connection refused", results[0].Message)
	assert.Contains(t, results[0].Traceback, "connection refused")
	assert.NotEmpty(t, results[0].Traceback)
}

func TestRunCheckPanic(t *testing.T) {
	check := &stubCheck{run: func(ctx context.Context) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	}}

	results := decodeResults(t, RunCheck(context.Background(), check))
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "assignment to entry in nil map")
	assert.NotEmpty(t, results[0].Traceback)
}

func TestRunCheckPanicString(t *testing.T) {
	check := &stubCheck{run: func(ctx context.Context) error {
		panic("something went sideways")
	}}

	results := decodeResults(t, RunCheck(context.Background(), check))
	require.Len(t, results, 1)
	assert.Equal(t, "something went sideways", results[0].Message)
}
