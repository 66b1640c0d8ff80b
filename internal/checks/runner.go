package checks

import (
	"context"
	"encoding/json"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// CheckResult is the serialized form of a failed check invocation.  The host
// shows Message on the status page and keeps Traceback for debugging.
type CheckResult struct {
	Message   string `json:"message"`
	Traceback string `json:"traceback"`
}

// RunCheck executes one invocation of the check.  This is the failure
// isolation boundary of the runner: any error returned by the check, and any
// panic raised inside it, is translated into a JSON payload of CheckResults
// instead of propagating.  An empty string means the invocation succeeded.
func RunCheck(ctx context.Context, check Check) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = serializeFailure(goerrors.Wrap(r, 2))
		}
	}()

	if err := check.Run(ctx); err != nil {
		if goErr, ok := err.(*goerrors.Error); ok {
			return serializeFailure(goErr)
		}
		return serializeFailure(goerrors.Wrap(err, 1))
	}
	return ""
}

func serializeFailure(err *goerrors.Error) string {
	payload, marshalErr := json.Marshal([]CheckResult{
		{
			Message:   err.Error(),
			Traceback: err.ErrorStack(),
		},
	})
	if marshalErr != nil {
		// The result struct is all strings, so this should never happen
		// outside of invalid UTF-8 in the error message itself.
		return fmt.Sprintf(`[{"message": %q, "traceback": ""}]`, err.Error())
	}
	return string(payload)
}
