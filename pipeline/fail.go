package pipeline

import (
	"fmt"

	"github.com/gnolang/lintpipe/lint"
)

// FailOnError fails the run at the first record whose result contains an
// error-severity finding, citing that finding's message and position.
func FailOnError() Stage {
	stage, _ := OnResult(func(r *lint.Result) error {
		msg := r.FirstError()
		if msg == nil {
			return nil
		}
		return &lint.FailureError{
			Path:    r.FilePath,
			Line:    msg.Line,
			Message: msg.Message,
		}
	})
	return stage
}

// FailAfterError lets every record through and fails the run at end of
// stream when any error-severity findings were counted.
func FailAfterError() Stage {
	stage, _ := OnResults(func(rs *lint.Results) error {
		if rs.ErrorCount == 0 {
			return nil
		}
		return &lint.FailureError{
			Message:    fmt.Sprintf("failed with %d %s", rs.ErrorCount, pluralErrors(rs.ErrorCount)),
			ErrorCount: rs.ErrorCount,
		}
	})
	return stage
}

func pluralErrors(n int) string {
	if n == 1 {
		return "error"
	}
	return "errors"
}
