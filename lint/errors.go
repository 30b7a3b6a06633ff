package lint

import "fmt"

// UnsupportedInputError reports a file record whose contents arrived as
// a live stream; only materialized bytes can be linted as text.
type UnsupportedInputError struct {
	Path string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("lintpipe: streamed contents are not supported: %s", e.Path)
}

// EngineError reports a failed engine call for one file. The record it
// belongs to fails; records already in flight are unaffected.
type EngineError struct {
	Path string
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("lintpipe: engine failed on %s: %v", e.Path, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ConfigError reports invalid pipeline configuration, such as a nil
// action handed to a combinator or conflicting option fields.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "lintpipe: " + e.Reason
}

// FailureError is raised by the failure operations when error-severity
// findings exist. Path and Line are set when the failure cites a
// specific file (fail-on-error); ErrorCount carries the batch total for
// fail-after-error.
type FailureError struct {
	Path       string
	Line       int
	Message    string
	ErrorCount int
}

func (e *FailureError) Error() string {
	if e.Path == "" {
		return "lintpipe: " + e.Message
	}
	if e.Line > 0 {
		return fmt.Sprintf("lintpipe: %s (%s:%d)", e.Message, e.Path, e.Line)
	}
	return fmt.Sprintf("lintpipe: %s (%s)", e.Message, e.Path)
}
