// Package lintpipe runs Go lint results through composable file
// pipelines: lint files, react to individual results, accumulate them,
// render reports and turn findings into failures.
//
// The package is a facade over the subpackages that do the work. The
// pipeline package holds the stage runner and the stages themselves,
// lint the shared data model, formatter the report renderers and output
// the report destinations. Everything a typical caller needs is
// re-exported here.
package lintpipe

import (
	"context"

	"github.com/gnolang/lintpipe/lint"
	"github.com/gnolang/lintpipe/pipeline"
)

// Core data model, re-exported from the lint package.
type (
	Options    = lint.Options
	RuleConfig = lint.RuleConfig
	Config     = lint.Config
	Severity   = lint.Severity
	Message    = lint.Message
	Result     = lint.Result
	Results    = lint.Results
	Engine     = lint.Engine

	UnsupportedInputError = lint.UnsupportedInputError
	EngineError           = lint.EngineError
	ConfigError           = lint.ConfigError
	FailureError          = lint.FailureError
)

const (
	SeverityOff     = lint.SeverityOff
	SeverityWarning = lint.SeverityWarning
	SeverityError   = lint.SeverityError
)

// Pipeline building blocks.
type (
	File  = pipeline.File
	Stage = pipeline.Stage
)

// NewFile builds a buffered file record.
func NewFile(path string, contents []byte) *File {
	return pipeline.NewFile(path, contents)
}

// Lint returns the stage that lints each record and attaches the result.
func Lint(opts Options) (Stage, error) {
	return pipeline.Lint(opts)
}

// OnResult runs action for every record that carries a result.
func OnResult(action func(*Result) error) (Stage, error) {
	return pipeline.OnResult(action)
}

// OnResults collects every result and hands the batch to action once,
// at end of stream.
func OnResults(action func(*Results) error) (Stage, error) {
	return pipeline.OnResults(action)
}

// FailOnError fails the run at the first error-severity finding.
func FailOnError() Stage {
	return pipeline.FailOnError()
}

// FailAfterError lets all records through, then fails the run if any
// error-severity findings were seen.
func FailAfterError() Stage {
	return pipeline.FailAfterError()
}

// Format renders one combined report at end of stream. FormatEach
// renders each record's result as it passes. Both accept the reference
// forms of formatter.Resolve and output.Resolve.
func Format(formatterRef, destRef any) (Stage, error) {
	return pipeline.Format(formatterRef, destRef)
}

func FormatEach(formatterRef, destRef any) (Stage, error) {
	return pipeline.FormatEach(formatterRef, destRef)
}

// Run drives records from src through the stages. RunFiles does the
// same for an in-memory slice.
func Run(ctx context.Context, src <-chan *File, stages ...Stage) error {
	return pipeline.Run(ctx, src, stages...)
}

func RunFiles(ctx context.Context, files []*File, stages ...Stage) error {
	return pipeline.RunFiles(ctx, files, stages...)
}
