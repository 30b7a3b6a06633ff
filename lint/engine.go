package lint

import "context"

// Engine is the linting engine consumed by the pipeline. Implementations
// must be safe to call concurrently for independent files.
//
// LintText lints fully materialized source text and returns a
// single-element result slice for the given path. IsPathIgnored reports
// whether the engine's ignore rules exclude the path; the path it
// receives is relative to the transform's base directory, because the
// engine's own ignore resolution is anchored there rather than at any
// per-record location.
type Engine interface {
	LintText(ctx context.Context, src []byte, path string) ([]*Result, error)
	IsPathIgnored(path string) (bool, error)
}
