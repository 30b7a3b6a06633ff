package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/internal/engine"
	"github.com/gnolang/lintpipe/lint"
)

// Lint returns the stage that lints each record's contents and attaches
// the result. Options are normalized up front and the default engine is
// built from them unless one is supplied; configuration problems surface
// here rather than mid-run.
func Lint(opts lint.Options) (Stage, error) {
	normalized, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	logger := normalized.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	eng := normalized.Engine
	if eng == nil {
		cfg := lint.Config{}
		if normalized.ConfigFile != "" {
			loaded, err := lint.LoadConfig(normalized.ConfigFile)
			if err != nil {
				return nil, &lint.ConfigError{Reason: "load config: " + err.Error()}
			}
			cfg = loaded
		}
		cfg = cfg.Merge(lint.Config{
			Rules:      normalized.Rules,
			Ignore:     normalized.IgnorePatterns,
			IgnoreFile: normalized.IgnoreFile,
		})

		built, err := engine.New(engine.Options{
			Config:  cfg,
			Fix:     normalized.Fix,
			BaseDir: normalized.BaseDir,
			Logger:  logger,
		})
		if err != nil {
			return nil, err
		}
		eng = built
	}

	return &lintStage{engine: eng, opts: normalized, logger: logger}, nil
}

type lintStage struct {
	engine lint.Engine
	opts   lint.Options
	logger *zap.Logger
}

func (s *lintStage) Transform(ctx context.Context, f *File) (*File, error) {
	if f.Stream {
		return nil, &lint.UnsupportedInputError{Path: f.Path}
	}
	if f.Contents == nil {
		return f, nil
	}

	path := s.displayPath(f)

	ignored, err := s.engine.IsPathIgnored(path)
	if err != nil {
		return nil, &lint.EngineError{Path: path, Err: err}
	}
	if ignored {
		if s.opts.WarnFileIgnored {
			f.Result = ignoredResult(path)
		}
		return f, nil
	}

	results, err := s.engine.LintText(ctx, f.Contents, path)
	if err != nil {
		return nil, &lint.EngineError{Path: path, Err: err}
	}
	if len(results) == 0 {
		return nil, &lint.EngineError{Path: path, Err: errors.New("engine returned no result")}
	}
	result := results[0]

	if s.opts.Quiet {
		result = filterResult(result, s.opts.QuietFilter)
	}
	if result.Output != nil {
		f.Contents = result.Output
		result.Fixed = true
	}
	f.Result = result

	s.logger.Debug("linted file",
		zap.String("path", path),
		zap.Int("errors", result.ErrorCount),
		zap.Int("warnings", result.WarningCount))

	return f, nil
}

func (s *lintStage) Flush(context.Context) error { return nil }

// displayPath computes the path results carry: relative to the record's
// base, falling back to the transform's base directory. Relative record
// paths are taken as already being base-relative.
func (s *lintStage) displayPath(f *File) string {
	if !filepath.IsAbs(f.Path) {
		return f.Path
	}
	base := f.Base
	if base == "" {
		base = s.opts.BaseDir
	}
	if base == "" {
		return f.Path
	}
	rel, err := filepath.Rel(base, f.Path)
	if err != nil {
		return f.Path
	}
	return rel
}

// filterResult applies the quiet predicate and recomputes the counters.
// The original result is left untouched.
func filterResult(r *lint.Result, keep func(lint.Message) bool) *lint.Result {
	filtered := *r
	filtered.Messages = make([]lint.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		if keep(m) {
			filtered.Messages = append(filtered.Messages, m)
		}
	}
	filtered.Recount()
	return &filtered
}

// ignoredResult is the synthetic single-warning result attached to
// ignored files when the transform is configured to warn about them.
func ignoredResult(path string) *lint.Result {
	return &lint.Result{
		FilePath: path,
		Messages: []lint.Message{{
			Severity: lint.SeverityWarning,
			Message:  "file ignored because of a matching ignore pattern",
		}},
		WarningCount: 1,
		Ignored:      true,
	}
}
