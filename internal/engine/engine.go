// Package engine implements the default linting engine. It parses Go
// source, fans the configured rules out across goroutines, honors nolint
// directives and ignore patterns, and optionally rewrites fixable
// findings.
package engine

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/internal/fixer"
	"github.com/gnolang/lintpipe/internal/lints"
	"github.com/gnolang/lintpipe/internal/nolint"
	"github.com/gnolang/lintpipe/lint"
)

// Options configures a new engine.
type Options struct {
	Config lint.Config

	// Fix rewrites fixable findings into the result output and reports
	// only what remains.
	Fix bool

	// BaseDir anchors relative ignore patterns. Defaults to the working
	// directory.
	BaseDir string

	Logger *zap.Logger
}

// Engine applies the built-in rules to source text. It implements
// lint.Engine and is safe for concurrent use once constructed.
type Engine struct {
	rules    []lints.Rule
	severity map[string]lint.Severity
	ignore   *ignoreMatcher
	fix      bool
	logger   *zap.Logger
}

// RuleInfo describes one active rule.
type RuleInfo struct {
	Name     string
	Severity lint.Severity
}

// New builds an engine from the given options. Rules configured with
// severity off are excluded; rule options are applied through the rule's
// Configure hook.
func New(opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		baseDir = wd
	}

	e := &Engine{
		severity: make(map[string]lint.Severity),
		fix:      opts.Fix,
		logger:   logger,
	}

	for _, rule := range lints.Default() {
		cfg, configured := opts.Config.Rules[rule.Name()]
		if !configured {
			e.rules = append(e.rules, rule)
			e.severity[rule.Name()] = lint.SeverityWarning
			continue
		}
		if cfg.Severity == lint.SeverityOff {
			continue
		}
		if len(cfg.Options) > 0 {
			c, ok := rule.(lints.Configurable)
			if !ok {
				return nil, &lint.ConfigError{Reason: fmt.Sprintf("rule %s takes no options", rule.Name())}
			}
			if err := c.Configure(cfg.Options); err != nil {
				return nil, &lint.ConfigError{Reason: err.Error()}
			}
		}
		e.rules = append(e.rules, rule)
		e.severity[rule.Name()] = cfg.Severity
	}

	for name := range opts.Config.Rules {
		if lints.Lookup(name) == nil {
			logger.Warn("unknown rule in configuration", zap.String("rule", name))
		}
	}

	ignore, err := newIgnoreMatcher(baseDir, opts.Config)
	if err != nil {
		return nil, err
	}
	e.ignore = ignore

	return e, nil
}

// LintText lints src as Go source and returns a single result for path.
// A syntax error is reported as a fatal message on the result rather than
// as an engine failure.
func (e *Engine) LintText(ctx context.Context, src []byte, path string) ([]*lint.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := e.lint(ctx, path, src, e.fix)
	if err != nil {
		return nil, err
	}
	return []*lint.Result{result}, nil
}

// IsPathIgnored reports whether the ignore patterns exclude path.
func (e *Engine) IsPathIgnored(path string) (bool, error) {
	return e.ignore.Match(path)
}

// Rules lists the active rules in registration order.
func (e *Engine) Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(e.rules))
	for _, r := range e.rules {
		infos = append(infos, RuleInfo{Name: r.Name(), Severity: e.severity[r.Name()]})
	}
	return infos
}

func (e *Engine) lint(ctx context.Context, path string, src []byte, fix bool) (*lint.Result, error) {
	filename := path
	if filename == "" {
		filename = "<text>"
	}

	fset := token.NewFileSet()
	node, parseErr := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if parseErr != nil {
		return fatalResult(path, parseErr), nil
	}

	issues, err := e.runRules(filename, src, node, fset)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mgr := nolint.Parse(src)
	kept := make([]lints.Issue, 0, len(issues))
	for _, issue := range issues {
		if mgr.IsSuppressed(issue.Start.Line, issue.Rule) {
			continue
		}
		kept = append(kept, issue)
	}

	if fix {
		fixed, _, applied := fixer.Apply(src, kept)
		if applied > 0 {
			e.logger.Debug("applied fixes",
				zap.String("path", filename),
				zap.Int("count", applied))

			// one more pass so the report reflects the rewritten text
			result, err := e.lint(ctx, path, fixed, false)
			if err != nil {
				return nil, err
			}
			result.Output = fixed
			result.Fixed = true
			return result, nil
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Start.Line != kept[j].Start.Line {
			return kept[i].Start.Line < kept[j].Start.Line
		}
		if kept[i].Start.Column != kept[j].Start.Column {
			return kept[i].Start.Column < kept[j].Start.Column
		}
		return kept[i].Rule < kept[j].Rule
	})

	messages := make([]lint.Message, 0, len(kept))
	for _, issue := range kept {
		messages = append(messages, lint.Message{
			Rule:     issue.Rule,
			Severity: e.severity[issue.Rule],
			Message:  issue.Message,
			Line:     issue.Start.Line,
			Column:   issue.Start.Column,
		})
	}

	result := &lint.Result{FilePath: path, Messages: messages}
	result.Recount()
	return result, nil
}

func (e *Engine) runRules(filename string, src []byte, node *ast.File, fset *token.FileSet) ([]lints.Issue, error) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		all  []lints.Issue
		errs *multierror.Error
	)

	for _, rule := range e.rules {
		wg.Add(1)
		go func(r lints.Rule) {
			defer wg.Done()
			issues, err := r.Check(filename, src, node, fset)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("rule %s: %w", r.Name(), err))
				return
			}
			all = append(all, issues...)
		}(rule)
	}
	wg.Wait()

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return all, nil
}

func fatalResult(path string, parseErr error) *lint.Result {
	msg := lint.Message{
		Severity: lint.SeverityError,
		Fatal:    true,
		Line:     1,
		Column:   1,
	}

	var list scanner.ErrorList
	if errors.As(parseErr, &list) && len(list) > 0 {
		first := list[0]
		msg.Message = "parsing error: " + first.Msg
		msg.Line = first.Pos.Line
		msg.Column = first.Pos.Column
	} else {
		msg.Message = "parsing error: " + parseErr.Error()
	}

	result := &lint.Result{FilePath: path, Messages: []lint.Message{msg}}
	result.Recount()
	return result
}
