package engine

import (
	"github.com/gnolang/lintpipe/internal/lints"
	"github.com/gnolang/lintpipe/lint"
)

// DefaultConfig returns the configuration scaffolded for new projects.
// Every built-in rule is listed explicitly so the file doubles as
// documentation of what can be tuned.
func DefaultConfig() lint.Config {
	return lint.Config{
		Rules: map[string]lint.RuleConfig{
			"trailing-whitespace": {Severity: lint.SeverityWarning},
			"final-newline":       {Severity: lint.SeverityWarning},
			"line-length": {
				Severity: lint.SeverityWarning,
				Options:  map[string]any{"max": lints.DefaultMaxLineLength},
			},
			"unnecessary-else": {Severity: lint.SeverityWarning},
			"useless-break":    {Severity: lint.SeverityWarning},
		},
		Ignore: []string{"testdata"},
	}
}
