// Package lints hosts the built-in rules evaluated by the default engine.
//
// Each rule inspects a single file and reports issues with precise byte
// offsets so the fixer can splice replacement text without re-parsing.
package lints

import (
	"go/ast"
	"go/token"
)

// Issue is a single finding reported by a rule against one file.
type Issue struct {
	Rule    string
	Message string
	Start   token.Position
	End     token.Position

	// Suggestion is the replacement text for the [Start.Offset, End.Offset)
	// byte range. Only meaningful when Fixable is set; an empty suggestion
	// deletes the range.
	Suggestion string
	Fixable    bool
}

// Rule checks one file and reports the issues it finds. AST-driven rules
// use node and fset; text rules work on src directly. node is nil when the
// file failed to parse, and rules that need it must return no issues.
type Rule interface {
	Name() string
	Check(filename string, src []byte, node *ast.File, fset *token.FileSet) ([]Issue, error)
}

// Configurable is implemented by rules that accept per-rule options from
// the configuration file.
type Configurable interface {
	Configure(options map[string]any) error
}

// Default returns the built-in rule set with default options.
func Default() []Rule {
	return []Rule{
		&TrailingWhitespaceRule{},
		&FinalNewlineRule{},
		&LineLengthRule{Max: DefaultMaxLineLength},
		&UnnecessaryElseRule{},
		&UselessBreakRule{},
	}
}

// Lookup returns the rule registered under name, or nil.
func Lookup(name string) Rule {
	for _, r := range Default() {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

// Names lists the built-in rule names in registration order.
func Names() []string {
	rules := Default()
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name())
	}
	return names
}
