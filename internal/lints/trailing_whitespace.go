package lints

import (
	"go/ast"
	"go/token"
	"strings"
)

// TrailingWhitespaceRule reports spaces or tabs left before a line break.
type TrailingWhitespaceRule struct{}

func (r *TrailingWhitespaceRule) Name() string { return "trailing-whitespace" }

func (r *TrailingWhitespaceRule) Check(filename string, src []byte, _ *ast.File, _ *token.FileSet) ([]Issue, error) {
	var issues []Issue
	forEachLine(src, func(ln line) {
		text := strings.TrimSuffix(ln.text, "\r")
		trimmed := strings.TrimRight(text, " \t")
		if len(trimmed) == len(text) {
			return
		}
		issues = append(issues, Issue{
			Rule:    r.Name(),
			Message: "trailing whitespace",
			Start:   position(filename, ln.num, len(trimmed)+1, ln.start+len(trimmed)),
			End:     position(filename, ln.num, len(text)+1, ln.start+len(text)),
			Fixable: true,
		})
	})
	return issues, nil
}
