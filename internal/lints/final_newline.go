package lints

import (
	"go/ast"
	"go/token"
)

// FinalNewlineRule reports files that do not end with a newline.
type FinalNewlineRule struct{}

func (r *FinalNewlineRule) Name() string { return "final-newline" }

func (r *FinalNewlineRule) Check(filename string, src []byte, _ *ast.File, _ *token.FileSet) ([]Issue, error) {
	if len(src) == 0 || src[len(src)-1] == '\n' {
		return nil, nil
	}

	ln, col := 1, 1
	for _, b := range src {
		if b == '\n' {
			ln++
			col = 1
		} else {
			col++
		}
	}

	pos := position(filename, ln, col, len(src))
	return []Issue{{
		Rule:       r.Name(),
		Message:    "missing newline at end of file",
		Start:      pos,
		End:        pos,
		Suggestion: "\n",
		Fixable:    true,
	}}, nil
}
