package lints

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLineLength is the limit applied when no override is configured.
const DefaultMaxLineLength = 120

// LineLengthRule reports lines longer than Max characters. Length is
// measured in runes, so a multi-byte character counts once.
type LineLengthRule struct {
	Max int
}

func (r *LineLengthRule) Name() string { return "line-length" }

// Configure accepts a "max" option overriding the line limit.
func (r *LineLengthRule) Configure(options map[string]any) error {
	v, ok := options["max"]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		r.Max = n
	case float64:
		r.Max = int(n)
	default:
		return fmt.Errorf("line-length: max must be an integer, got %T", v)
	}
	if r.Max <= 0 {
		return fmt.Errorf("line-length: max must be positive, got %d", r.Max)
	}
	return nil
}

func (r *LineLengthRule) Check(filename string, src []byte, _ *ast.File, _ *token.FileSet) ([]Issue, error) {
	limit := r.Max
	if limit <= 0 {
		limit = DefaultMaxLineLength
	}

	var issues []Issue
	forEachLine(src, func(ln line) {
		text := strings.TrimSuffix(ln.text, "\r")
		count := utf8.RuneCountInString(text)
		if count <= limit {
			return
		}
		issues = append(issues, Issue{
			Rule:    r.Name(),
			Message: fmt.Sprintf("line has %d characters, maximum is %d", count, limit),
			Start:   position(filename, ln.num, limit+1, ln.start+byteIndexOfRune(text, limit)),
			End:     position(filename, ln.num, count+1, ln.start+len(text)),
		})
	})
	return issues, nil
}

// byteIndexOfRune returns the byte offset of the n-th rune in s, or len(s)
// when s has fewer than n runes.
func byteIndexOfRune(s string, n int) int {
	seen := 0
	for i := range s {
		if seen == n {
			return i
		}
		seen++
	}
	return len(s)
}
