// Package fixer rewrites source text by splicing rule suggestions into it.
package fixer

import (
	"sort"

	"github.com/gnolang/lintpipe/internal/lints"
)

// Apply splices the suggestions of all fixable issues into src. It returns
// the rewritten text, the issues that were not fixed, and the number of
// applied fixes.
//
// Fixes are applied bottom-up so earlier offsets stay valid. When two
// ranges overlap, the one later in the file wins and the other is kept as
// unfixed. Issues with offsets outside src are never applied.
func Apply(src []byte, issues []lints.Issue) ([]byte, []lints.Issue, int) {
	fixable := make([]lints.Issue, 0, len(issues))
	remaining := make([]lints.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Fixable && validRange(issue, len(src)) {
			fixable = append(fixable, issue)
		} else {
			remaining = append(remaining, issue)
		}
	}
	if len(fixable) == 0 {
		return src, remaining, 0
	}

	// Zero-width insertions sort before edits ending at the same offset so
	// an insertion at end of file does not block the edit below it.
	sort.Slice(fixable, func(i, j int) bool {
		if fixable[i].End.Offset != fixable[j].End.Offset {
			return fixable[i].End.Offset > fixable[j].End.Offset
		}
		return fixable[i].Start.Offset > fixable[j].Start.Offset
	})

	out := append([]byte(nil), src...)
	applied := 0
	floor := len(src) + 1
	for _, issue := range fixable {
		if issue.End.Offset > floor {
			remaining = append(remaining, issue)
			continue
		}
		out = splice(out, issue.Start.Offset, issue.End.Offset, issue.Suggestion)
		floor = issue.Start.Offset
		applied++
	}
	return out, remaining, applied
}

func validRange(issue lints.Issue, size int) bool {
	return issue.Start.Offset >= 0 &&
		issue.End.Offset >= issue.Start.Offset &&
		issue.End.Offset <= size
}

func splice(src []byte, start, end int, repl string) []byte {
	out := make([]byte, 0, len(src)-(end-start)+len(repl))
	out = append(out, src[:start]...)
	out = append(out, repl...)
	out = append(out, src[end:]...)
	return out
}
