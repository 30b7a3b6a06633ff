package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/lintpipe/lint"
)

// Unix prints findings in the classic compiler style, path:line:col.
type Unix struct{}

func (Unix) Format(results []*lint.Result) (string, error) {
	var b strings.Builder
	total := 0

	for _, result := range results {
		for _, m := range result.Messages {
			total++
			tag := capitalize(m.Severity.String())
			if m.Rule != "" {
				tag += "/" + m.Rule
			}
			fmt.Fprintf(&b, "%s:%d:%d: %s [%s]\n",
				result.FilePath, m.Line, m.Column, m.Message, tag)
		}
	}

	if total > 0 {
		fmt.Fprintf(&b, "\n%d %s\n", total, plural("problem", total))
	}
	return b.String(), nil
}
