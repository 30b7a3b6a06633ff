package formatter

import (
	"fmt"
	"strings"

	"github.com/gnolang/lintpipe/lint"
)

// Compact prints one finding per line, suitable for grepping.
type Compact struct{}

func (Compact) Format(results []*lint.Result) (string, error) {
	var b strings.Builder
	total := 0

	for _, result := range results {
		for _, m := range result.Messages {
			total++
			fmt.Fprintf(&b, "%s: line %d, col %d, %s - %s",
				result.FilePath, m.Line, m.Column, capitalize(m.Severity.String()), m.Message)
			if m.Rule != "" {
				fmt.Fprintf(&b, " (%s)", m.Rule)
			}
			b.WriteByte('\n')
		}
	}

	if total > 0 {
		fmt.Fprintf(&b, "\n%d %s\n", total, plural("problem", total))
	}
	return b.String(), nil
}
