package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnolang/lintpipe/lint"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
)

// Stylish is the default human-oriented formatter: findings grouped by
// file with aligned positions and a closing problem count. Files without
// findings produce no output at all.
type Stylish struct{}

func (Stylish) Format(results []*lint.Result) (string, error) {
	var b strings.Builder
	errorTotal, warningTotal := 0, 0

	for _, result := range results {
		errorTotal += result.ErrorCount
		warningTotal += result.WarningCount
		if len(result.Messages) == 0 {
			continue
		}

		b.WriteString(fileStyle.Sprint(result.FilePath))
		b.WriteByte('\n')

		posWidth, sevWidth := 0, 0
		for _, m := range result.Messages {
			if w := len(fmt.Sprintf("%d:%d", m.Line, m.Column)); w > posWidth {
				posWidth = w
			}
			if w := len(m.Severity.String()); w > sevWidth {
				sevWidth = w
			}
		}

		for _, m := range result.Messages {
			// pad the raw text before styling so escape codes do not
			// break the column alignment
			pos := fmt.Sprintf("%d:%d", m.Line, m.Column)
			b.WriteString("  ")
			b.WriteString(lineStyle.Sprint(pos))
			b.WriteString(strings.Repeat(" ", posWidth-len(pos)+2))

			sev := m.Severity.String()
			if m.Severity == lint.SeverityError {
				b.WriteString(errorStyle.Sprint(sev))
			} else {
				b.WriteString(warningStyle.Sprint(sev))
			}
			b.WriteString(strings.Repeat(" ", sevWidth-len(sev)+2))

			b.WriteString(m.Message)
			if m.Rule != "" {
				b.WriteString("  ")
				b.WriteString(ruleStyle.Sprint(m.Rule))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	total := errorTotal + warningTotal
	if total > 0 {
		style := warningStyle
		if errorTotal > 0 {
			style = errorStyle
		}
		b.WriteString(style.Sprintf("✖ %d %s (%d %s, %d %s)\n",
			total, plural("problem", total),
			errorTotal, plural("error", errorTotal),
			warningTotal, plural("warning", warningTotal)))
	}

	return b.String(), nil
}
