package formatter

import (
	"encoding/json"

	"github.com/gnolang/lintpipe/lint"
)

// JSON emits the results as indented JSON for machine consumers. Severity
// levels render as their names, and rewritten file contents are excluded.
type JSON struct{}

func (JSON) Format(results []*lint.Result) (string, error) {
	if results == nil {
		results = []*lint.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
