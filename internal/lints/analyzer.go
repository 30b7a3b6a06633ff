package lints

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// RunAnalyzer evaluates a go/analysis analyzer against a single parsed file
// and converts its diagnostics into issues reported under rule.
func RunAnalyzer(rule, filename string, node *ast.File, fset *token.FileSet, analyzer *analysis.Analyzer) ([]Issue, error) {
	var issues []Issue
	pass := &analysis.Pass{
		Analyzer: analyzer,
		Fset:     fset,
		Files:    []*ast.File{node},
		Report: func(d analysis.Diagnostic) {
			end := d.End
			if !end.IsValid() {
				end = d.Pos
			}
			issues = append(issues, Issue{
				Rule:    rule,
				Message: d.Message,
				Start:   fset.Position(d.Pos),
				End:     fset.Position(end),
			})
		},
		ResultOf: make(map[*analysis.Analyzer]any),
	}

	if _, err := analyzer.Run(pass); err != nil {
		return nil, err
	}
	return issues, nil
}
