package lints

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// UselessBreakAnalyzer reports break statements terminating a case or comm
// clause, where the language already breaks implicitly.
var UselessBreakAnalyzer = &analysis.Analyzer{
	Name: "uselessbreak",
	Doc:  "reports redundant break statements at the end of switch and select clauses",
	Run:  runUselessBreak,
}

// UselessBreakRule adapts UselessBreakAnalyzer to the rule interface.
type UselessBreakRule struct{}

func (r *UselessBreakRule) Name() string { return "useless-break" }

func (r *UselessBreakRule) Check(filename string, _ []byte, node *ast.File, fset *token.FileSet) ([]Issue, error) {
	if node == nil {
		return nil, nil
	}
	return RunAnalyzer(r.Name(), filename, node, fset, UselessBreakAnalyzer)
}

func runUselessBreak(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			switch v := n.(type) {
			case *ast.SwitchStmt:
				for _, stmt := range v.Body.List {
					if clause, ok := stmt.(*ast.CaseClause); ok {
						reportUselessBreak(pass, clause.Body)
					}
				}
			case *ast.TypeSwitchStmt:
				for _, stmt := range v.Body.List {
					if clause, ok := stmt.(*ast.CaseClause); ok {
						reportUselessBreak(pass, clause.Body)
					}
				}
			case *ast.SelectStmt:
				for _, stmt := range v.Body.List {
					if clause, ok := stmt.(*ast.CommClause); ok {
						reportUselessBreak(pass, clause.Body)
					}
				}
			}
			return true
		})
	}
	return nil, nil
}

func reportUselessBreak(pass *analysis.Pass, stmts []ast.Stmt) {
	if len(stmts) == 0 {
		return
	}
	br, ok := stmts[len(stmts)-1].(*ast.BranchStmt)
	if !ok || br.Tok != token.BREAK || br.Label != nil {
		return
	}
	pass.Report(analysis.Diagnostic{
		Pos:     br.Pos(),
		End:     br.End(),
		Message: "useless break statement at the end of case clause",
	})
}
