package lints

import (
	"go/ast"
	"go/token"
)

// UnnecessaryElseRule reports else blocks following an if body that ends
// with a return statement. The else can be removed and its body flattened
// to improve readability.
type UnnecessaryElseRule struct{}

func (r *UnnecessaryElseRule) Name() string { return "unnecessary-else" }

func (r *UnnecessaryElseRule) Check(filename string, _ []byte, node *ast.File, fset *token.FileSet) ([]Issue, error) {
	if node == nil {
		return nil, nil
	}

	var issues []Issue
	ast.Inspect(node, func(n ast.Node) bool {
		ifStmt, ok := n.(*ast.IfStmt)
		if !ok || ifStmt.Else == nil {
			return true
		}

		body := ifStmt.Body
		if len(body.List) == 0 {
			return true
		}
		if _, isReturn := body.List[len(body.List)-1].(*ast.ReturnStmt); !isReturn {
			return true
		}

		issues = append(issues, Issue{
			Rule:    r.Name(),
			Message: "unnecessary else block",
			Start:   fset.Position(ifStmt.Else.Pos()),
			End:     fset.Position(ifStmt.Else.End()),
		})
		return true
	})

	return issues, nil
}
