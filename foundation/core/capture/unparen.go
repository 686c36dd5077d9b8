package capture

import "go/ast"

// unparen mirrors ast.Unparen (Go 1.22+) for older toolchains: it returns
// the expression with any enclosing parentheses removed.
func unparen(e ast.Expr) ast.Expr {
	for {
		paren, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = paren.X
	}
}
