// File: source.go
// Title: Source Lookup for Function Literals
// Description: Locates the function literal behind a closure value via the
//              runtime symbol table and parses its source file to recover the
//              name of the location the literal returns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package capture

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"regexp"
	"runtime"
)

// ErrSourceUnavailable is returned by Of when the accessor's source file
// cannot be read or parsed.
var ErrSourceUnavailable = errors.New("capture: accessor source unavailable")

// Compiler names for function literals: pkg.Outer.func1, pkg.Outer.func1.2,
// pkg.Outer.func1.func2, pkg.glob..func1
var closureName = regexp.MustCompile(`\.func\d+(\.(func)?\d+)*$`)

func nameFromSource(accessor interface{}) (string, error) {
	pc := reflect.ValueOf(accessor).Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", &ShapeError{Reason: "accessor has no runtime symbol"}
	}
	if !closureName.MatchString(fn.Name()) {
		return "", &ShapeError{Expr: fn.Name(), Reason: "accessor must be a function literal"}
	}

	file, line := fn.FileLine(fn.Entry())

	src, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return NameAtLine(fset, parsed, line)
}

// NameAtLine returns the accessor name for the function literals that start
// on line, applying the rules of Of. Literals passed directly to a call of a
// function named Of are the candidates; if there are none, every
// zero-argument, single-result literal on the line is. All candidates must
// name the same location.
func NameAtLine(fset *token.FileSet, file *ast.File, line int) (string, error) {
	pos := fmt.Sprintf("%s:%d", fset.Position(file.Pos()).Filename, line)

	lits := literalsOnLine(fset, file, line)
	if len(lits) == 0 {
		return "", fmt.Errorf("%w: no function literal at %s", ErrSourceUnavailable, pos)
	}

	var name string
	for i, lit := range lits {
		candidate, err := AccessorName(lit)
		if err != nil {
			var shapeErr *ShapeError
			if errors.As(err, &shapeErr) {
				shapeErr.Pos = pos
			}
			return "", err
		}
		if i > 0 && candidate != name {
			return "", &ShapeError{
				Reason: "several accessors on one line read different locations",
				Pos:    pos,
			}
		}
		name = candidate
	}

	return name, nil
}

// literalsOnLine returns the function literals starting on line that could
// be accessors: no parameters and a single result. Arguments of Of calls
// take precedence over other literals.
func literalsOnLine(fset *token.FileSet, file *ast.File, line int) []*ast.FuncLit {
	var all, ofArgs []*ast.FuncLit
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			if len(n.Args) == 1 && isOfCall(n.Fun) {
				if lit, ok := unparen(n.Args[0]).(*ast.FuncLit); ok && isCandidate(fset, lit, line) {
					ofArgs = append(ofArgs, lit)
				}
			}
		case *ast.FuncLit:
			if isCandidate(fset, n, line) {
				all = append(all, n)
			}
		}
		return true
	})

	if len(ofArgs) > 0 {
		return ofArgs
	}
	return all
}

func isCandidate(fset *token.FileSet, lit *ast.FuncLit, line int) bool {
	return fset.Position(lit.Pos()).Line == line &&
		lit.Type.Params.NumFields() == 0 &&
		lit.Type.Results.NumFields() == 1
}

// isOfCall matches Of, pkg.Of and their explicit instantiations
func isOfCall(fun ast.Expr) bool {
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	switch f := fun.(type) {
	case *ast.SelectorExpr:
		return f.Sel.Name == "Of"
	case *ast.Ident:
		return f.Name == "Of"
	default:
		return false
	}
}
