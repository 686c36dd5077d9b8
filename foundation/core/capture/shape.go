// File: shape.go
// Title: Reference Shape Validation
// Description: Checks that an accessor or a supplied name denotes exactly one
//              named storage location and derives the location's source name.
//              Shared by runtime capture and by static tooling.
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
	"go/types"
)

// ErrShape is matched by errors.Is for every *ShapeError.
var ErrShape = errors.New("capture: reference does not name a single location")

// ShapeError reports a reference that does not name a single location.
// It signals a mistake at the call site, not a data error.
type ShapeError struct {
	// Expr is the offending source text when known.
	Expr string

	// Reason describes what is wrong with the shape.
	Reason string

	// Pos is the file:line of the accessor when known.
	Pos string
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	msg := "capture: " + e.Reason
	if e.Expr != "" {
		msg += ": " + e.Expr
	}
	if e.Pos != "" {
		msg += " (" + e.Pos + ")"
	}
	return msg
}

// Unwrap returns ErrShape
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// Identifiers that name values but no storage location
var predeclared = map[string]bool{
	"nil":   true,
	"true":  true,
	"false": true,
	"iota":  true,
}

// AccessorName returns the name of the location read by lit, which must be
// a function literal of the form func() T { return <location> }.
func AccessorName(lit *ast.FuncLit) (string, error) {
	if lit == nil || lit.Type == nil || lit.Body == nil {
		return "", &ShapeError{Reason: "accessor is not a function literal"}
	}

	if n := lit.Type.Params.NumFields(); n != 0 {
		return "", &ShapeError{
			Expr:   types.ExprString(lit.Type),
			Reason: "accessor must not take arguments",
		}
	}
	if n := lit.Type.Results.NumFields(); n != 1 {
		return "", &ShapeError{
			Expr:   types.ExprString(lit.Type),
			Reason: "accessor must return exactly one value",
		}
	}

	if len(lit.Body.List) != 1 {
		return "", &ShapeError{Reason: "accessor body must be a single return statement"}
	}
	ret, ok := lit.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return "", &ShapeError{Reason: "accessor body must be a single return statement"}
	}

	return locationPath(ret.Results[0])
}

// CheckName validates a name supplied by the caller. It must be written
// exactly as a plain identifier or selector chain, e.g. "count" or "cfg.Port".
func CheckName(name string) error {
	if name == "" {
		return &ShapeError{Reason: "name is empty"}
	}

	expr, err := parser.ParseExpr(name)
	if err != nil {
		return &ShapeError{Expr: name, Reason: "name is not a Go expression"}
	}

	path, err := locationPath(expr)
	if err != nil {
		return err
	}
	if path != name {
		return &ShapeError{Expr: name, Reason: "name must be written as a plain identifier or selector"}
	}
	return nil
}

// locationPath renders expr as a dotted path if it denotes a single named
// location and rejects every other shape.
func locationPath(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return locationPath(e.X)
	case *ast.Ident:
		if e.Name == "_" {
			return "", &ShapeError{Expr: e.Name, Reason: "blank identifier is not a location"}
		}
		if predeclared[e.Name] {
			return "", &ShapeError{Expr: e.Name, Reason: "predeclared identifier is not a location"}
		}
		return e.Name, nil
	case *ast.SelectorExpr:
		base, err := locationPath(e.X)
		if err != nil {
			var shapeErr *ShapeError
			if errors.As(err, &shapeErr) {
				shapeErr.Expr = types.ExprString(expr)
			}
			return "", err
		}
		return base + "." + e.Sel.Name, nil
	default:
		return "", &ShapeError{
			Expr:   types.ExprString(expr),
			Reason: describe(expr) + " is not a single named location",
		}
	}
}

func describe(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.CallExpr:
		return "function call"
	case *ast.IndexExpr, *ast.IndexListExpr:
		return "index expression"
	case *ast.SliceExpr:
		return "slice expression"
	case *ast.StarExpr:
		return "pointer dereference"
	case *ast.UnaryExpr:
		return fmt.Sprintf("unary %s expression", e.Op)
	case *ast.BinaryExpr:
		return fmt.Sprintf("binary %s expression", e.Op)
	case *ast.BasicLit:
		return "literal"
	case *ast.CompositeLit:
		return "composite literal"
	case *ast.FuncLit:
		return "function literal"
	case *ast.TypeAssertExpr:
		return "type assertion"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
