// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     lint
// Description: Per-file analysis of capture.Of, capture.Named and capture.Value calls
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lint

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"path"
	"strconv"

	"github.com/msto63/throwif/foundation/core/capture"
)

// CheckSource parses one Go file and returns the capture references in it
// that would fail to resolve. A file that does not parse yields a single
// syntax diagnostic.
func (l *Linter) CheckSource(filename string, src []byte) []Diagnostic {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return []Diagnostic{syntaxDiagnostic(filename, err)}
	}

	alias, ok := importAlias(file, l.opts.ImportPath)
	if !ok {
		return nil
	}

	c := &fileChecker{
		fset:  fset,
		file:  file,
		alias: alias,
		funcs: topLevelFuncs(file),
	}
	ast.Inspect(file, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpr); ok {
			c.checkCall(call)
		}
		return true
	})

	return c.diags
}

type fileChecker struct {
	fset  *token.FileSet
	file  *ast.File
	alias string
	funcs map[string]bool
	diags []Diagnostic
}

func (c *fileChecker) checkCall(call *ast.CallExpr) {
	fn, display := c.captureFunc(call.Fun)
	switch fn {
	case "Of":
		if len(call.Args) == 1 {
			c.checkOf(display, call.Args[0])
		}
	case "Named", "Value":
		if len(call.Args) == 2 {
			c.checkNamed(fn, display, call.Args)
		}
	}
}

// captureFunc returns the capture function a call expression refers to and
// its source text, or "" if it is not a capture call
func (c *fileChecker) captureFunc(fun ast.Expr) (string, string) {
	// Explicit instantiation: capture.Of[int](...)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var name string
	switch f := fun.(type) {
	case *ast.SelectorExpr:
		id, ok := f.X.(*ast.Ident)
		if c.alias == "." || !ok || id.Name != c.alias {
			return "", ""
		}
		name = f.Sel.Name
	case *ast.Ident:
		if c.alias != "." {
			return "", ""
		}
		name = f.Name
	default:
		return "", ""
	}

	switch name {
	case "Of", "Named", "Value":
		return name, types.ExprString(fun)
	default:
		return "", ""
	}
}

func (c *fileChecker) checkOf(display string, arg ast.Expr) {
	arg = unparen(arg)

	switch a := arg.(type) {
	case *ast.Ident:
		if a.Name == "nil" {
			c.report(a, display, &capture.ShapeError{Reason: "accessor is nil"})
		} else if c.funcs[a.Name] {
			c.report(a, display, &capture.ShapeError{Expr: a.Name, Reason: "accessor must be a function literal"})
		}
	case *ast.FuncLit:
		if _, err := capture.AccessorName(a); err != nil {
			c.report(a, display, err)
			return
		}
		line := c.fset.Position(a.Pos()).Line
		if _, err := capture.NameAtLine(c.fset, c.file, line); err != nil {
			c.report(a, display, err)
		}
	}
}

func (c *fileChecker) checkNamed(fn, display string, args []ast.Expr) {
	if lit, ok := unparen(args[0]).(*ast.BasicLit); ok && lit.Kind == token.STRING {
		if name, err := strconv.Unquote(lit.Value); err == nil {
			if err := capture.CheckName(name); err != nil {
				c.report(lit, display, err)
			}
		}
	}

	if fn == "Named" {
		if id, ok := unparen(args[1]).(*ast.Ident); ok && id.Name == "nil" {
			c.report(id, display, &capture.ShapeError{Reason: "accessor is nil"})
		}
	}
}

func (c *fileChecker) report(node ast.Node, display string, err error) {
	pos := c.fset.Position(node.Pos())
	diag := Diagnostic{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
		Call:   display,
		Reason: err.Error(),
	}

	var shapeErr *capture.ShapeError
	if errors.As(err, &shapeErr) {
		diag.Reason = shapeErr.Reason
		diag.Expr = shapeErr.Expr
	}
	c.diags = append(c.diags, diag)
}

// importAlias returns the name under which file refers to the capture
// package, "." for a dot import. Blank imports and files without the import
// report false.
func importAlias(file *ast.File, importPath string) (string, bool) {
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p != importPath {
			continue
		}
		if imp.Name == nil {
			return path.Base(importPath), true
		}
		if imp.Name.Name == "_" {
			return "", false
		}
		return imp.Name.Name, true
	}
	return "", false
}

func topLevelFuncs(file *ast.File) map[string]bool {
	funcs := make(map[string]bool)
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Recv == nil {
			funcs[fd.Name.Name] = true
		}
	}
	return funcs
}

func syntaxDiagnostic(filename string, err error) Diagnostic {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return Diagnostic{
			File:   filename,
			Line:   list[0].Pos.Line,
			Column: list[0].Pos.Column,
			Reason: "syntax error: " + list[0].Msg,
		}
	}
	return Diagnostic{File: filename, Reason: "syntax error: " + err.Error()}
}
