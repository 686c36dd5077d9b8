// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     lint
// Description: Collection of Go source files from path arguments
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// collect resolves paths into a sorted, duplicate free list of Go files
func (l *Linter) collect(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(file string) {
		file = filepath.Clean(file)
		if !seen[file] && l.wanted(file) {
			seen[file] = true
			files = append(files, file)
		}
	}

	for _, p := range paths {
		root, recursive := strings.CutSuffix(filepath.ToSlash(p), "/...")
		if p == "..." {
			root, recursive = ".", true
		}
		if root == "" {
			root = "."
		}
		root = filepath.FromSlash(root)

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", p, err)
		}

		// Explicit files are checked even if they would be skipped in a walk
		if !info.IsDir() {
			if strings.HasSuffix(root, ".go") {
				files = appendUnique(files, seen, filepath.Clean(root))
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				if !recursive || skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasSuffix(path, ".go") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// wanted applies the test file and exclude filters
func (l *Linter) wanted(file string) bool {
	if !l.opts.IncludeTests && strings.HasSuffix(file, "_test.go") {
		return false
	}

	base := filepath.Base(file)
	slashed := filepath.ToSlash(file)
	for _, pattern := range l.opts.Exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return false
		}
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return false
		}
	}
	return true
}

// skipDir reports directories the go tool ignores as well
func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func appendUnique(files []string, seen map[string]bool, file string) []string {
	if seen[file] {
		return files
	}
	seen[file] = true
	return append(files, file)
}
