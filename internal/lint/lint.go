// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     lint
// Description: Static checker for capture references in Go sources
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lint

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/msto63/throwif/pkg/core/config"
)

// Options configures a Linter
type Options struct {
	// Glob patterns matched against file base names and slash separated paths
	Exclude []string

	// Check _test.go files as well
	IncludeTests bool

	// Import path of the capture package
	ImportPath string
}

// OptionsFromConfig builds Options from the lint section of the configuration
func OptionsFromConfig(cfg config.LintConfig) Options {
	return Options{
		Exclude:      cfg.Exclude,
		IncludeTests: cfg.IncludeTests,
		ImportPath:   cfg.CaptureImport,
	}
}

// Diagnostic is a capture reference that would fail to resolve at runtime
type Diagnostic struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`

	// Call is the offending call as written, e.g. "capture.Of"
	Call string `json:"call"`

	Reason string `json:"reason"`
	Expr   string `json:"expr,omitempty"`
}

// String formats the diagnostic in file:line:column form
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s:%d:%d: ", d.File, d.Line, d.Column)
	if d.Call != "" {
		msg += d.Call + ": "
	}
	msg += d.Reason
	if d.Expr != "" {
		msg += ": " + d.Expr
	}
	return msg
}

// Report is the result of one lint run
type Report struct {
	RunID       string        `json:"run_id"`
	Files       int           `json:"files"`
	Diagnostics []Diagnostic  `json:"diagnostics"`
	Elapsed     time.Duration `json:"elapsed_ns"`
}

// HasDiagnostics reports whether the run found any problem
func (r *Report) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// Linter checks Go source files for capture references that Resolve would
// reject
type Linter struct {
	opts   Options
	logger *zap.Logger
}

// New creates a Linter. A nil logger disables logging.
func New(opts Options, logger *zap.Logger) *Linter {
	if opts.ImportPath == "" {
		opts.ImportPath = config.DefaultCaptureImport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linter{opts: opts, logger: logger}
}

// Run checks every Go file below paths. A path ending in "/..." is walked
// recursively; "." and plain directories are checked one level deep.
func (l *Linter) Run(ctx context.Context, paths []string) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:       uuid.NewString(),
		Diagnostics: []Diagnostic{},
	}
	logger := l.logger.With(zap.String("run_id", report.RunID))

	files, err := l.collect(ctx, paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("collected files", zap.Int("count", len(files)), zap.Strings("paths", paths))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("lint aborted after %d files: %w", report.Files, err)
		}

		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		diags := l.CheckSource(file, src)
		if len(diags) > 0 {
			logger.Debug("found problems", zap.String("file", file), zap.Int("count", len(diags)))
		}
		report.Diagnostics = append(report.Diagnostics, diags...)
		report.Files++
	}

	sort.SliceStable(report.Diagnostics, func(i, j int) bool {
		a, b := report.Diagnostics[i], report.Diagnostics[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	report.Elapsed = time.Since(start)

	logger.Info("lint finished",
		zap.Int("files", report.Files),
		zap.Int("diagnostics", len(report.Diagnostics)),
		zap.Duration("elapsed", report.Elapsed))

	return report, nil
}
