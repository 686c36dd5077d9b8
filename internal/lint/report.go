// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     lint
// Description: Text and JSON rendering of lint reports
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
)

type textStyles struct {
	location lipgloss.Style
	call     lipgloss.Style
	reason   lipgloss.Style
	expr     lipgloss.Style
	failed   lipgloss.Style
	passed   lipgloss.Style
	muted    lipgloss.Style
}

// Styles are bound to w so colors are dropped when w is not a terminal
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		location: r.NewStyle().Bold(true),
		call:     r.NewStyle().Foreground(ColorAccent),
		reason:   r.NewStyle().Foreground(ColorError),
		expr:     r.NewStyle().Italic(true),
		failed:   r.NewStyle().Foreground(ColorError).Bold(true),
		passed:   r.NewStyle().Foreground(ColorSuccess).Bold(true),
		muted:    r.NewStyle().Foreground(ColorMuted),
	}
}

// WriteText renders the report for humans, one line per diagnostic followed
// by a summary
func WriteText(w io.Writer, report *Report) error {
	s := newTextStyles(w)

	for _, d := range report.Diagnostics {
		line := s.location.Render(fmt.Sprintf("%s:%d:%d:", d.File, d.Line, d.Column)) + " "
		if d.Call != "" {
			line += s.call.Render(d.Call+":") + " "
		}
		line += s.reason.Render(d.Reason)
		if d.Expr != "" {
			line += ": " + s.expr.Render(d.Expr)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	var summary string
	switch n := len(report.Diagnostics); n {
	case 0:
		summary = s.passed.Render(fmt.Sprintf("no problems in %s", plural(report.Files, "file")))
	default:
		summary = s.failed.Render(fmt.Sprintf("%s in %s", plural(n, "problem"), plural(report.Files, "file")))
	}
	summary += " " + s.muted.Render("(run "+report.RunID+")")

	_, err := fmt.Fprintln(w, summary)
	return err
}

// WriteJSON renders the report as a single indented JSON document
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Write renders the report in the named format, "text" or "json"
func Write(w io.Writer, report *Report, format string) error {
	switch format {
	case "", "text":
		return WriteText(w, report)
	case "json":
		return WriteJSON(w, report)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
