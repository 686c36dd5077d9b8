// ============================================================================
// throwif - Guard clauses with captured names
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tooling
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all components
const (
	// Library version of the foundation packages
	Library = "0.1.0"

	// Tool versions
	Lint = "0.1.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/throwif/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info bundles version and build metadata for display
type Info struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Library   string `json:"library"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lint":
		return Lint
	default:
		return Library
	}
}

// Get returns the build info for a component
func Get(component string) Info {
	return Info{
		Component: component,
		Version:   ComponentVersion(component),
		Library:   Library,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("%s %s (library %s, commit %s, built %s, %s %s)",
		i.Component, i.Version, i.Library, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
