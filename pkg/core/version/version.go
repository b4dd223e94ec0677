// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-09-30
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version of foundation/utils/strview
	Library = "1.0.0"

	// CLI version of cmd/strview
	CLI = "1.0.0"
)

// Build information, set via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "strview":
		return CLI
	default:
		return Library
	}
}

// Info bundles version and build information for display
type Info struct {
	Library   string `json:"library"`
	CLI       string `json:"cli"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
