// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating run-scoped loggers
// Author:      Mike Stoffels
// Created:     2026-09-30
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/strview/foundation/core/log"
	"github.com/msto63/strview/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text or console (default: console)
	Format string

	// Destination (default: stderr, so command output stays clean)
	Output io.Writer

	// Identifier stamped on every entry; generated when empty
	RunID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewRunID returns a fresh identifier for one program run
func NewRunID() string {
	return uuid.NewString()
}

// NewLogger creates a Foundation logger tagged with a run ID
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelWarn
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	runID := cfg.RunID
	if runID == "" {
		runID = NewRunID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	}).WithRunID(runID)
}

// FromConfig builds the logger described by the general section of the
// application configuration. verbose lowers the level to debug.
func FromConfig(cfg *config.Config, verbose bool, output io.Writer) *mdwlog.Logger {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	lc.Output = output
	if verbose {
		lc.Level = "debug"
	}
	return NewLogger(lc)
}
