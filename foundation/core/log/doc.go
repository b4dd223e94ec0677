// Package log provides structured logging for the strview tools.
//
// Package: log
// Title: strview Structured Logging Framework
// Description: Leveled, structured logging with JSON, text and console
//              formats, persistent context fields, run identifiers and
//              integration with the core error package.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-02 v0.2.0: Dropped async and audit paths, added deterministic field order
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithFields(log.Fields{"command": "find", "width": "8"})
//
//	logger.Info("query finished", log.Int("position", 3))
//	logger.WarnWithErr("input is not UTF-8 text", err)
//	logger.LogError(err) // level chosen from the error severity
//
//	timer := logger.StartTimer("find")
//	// ... run the query
//	timer.Stop()
package log
