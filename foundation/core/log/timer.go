// File: timer.go
// Title: Operation Timer
// Description: Measures one operation and logs its duration on Stop.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with checkpoints
// - 2026-10-02 v0.2.0: Reduced to start, stop and stop-with-error

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a timer that logs through logger
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    Fields{"operation": operation},
	}
}

// WithLevel sets the level used when the timer is stopped
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the completion entry once and returns the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	t.logger.logDuration(t.level, t.operation+" completed", nil, elapsed, t.fields)
	return elapsed
}

// StopWithError logs a failed completion at error level
func (t *Timer) StopWithError(err error) time.Duration {
	elapsed := t.Elapsed()
	if t.stopped {
		return elapsed
	}
	t.stopped = true

	if err == nil {
		t.logger.logDuration(t.level, t.operation+" completed", nil, elapsed, t.fields)
		return elapsed
	}

	t.logger.logDuration(LevelError, t.operation+" failed", err, elapsed, t.fields)
	return elapsed
}
