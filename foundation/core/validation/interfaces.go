// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Validator interface, results and their conversion into
//              structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-06 v0.2.0: Generic validators, results convert to core errors

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

// Validator validates values of type T
type Validator[T any] interface {
	Validate(value T) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc[T any] func(value T) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc[T]) Validate(value T) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single violated rule. Code is one of the
// codes of the core error package or a module-specific code.
type ValidationError struct {
	Code     string      `json:"code"`
	Field    string      `json:"field,omitempty"`
	Message  string      `json:"message"`
	Value    interface{} `json:"value,omitempty"`
	Expected interface{} `json:"expected,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationErrorWithField creates a failed result for one field
func NewValidationErrorWithField(code, field, message string, value, expected interface{}) ValidationResult {
	return ValidationResult{
		Errors: []ValidationError{{
			Code:     code,
			Field:    field,
			Message:  message,
			Value:    value,
			Expected: expected,
		}},
	}
}

// FirstError returns the first violation, or nil for a valid result
func (r ValidationResult) FirstError() *ValidationError {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ToError converts a failed result into a structured error carrying the
// code and details of the first violation. A valid result yields nil.
func (r ValidationResult) ToError(module, operation string) error {
	first := r.FirstError()
	if first == nil {
		return nil
	}

	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Message
	}

	err := mdwerror.New(strings.Join(messages, "; ")).
		WithCode(mdwerror.Code(first.Code)).
		WithOperation(operation).
		WithDetail("module", module).
		WithDetail("operation", operation).
		WithDetail("violations", len(r.Errors))
	if first.Field != "" {
		err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err.WithDetail("expected", first.Expected)
	}
	return err
}

// String returns a compact representation of the error
func (e ValidationError) String() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field:%s", e.Field))
	}
	parts = append(parts, fmt.Sprintf("code:%s", e.Code))
	parts = append(parts, fmt.Sprintf("message:%s", e.Message))
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value:%v", e.Value))
	}
	return fmt.Sprintf("ValidationError{%s}", strings.Join(parts, ", "))
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
