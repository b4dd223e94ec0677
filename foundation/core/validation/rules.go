// File: rules.go
// Title: Field Rules
// Description: Checks for single configuration fields that produce
//              validation results.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

// OneOf requires value to equal one of allowed
func OneOf[T comparable](field string, value T, allowed ...T) ValidationResult {
	for _, a := range allowed {
		if value == a {
			return NewValidationResult()
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = fmt.Sprint(a)
	}
	expected := strings.Join(names, ", ")
	return NewValidationErrorWithField(
		string(mdwerror.CodeInvalidInput),
		field,
		fmt.Sprintf("%s: %v is not one of %s", field, value, expected),
		value,
		expected,
	)
}

// NonNegative requires value >= 0
func NonNegative[T ~int | ~int64](field string, value T) ValidationResult {
	if value >= 0 {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(
		string(mdwerror.CodeValueOutOfRange),
		field,
		fmt.Sprintf("%s: %d must not be negative", field, value),
		value,
		">= 0",
	)
}

// Check turns the error of a parse function into a violation with code.
// A nil err passes.
func Check(code, field string, value interface{}, err error) ValidationResult {
	if err == nil {
		return NewValidationResult()
	}
	return NewValidationErrorWithField(code, field, fmt.Sprintf("%s: %v", field, err), value, nil)
}
