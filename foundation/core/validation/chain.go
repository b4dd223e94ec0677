// File: chain.go
// Title: Validator Chain Implementation
// Description: Composes validators into one that runs them in order and
//              collects their violations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-06 v0.2.0: Generic chain, dropped context propagation

package validation

import "fmt"

// ValidatorChain represents a chain of validators that can be executed sequentially
type ValidatorChain[T any] struct {
	validators       []Validator[T]
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](name string) *ValidatorChain[T] {
	return &ValidatorChain[T]{name: name}
}

// Add adds a validator to the chain
func (c *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain[T]) AddFunc(fn ValidatorFunc[T]) *ValidatorChain[T] {
	return c.Add(fn)
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain[T]) StopOnFirstError(stop bool) *ValidatorChain[T] {
	c.stopOnFirstError = stop
	return c
}

// Validate executes the validators in order and combines their results
func (c *ValidatorChain[T]) Validate(value T) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		result := validator.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *ValidatorChain[T]) Length() int {
	return len(c.validators)
}

// Name returns the chain name
func (c *ValidatorChain[T]) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain[T]) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}
