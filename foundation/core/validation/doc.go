// Package validation composes field rules into validators whose results
// convert into structured errors.
//
// Package: validation
// Title: Core Validation Framework
// Description: Validator interface, chains of validators, field rules and
//              the conversion of results into core errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-06 v0.2.0: Generic validators and field rules
//
// Usage:
//
//	err := validation.NewValidatorChain[*Config]("config").
//		AddFunc(func(c *Config) validation.ValidationResult {
//			return validation.OneOf("output.format", c.Format, "text", "json")
//		}).
//		AddFunc(func(c *Config) validation.ValidationResult {
//			return validation.NonNegative("query.max_results", c.MaxResults)
//		}).
//		Validate(cfg).
//		ToError("config", "validate")
//
// The error carries the code of the first violation, so callers branch on
// it with the core error package as with any other error.
package validation
