// Package errors provides the standard error constructors for all strview
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API for strview Foundation
// Description: Common error patterns and codes layered on the core error
//              package so every module reports failures the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-02 v0.2.0: Reduced to the strview, stringx, config and query modules
//
// # Error Creation Utilities
//
//   - NewErrorBuilder: fluent builder, fills in code and message when omitted
//   - InvalidInput, OutOfRange, NotFound, OperationFailed: standard shapes
//   - StrviewOutOfRange, StringxInvalidSeparator, QueryInvalidWidth,
//     QueryUnknownOperation: module shortcuts
//
// # Error Analysis Functions
//
//   - ExtractDetails, ExtractModule, ExtractOperation, IsModuleOperation
//
// # Usage
//
//	if pos > size {
//		return errors.StrviewOutOfRange("substr", pos, size)
//	}
//
//	if errors.IsModuleOperation(err, errors.ModuleStrview, "at") {
//		// the caller asked for a character past the end
//	}
package errors
