// File: standards.go
// Title: Error Standards for strview Foundation
// Description: Module identifiers, standardized codes and the code lookup
//              used by the error constructors in utils.go.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation for error standardization
// - 2026-10-02 v0.2.0: Module set reduced to strview, stringx, config, query

package errors

import (
	"strings"

	mdwerror "github.com/msto63/strview/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStrview = "strview"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleQuery   = "query"
	ModuleCLI     = "cli"
	ModuleFilex   = "filex"
)

// Standardized error codes shared by all modules
const (
	CodeInvalidInput    = string(mdwerror.CodeInvalidInput)
	CodeInvalidFormat   = string(mdwerror.CodeInvalidFormat)
	CodeOutOfRange      = string(mdwerror.CodeValueOutOfRange)
	CodeNotFound        = string(mdwerror.CodeNotFound)
	CodeOperationFailed = "OPERATION_FAILED"

	CodeStringxInvalidSeparator = "STRINGX_INVALID_SEPARATOR"
	CodeQueryUnknownOperation   = "QUERY_UNKNOWN_OPERATION"
	CodeQueryInvalidWidth       = "QUERY_INVALID_WIDTH"
	CodeFilexTooLarge           = "FILEX_TOO_LARGE"
)

// getModuleErrorCode returns the error code used when the builder was not
// given one explicitly
func getModuleErrorCode(module, operation string) string {
	switch {
	case module == ModuleQuery && strings.Contains(operation, "width"):
		return CodeQueryInvalidWidth
	case module == ModuleStringx && strings.Contains(operation, "split"):
		return CodeStringxInvalidSeparator
	case strings.Contains(operation, "parse"), strings.Contains(operation, "format"):
		return CodeInvalidFormat
	default:
		return CodeOperationFailed
	}
}

// getSeverityFromError derives the severity of a wrapping error from its cause
func getSeverityFromError(cause error) mdwerror.Severity {
	if cause == nil {
		return mdwerror.SeverityMedium
	}
	if sev := mdwerror.GetSeverity(cause); sev > mdwerror.SeverityMedium {
		return sev
	}
	return mdwerror.SeverityHigh
}
