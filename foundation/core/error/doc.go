// Package error provides structured error values for the strview foundation.
//
// Package: error
// Title: strview Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and the operation that produced them. Every error returned by a
//              strview package is an *Error so callers can branch on Code()
//              instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with codes and severity
// - 2026-10-02 v0.2.0: Dropped platform-only codes, kept range/input codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/strview/foundation/core/error"
//
//	err := mdwerror.New("position out of range").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithDetail("pos", 12)
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// recover
//	}
package error
