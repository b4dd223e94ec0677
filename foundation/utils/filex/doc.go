// Package filex reads query input for strview.
//
// Package: filex
// Title: Input File Utilities
// Description: Existence checks, human-readable sizes and bounded reading
//              of input from a file or standard input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-06
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-06 v0.2.0: Reduced to input reading for strview
//
// Usage:
//
//	data, err := filex.ReadInput("notes.txt", os.Stdin, 16<<20)
//	if err != nil {
//		return err
//	}
//	if err := filex.CheckText(data); err != nil {
//		// binary input: byte views still work, wider views see U+FFFD
//	}
//
// Errors are structured errors from the core error package. A missing file
// carries NOT_FOUND, oversized input FILEX_TOO_LARGE, and CheckText reports
// INVALID_FORMAT with the offending offset.
package filex
