// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides text helpers built on views: trimming,
//              cutting, counting and splitting without copying.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-14
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with core string utilities
// - 2026-09-28 v0.2.0: Helpers operate on strview.View
// - 2026-10-05 v0.3.0: Lines and Tokens iterators

// Package stringx provides text helpers on top of strview.View.
//
// Every function returns sub-views of its input; nothing is copied. The
// helpers are generic over strview.Char so they work on byte, UTF-16,
// UTF-32 and wide views alike. Whitespace means the ASCII set
// space, \t, \n, \v, \f and \r in every width.
//
// Usage Examples
//
//	line := strview.FromString("  key = value  ")
//	key, value, ok := stringx.Cut(stringx.TrimSpace(line), strview.FromString("="))
//	if ok {
//	    fmt.Println(stringx.TrimSpace(key), stringx.TrimSpace(value))
//	}
//
//	for field := range stringx.Split(strview.FromString("a,b,c"), strview.FromString(",")) {
//	    fmt.Println(field)
//	}
//
// Error Handling
//
// Functions that cannot proceed with an empty separator return an error
// built by foundation/core/errors with code INVALID_INPUT.
package stringx
