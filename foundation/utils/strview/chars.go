// File: chars.go
// Title: Character Capability Set
// Description: Defines the Char constraint the view is parameterized over and
//              the character helpers (length, equality, ordering, ranged
//              comparison) the view algorithms are written against.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-21
// Modified: 2026-09-21
//
// Change History:
// - 2026-09-21 v0.1.0: Initial implementation

package strview

import "unsafe"

// Char is the set of character types a View can be instantiated with.
// Ordering and equality are the native integer operations, so views compare
// by code unit value.
type Char interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// WChar is the platform wide character. It is 32 bits wide on every
// platform strview supports.
type WChar int32

// Length returns the number of characters before the first zero character.
// A nil pointer panics.
func Length[C Char](p *C) int {
	size := unsafe.Sizeof(*p)
	n := 0
	for *(*C)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*size)) != 0 {
		n++
	}
	return n
}

// Eq reports whether two characters are equal
func Eq[C Char](a, b C) bool {
	return a == b
}

// Lt reports whether a orders before b
func Lt[C Char](a, b C) bool {
	return a < b
}

// CompareChars compares the first n characters of a and b and returns -1, 0
// or +1. Both slices must hold at least n characters.
func CompareChars[C Char](a, b []C, n int) int {
	for i := 0; i < n; i++ {
		if Lt(a[i], b[i]) {
			return -1
		}
		if Lt(b[i], a[i]) {
			return 1
		}
	}
	return 0
}
