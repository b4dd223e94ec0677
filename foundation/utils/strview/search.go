// File: search.go
// Title: View Search Family
// Description: Forward and backward substring search and the character-set
//              searches. Every search returns a position or NPos and never
//              fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-21
// Modified: 2026-09-21
//
// Change History:
// - 2026-09-21 v0.1.0: Initial implementation

package strview

import "slices"

// Forward searches treat a negative pos as 0. Backward searches treat a
// negative pos as an empty search range and any pos >= Size() as "from the
// end".

// Find returns the first position >= pos where needle occurs. The empty
// needle is found at pos as long as pos <= Size().
func (v View[C]) Find(needle View[C], pos int) int {
	pos = max(pos, 0)
	size, n := len(v.data), len(needle.data)
	if pos > size || n > size-pos {
		return NPos
	}
	if n == 0 {
		return pos
	}

	first := needle.data[0]
	for last := size - n; pos <= last; pos++ {
		i := slices.Index(v.data[pos:last+1], first)
		if i < 0 {
			return NPos
		}
		pos += i
		if CompareChars(v.data[pos+1:], needle.data[1:], n-1) == 0 {
			return pos
		}
	}
	return NPos
}

// FindChar returns the first position >= pos holding c
func (v View[C]) FindChar(c C, pos int) int {
	pos = max(pos, 0)
	if pos >= len(v.data) {
		return NPos
	}
	if i := slices.Index(v.data[pos:], c); i >= 0 {
		return pos + i
	}
	return NPos
}

// RFind returns the last position <= pos where needle starts. The empty
// needle is found at min(pos, Size()).
func (v View[C]) RFind(needle View[C], pos int) int {
	size, n := len(v.data), len(needle.data)
	if pos < 0 || n > size {
		return NPos
	}

	for i := min(pos, size-n); i >= 0; i-- {
		if CompareChars(v.data[i:], needle.data, n) == 0 {
			return i
		}
	}
	return NPos
}

// RFindChar returns the last position <= pos holding c
func (v View[C]) RFindChar(c C, pos int) int {
	if pos < 0 || len(v.data) == 0 {
		return NPos
	}
	for i := min(pos, len(v.data)-1); i >= 0; i-- {
		if Eq(v.data[i], c) {
			return i
		}
	}
	return NPos
}

// FindFirstOf returns the first position >= pos holding any character of
// set. An empty set matches nothing.
func (v View[C]) FindFirstOf(set View[C], pos int) int {
	return v.scanForward(pos, func(c C) bool { return set.holds(c) })
}

// FindFirstOfChar is FindChar
func (v View[C]) FindFirstOfChar(c C, pos int) int {
	return v.FindChar(c, pos)
}

// FindLastOf returns the last position <= pos holding any character of set
func (v View[C]) FindLastOf(set View[C], pos int) int {
	return v.scanBackward(pos, func(c C) bool { return set.holds(c) })
}

// FindLastOfChar is RFindChar
func (v View[C]) FindLastOfChar(c C, pos int) int {
	return v.RFindChar(c, pos)
}

// FindFirstNotOf returns the first position >= pos holding a character
// outside set. With an empty set every character qualifies.
func (v View[C]) FindFirstNotOf(set View[C], pos int) int {
	return v.scanForward(pos, func(c C) bool { return !set.holds(c) })
}

// FindFirstNotOfChar returns the first position >= pos not holding c
func (v View[C]) FindFirstNotOfChar(c C, pos int) int {
	return v.scanForward(pos, func(x C) bool { return !Eq(x, c) })
}

// FindLastNotOf returns the last position <= pos holding a character
// outside set
func (v View[C]) FindLastNotOf(set View[C], pos int) int {
	return v.scanBackward(pos, func(c C) bool { return !set.holds(c) })
}

// FindLastNotOfChar returns the last position <= pos not holding c
func (v View[C]) FindLastNotOfChar(c C, pos int) int {
	return v.scanBackward(pos, func(x C) bool { return !Eq(x, c) })
}

func (v View[C]) holds(c C) bool {
	return slices.Contains(v.data, c)
}

func (v View[C]) scanForward(pos int, match func(C) bool) int {
	for i := max(pos, 0); i < len(v.data); i++ {
		if match(v.data[i]) {
			return i
		}
	}
	return NPos
}

func (v View[C]) scanBackward(pos int, match func(C) bool) int {
	if pos < 0 || len(v.data) == 0 {
		return NPos
	}
	for i := min(pos, len(v.data)-1); i >= 0; i-- {
		if match(v.data[i]) {
			return i
		}
	}
	return NPos
}
