// File: stringx.go
// Title: Core View Text Helpers
// Description: Trimming, cutting, counting and blank checks over views.
// Author: msto63
// Version: v0.3.0
// Created: 2026-09-14
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation with core utilities
// - 2026-09-28 v0.2.0: Rewritten over strview.View
// - 2026-10-05 v0.3.0: Count of empty needles follows strings.Count

package stringx

import (
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

// IsSpace reports whether c is ASCII whitespace
func IsSpace[C mdwstrview.Char](c C) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsBlank reports whether v is empty or holds only whitespace
func IsBlank[C mdwstrview.Char](v mdwstrview.View[C]) bool {
	for _, c := range v.Chars() {
		if !IsSpace(c) {
			return false
		}
	}
	return true
}

// Trim removes leading and trailing characters contained in set
func Trim[C mdwstrview.Char](v, set mdwstrview.View[C]) mdwstrview.View[C] {
	return TrimRight(TrimLeft(v, set), set)
}

// TrimLeft removes leading characters contained in set
func TrimLeft[C mdwstrview.Char](v, set mdwstrview.View[C]) mdwstrview.View[C] {
	start := v.FindFirstNotOf(set, 0)
	if start == mdwstrview.NPos {
		start = v.Size()
	}
	v.RemovePrefix(start)
	return v
}

// TrimRight removes trailing characters contained in set
func TrimRight[C mdwstrview.Char](v, set mdwstrview.View[C]) mdwstrview.View[C] {
	last := v.FindLastNotOf(set, mdwstrview.NPos)
	if last == mdwstrview.NPos {
		v.RemoveSuffix(v.Size())
		return v
	}
	v.RemoveSuffix(v.Size() - last - 1)
	return v
}

// TrimSpace removes leading and trailing ASCII whitespace
func TrimSpace[C mdwstrview.Char](v mdwstrview.View[C]) mdwstrview.View[C] {
	return TrimFunc(v, IsSpace[C])
}

// TrimFunc removes leading and trailing characters satisfying f
func TrimFunc[C mdwstrview.Char](v mdwstrview.View[C], f func(C) bool) mdwstrview.View[C] {
	chars := v.Chars()
	start, end := 0, len(chars)
	for start < end && f(chars[start]) {
		start++
	}
	for end > start && f(chars[end-1]) {
		end--
	}
	v.RemoveSuffix(len(chars) - end)
	v.RemovePrefix(start)
	return v
}

// Cut slices v around the first instance of sep. When sep does not occur,
// before is v, after is empty and found is false.
func Cut[C mdwstrview.Char](v, sep mdwstrview.View[C]) (before, after mdwstrview.View[C], found bool) {
	i := v.Find(sep, 0)
	if i == mdwstrview.NPos {
		return v, mdwstrview.View[C]{}, false
	}
	before, after = v, v
	before.RemoveSuffix(v.Size() - i)
	after.RemovePrefix(i + sep.Size())
	return before, after, true
}

// CutPrefix returns v without prefix and whether it was present
func CutPrefix[C mdwstrview.Char](v, prefix mdwstrview.View[C]) (mdwstrview.View[C], bool) {
	if !v.StartsWith(prefix) {
		return v, false
	}
	v.RemovePrefix(prefix.Size())
	return v, true
}

// CutSuffix returns v without suffix and whether it was present
func CutSuffix[C mdwstrview.Char](v, suffix mdwstrview.View[C]) (mdwstrview.View[C], bool) {
	if !v.EndsWith(suffix) {
		return v, false
	}
	v.RemoveSuffix(suffix.Size())
	return v, true
}

// Count returns the number of non-overlapping instances of sub in v. An
// empty sub is counted between every pair of characters and at both ends.
func Count[C mdwstrview.Char](v, sub mdwstrview.View[C]) int {
	if sub.Empty() {
		return v.Size() + 1
	}
	n := 0
	for pos := v.Find(sub, 0); pos != mdwstrview.NPos; pos = v.Find(sub, pos+sub.Size()) {
		n++
	}
	return n
}

// EqualFold reports whether two views are equal under ASCII case folding.
// Characters outside ASCII must match exactly.
func EqualFold[C mdwstrview.Char](a, b mdwstrview.View[C]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Size() {
		if lowerASCII(a.Index(i)) != lowerASCII(b.Index(i)) {
			return false
		}
	}
	return true
}

func lowerASCII[C mdwstrview.Char](c C) C {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
