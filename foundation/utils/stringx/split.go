// File: split.go
// Title: View Splitting Helpers
// Description: Separator, whitespace, line and delimiter-set splitting that
//              yields sub-views of the input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package stringx

import (
	"iter"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

// Split yields the sub-views of v separated by sep. An empty sep yields
// every character as its own view.
func Split[C mdwstrview.Char](v, sep mdwstrview.View[C]) iter.Seq[mdwstrview.View[C]] {
	return func(yield func(mdwstrview.View[C]) bool) {
		if sep.Empty() {
			for i := range v.Size() {
				one, _ := v.Substr(i, 1)
				if !yield(one) {
					return
				}
			}
			return
		}

		rest := v
		for {
			before, after, found := Cut(rest, sep)
			if !yield(before) || !found {
				return
			}
			rest = after
		}
	}
}

// SplitAll returns the sub-views of v separated by sep. n limits the
// number of parts as in strings.SplitN; n < 0 means all parts. An empty sep
// is rejected.
func SplitAll[C mdwstrview.Char](v, sep mdwstrview.View[C], n int) ([]mdwstrview.View[C], error) {
	if sep.Empty() {
		return nil, mdwerrors.StringxInvalidSeparator("split", sep.String())
	}
	if n == 0 {
		return nil, nil
	}

	capacity := Count(v, sep) + 1
	if n > 0 && n < capacity {
		capacity = n
	}
	parts := make([]mdwstrview.View[C], 0, capacity)
	rest := v
	for n < 0 || len(parts) < n-1 {
		before, after, found := Cut(rest, sep)
		if !found {
			break
		}
		parts = append(parts, before)
		rest = after
	}
	return append(parts, rest), nil
}

// Fields yields the runs of non-whitespace characters of v
func Fields[C mdwstrview.Char](v mdwstrview.View[C]) iter.Seq[mdwstrview.View[C]] {
	return FieldsFunc(v, IsSpace[C])
}

// FieldsFunc yields the runs of characters not satisfying isSep
func FieldsFunc[C mdwstrview.Char](v mdwstrview.View[C], isSep func(C) bool) iter.Seq[mdwstrview.View[C]] {
	return func(yield func(mdwstrview.View[C]) bool) {
		chars := v.Chars()
		start := -1
		for i, c := range chars {
			switch {
			case isSep(c) && start >= 0:
				field, _ := v.Substr(start, i-start)
				if !yield(field) {
					return
				}
				start = -1
			case !isSep(c) && start < 0:
				start = i
			}
		}
		if start >= 0 {
			field, _ := v.Substr(start, mdwstrview.NPos)
			yield(field)
		}
	}
}

// Lines yields the lines of v without their terminators. Both \n and \r\n
// end a line; a final terminator does not start an empty line.
func Lines[C mdwstrview.Char](v mdwstrview.View[C]) iter.Seq[mdwstrview.View[C]] {
	return func(yield func(mdwstrview.View[C]) bool) {
		rest := v
		for !rest.Empty() {
			end := rest.FindChar('\n', 0)
			line := rest
			if end == mdwstrview.NPos {
				rest = mdwstrview.View[C]{}
			} else {
				line.RemoveSuffix(rest.Size() - end)
				rest.RemovePrefix(end + 1)
			}
			if line.EndsWithChar('\r') {
				line.RemoveSuffix(1)
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Tokens returns the non-empty runs of v between characters of delims.
// An empty delimiter set is rejected.
func Tokens[C mdwstrview.Char](v, delims mdwstrview.View[C]) ([]mdwstrview.View[C], error) {
	if delims.Empty() {
		return nil, mdwerrors.StringxInvalidSeparator("tokens", "")
	}

	var tokens []mdwstrview.View[C]
	for pos := v.FindFirstNotOf(delims, 0); pos != mdwstrview.NPos; {
		end := v.FindFirstOf(delims, pos)
		token, _ := v.Substr(pos, end-pos)
		tokens = append(tokens, token)
		if end == mdwstrview.NPos {
			break
		}
		pos = v.FindFirstNotOf(delims, end)
	}
	return tokens, nil
}
