// File: compare.go
// Title: View Comparison and Prefix Tests
// Description: Lexicographic three-way comparison, the derived relations,
//              positional comparisons and prefix/suffix/containment tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-21
// Modified: 2026-09-21
//
// Change History:
// - 2026-09-21 v0.1.0: Initial implementation

package strview

// Compare orders v against other by character value over the common length;
// on a tie the shorter view sorts first. The result is -1, 0 or +1.
func (v View[C]) Compare(other View[C]) int {
	n := min(len(v.data), len(other.data))
	if r := CompareChars(v.data, other.data, n); r != 0 {
		return r
	}
	switch {
	case len(v.data) < len(other.data):
		return -1
	case len(v.data) > len(other.data):
		return 1
	}
	return 0
}

// Compare is the package-level form of View.Compare, usable with
// slices.SortFunc
func Compare[C Char](a, b View[C]) int {
	return a.Compare(b)
}

// CompareTerminated compares v against the zero-terminated sequence at p
func (v View[C]) CompareTerminated(p *C) int {
	return v.Compare(FromTerminated(p))
}

// CompareSlice compares v against the elements of s
func (v View[C]) CompareSlice(s []C) int {
	return v.Compare(FromSlice(s))
}

// CompareAt compares the substring (pos1, count1) of v against other
func (v View[C]) CompareAt(pos1, count1 int, other View[C]) (int, error) {
	sub, err := v.substr("compare", pos1, count1)
	if err != nil {
		return 0, err
	}
	return sub.Compare(other), nil
}

// CompareRange compares the substring (pos1, count1) of v against the
// substring (pos2, count2) of other
func (v View[C]) CompareRange(pos1, count1 int, other View[C], pos2, count2 int) (int, error) {
	sub, err := v.substr("compare", pos1, count1)
	if err != nil {
		return 0, err
	}
	otherSub, err := other.substr("compare", pos2, count2)
	if err != nil {
		return 0, err
	}
	return sub.Compare(otherSub), nil
}

func (v View[C]) Equal(other View[C]) bool {
	return len(v.data) == len(other.data) && v.Compare(other) == 0
}

func (v View[C]) NotEqual(other View[C]) bool {
	return !v.Equal(other)
}

func (v View[C]) Less(other View[C]) bool {
	return v.Compare(other) < 0
}

func (v View[C]) LessOrEqual(other View[C]) bool {
	return v.Compare(other) <= 0
}

func (v View[C]) Greater(other View[C]) bool {
	return v.Compare(other) > 0
}

func (v View[C]) GreaterOrEqual(other View[C]) bool {
	return v.Compare(other) >= 0
}

// StartsWith reports whether v begins with prefix
func (v View[C]) StartsWith(prefix View[C]) bool {
	n := len(prefix.data)
	return len(v.data) >= n && CompareChars(v.data, prefix.data, n) == 0
}

// StartsWithChar reports whether v is non-empty and begins with c
func (v View[C]) StartsWithChar(c C) bool {
	return len(v.data) > 0 && Eq(v.data[0], c)
}

// EndsWith reports whether v ends with suffix
func (v View[C]) EndsWith(suffix View[C]) bool {
	n := len(suffix.data)
	return len(v.data) >= n && CompareChars(v.data[len(v.data)-n:], suffix.data, n) == 0
}

// EndsWithChar reports whether v is non-empty and ends with c
func (v View[C]) EndsWithChar(c C) bool {
	return len(v.data) > 0 && Eq(v.data[len(v.data)-1], c)
}

// Contains reports whether needle occurs in v. The empty needle occurs in
// every view.
func (v View[C]) Contains(needle View[C]) bool {
	return v.Find(needle, 0) != NPos
}

// ContainsChar reports whether c occurs in v
func (v View[C]) ContainsChar(c C) bool {
	return v.FindChar(c, 0) != NPos
}
