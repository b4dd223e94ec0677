// File: compare_test.go
// Title: View Comparison Tests
// Description: Tests for three-way comparison, the derived relations,
//              positional comparisons and prefix/suffix/containment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-21
// Modified: 2026-09-21
//
// Change History:
// - 2026-09-21 v0.1.0: Initial test implementation

package strview

import (
	"slices"
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "a", -1},
		{"a", "", 1},
		{"abc", "abc", 0},
		{"abc", "abd", -1},
		{"abd", "abc", 1},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"B", "a", -1},
		{"\xff", "\x01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := FromString(tt.a), FromString(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(a, b); got != strings.Compare(tt.a, tt.b) {
				t.Errorf("Compare disagrees with strings.Compare for %q, %q", tt.a, tt.b)
			}
			if got := a.CompareSlice([]byte(tt.b)); got != tt.want {
				t.Errorf("CompareSlice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareWideOrdering(t *testing.T) {
	// code unit order, not locale order
	a := FromSlice([]uint16{0x00e9})
	b := FromSlice([]uint16{'z'})
	if a.Compare(b) != 1 {
		t.Error("U+00E9 should order after 'z' by code unit")
	}

	buf := []WChar{'a', 'b', 0}
	if FromSlice([]WChar{'a', 'b'}).CompareTerminated(&buf[0]) != 0 {
		t.Error("CompareTerminated should stop at the terminator")
	}
	if FromSlice([]WChar{'a'}).CompareTerminated(&buf[0]) != -1 {
		t.Error("shorter view should sort first")
	}
}

func TestRelationsAreConsistent(t *testing.T) {
	words := []string{"", "a", "ab", "abc", "abd", "b", "ba", "zz"}

	for _, x := range words {
		for _, y := range words {
			a, b := FromString(x), FromString(y)
			c := a.Compare(b)

			if a.Equal(b) != (c == 0) || a.NotEqual(b) != (c != 0) {
				t.Errorf("equality inconsistent for %q, %q", x, y)
			}
			if a.Less(b) != (c < 0) || a.LessOrEqual(b) != (c <= 0) {
				t.Errorf("less inconsistent for %q, %q", x, y)
			}
			if a.Greater(b) != (c > 0) || a.GreaterOrEqual(b) != (c >= 0) {
				t.Errorf("greater inconsistent for %q, %q", x, y)
			}
			if b.Compare(a) != -c {
				t.Errorf("Compare not antisymmetric for %q, %q", x, y)
			}
			if a.Equal(b) != (x == y) {
				t.Errorf("Equal(%q, %q) = %v", x, y, a.Equal(b))
			}

			for _, z := range words {
				cz := FromString(z)
				if a.LessOrEqual(b) && b.LessOrEqual(cz) && !a.LessOrEqual(cz) {
					t.Errorf("ordering not transitive for %q <= %q <= %q", x, y, z)
				}
			}
		}
	}
}

func TestSortFunc(t *testing.T) {
	views := []StrView{FromString("pear"), FromString("apple"), FromString("fig"), FromString("")}
	slices.SortFunc(views, Compare[byte])

	got := make([]string, len(views))
	for i, v := range views {
		got[i] = v.String()
	}
	want := []string{"", "apple", "fig", "pear"}
	if !slices.Equal(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestCompareAtAndRange(t *testing.T) {
	v := FromString("Hello, World")
	world := FromString("World")

	got, err := v.CompareAt(7, 5, world)
	if err != nil || got != 0 {
		t.Errorf("CompareAt(7, 5) = %d, %v", got, err)
	}

	got, err = v.CompareAt(0, 5, world)
	if err != nil || got != -1 {
		t.Errorf("CompareAt(0, 5) = %d, %v", got, err)
	}

	if _, err := v.CompareAt(13, 1, world); !IsOutOfRange(err) {
		t.Errorf("CompareAt(13) error = %v, want out of range", err)
	}

	other := FromString("Big World!")
	got, err = v.CompareRange(7, NPos, other, 4, 5)
	if err != nil || got != 0 {
		t.Errorf("CompareRange() = %d, %v", got, err)
	}

	if _, err := v.CompareRange(0, 1, other, 11, 1); !IsOutOfRange(err) {
		t.Errorf("CompareRange() with bad pos2 error = %v", err)
	}
}

func TestPrefixSuffixContains(t *testing.T) {
	url := FromString("http://example.com")

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"starts with http", url.StartsWith(FromString("http")), true},
		{"starts with https", url.StartsWith(FromString("https")), false},
		{"starts with empty", url.StartsWith(New[byte]()), true},
		{"starts with longer", FromString("ht").StartsWith(FromString("http")), false},
		{"starts with char", url.StartsWithChar('h'), true},
		{"empty starts with char", New[byte]().StartsWithChar('h'), false},
		{"ends with .com", url.EndsWith(FromString(".com")), true},
		{"ends with .org", url.EndsWith(FromString(".org")), false},
		{"ends with empty", New[byte]().EndsWith(New[byte]()), true},
		{"ends with char", url.EndsWithChar('m'), true},
		{"empty ends with char", New[byte]().EndsWithChar('m'), false},
		{"contains example", url.Contains(FromString("example")), true},
		{"contains missing", url.Contains(FromString("sample.org")), false},
		{"contains empty", New[byte]().Contains(New[byte]()), true},
		{"contains char", url.ContainsChar(':'), true},
		{"contains missing char", url.ContainsChar('?'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestStartsEndsMatchSubstr(t *testing.T) {
	v := FromString("abracadabra")
	for n := 0; n <= v.Size(); n++ {
		prefix, _ := v.Substr(0, n)
		suffix, _ := v.Substr(v.Size()-n, NPos)
		if !v.StartsWith(prefix) {
			t.Errorf("StartsWith(%q) = false", prefix)
		}
		if !v.EndsWith(suffix) {
			t.Errorf("EndsWith(%q) = false", suffix)
		}
	}
}
