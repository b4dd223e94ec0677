// File: view.go
// Title: Generic Read-Only Character View
// Description: Implements View, a non-owning pointer-plus-length window onto
//              a contiguous character sequence, with construction, element
//              access, shrinking, substrings and copy-out.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-21
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-21 v0.1.0: Initial implementation
// - 2026-10-04 v0.2.0: Capacity clipped to length, iterators and hashing

package strview

import (
	stderrors "errors"
	"hash/maphash"
	"iter"
	"math"
	"strings"
	"unsafe"

	mdwerror "github.com/msto63/strview/foundation/core/error"
	mdwerrors "github.com/msto63/strview/foundation/core/errors"
)

// NPos is returned by searches that find nothing and accepted as an
// unbounded count
const NPos = math.MaxInt

// View is a read-only window onto characters owned by someone else. The
// zero value is the empty view with a nil data pointer. The referenced
// memory must outlive the view and must not change while the view is in use.
//
// The backing slice always has cap == len so no operation can reach past
// the characters the view was built over.
type View[C Char] struct {
	data []C
}

// StrView is a view over bytes
type StrView = View[byte]

// U16View is a view over UTF-16 code units
type U16View = View[uint16]

// U32View is a view over UTF-32 code points
type U32View = View[rune]

// WView is a view over platform wide characters
type WView = View[WChar]

// New returns the empty view
func New[C Char]() View[C] {
	return View[C]{}
}

// FromParts views exactly n characters starting at p. Nothing is validated;
// a nil p is only valid with n == 0.
func FromParts[C Char](p *C, n int) View[C] {
	if p == nil && n == 0 {
		return View[C]{}
	}
	return View[C]{data: unsafe.Slice(p, n)}
}

// FromTerminated views the characters before the first zero character at p.
// A nil p panics.
func FromTerminated[C Char](p *C) View[C] {
	return FromParts(p, Length(p))
}

// FromSlice views the elements of s. The view is invalidated when s is
// modified or reallocated.
func FromSlice[C Char](s []C) View[C] {
	return View[C]{data: s[:len(s):len(s)]}
}

// FromString views the bytes of s without copying
func FromString(s string) StrView {
	if len(s) == 0 {
		return StrView{}
	}
	return StrView{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Index returns the character at pos. pos must be in [0, Size()).
func (v View[C]) Index(pos int) C {
	return v.data[pos]
}

// At returns the character at pos or an out-of-range error
func (v View[C]) At(pos int) (C, error) {
	if pos < 0 || pos >= len(v.data) {
		var zero C
		return zero, mdwerrors.StrviewOutOfRange("at", pos, len(v.data))
	}
	return v.data[pos], nil
}

// Front returns the first character. The view must not be empty.
func (v View[C]) Front() C {
	return v.data[0]
}

// Back returns the last character. The view must not be empty.
func (v View[C]) Back() C {
	return v.data[len(v.data)-1]
}

// Data returns the pointer to the first character, nil for the zero view.
// The characters are not followed by a zero character unless the source
// happened to provide one.
func (v View[C]) Data() *C {
	return unsafe.SliceData(v.data)
}

// Chars returns the viewed characters. The slice aliases the source and
// must not be written to.
func (v View[C]) Chars() []C {
	return v.data
}

// Size returns the number of characters
func (v View[C]) Size() int {
	return len(v.data)
}

// Len is an alias of Size
func (v View[C]) Len() int {
	return len(v.data)
}

// Empty reports whether the view has no characters
func (v View[C]) Empty() bool {
	return len(v.data) == 0
}

// MaxSize returns the largest size a view can report
func (v View[C]) MaxSize() int {
	return NPos - 1
}

// RemovePrefix drops the first n characters. n must be in [0, Size()].
func (v *View[C]) RemovePrefix(n int) {
	v.data = v.data[n:]
}

// RemoveSuffix drops the last n characters. n must be in [0, Size()].
func (v *View[C]) RemoveSuffix(n int) {
	end := len(v.data) - n
	v.data = v.data[:end:end]
}

// Swap exchanges the contents of two views
func (v *View[C]) Swap(other *View[C]) {
	v.data, other.data = other.data, v.data
}

// Substr returns the view of at most count characters starting at pos.
// pos == Size() yields an empty view; a negative count or one reaching past
// the end means "to the end".
func (v View[C]) Substr(pos, count int) (View[C], error) {
	return v.substr("substr", pos, count)
}

// Tail returns the view from pos to the end
func (v View[C]) Tail(pos int) (View[C], error) {
	return v.substr("substr", pos, NPos)
}

func (v View[C]) substr(operation string, pos, count int) (View[C], error) {
	if pos < 0 || pos > len(v.data) {
		return View[C]{}, mdwerrors.StrviewOutOfRange(operation, pos, len(v.data))
	}
	end := pos + clampCount(count, len(v.data)-pos)
	return View[C]{data: v.data[pos:end:end]}, nil
}

// clampCount limits count to the available characters; negative means all
func clampCount(count, available int) int {
	if count < 0 || count > available {
		return available
	}
	return count
}

// Copy copies at most count characters starting at pos into dest and
// returns the number copied. Fewer are copied when the view or dest is
// shorter.
func (v View[C]) Copy(dest []C, count, pos int) (int, error) {
	if pos < 0 || pos > len(v.data) {
		return 0, mdwerrors.StrviewOutOfRange("copy", pos, len(v.data))
	}
	n := clampCount(count, len(v.data)-pos)
	return copy(dest, v.data[pos:pos+n]), nil
}

// Clone returns an owning copy of the characters
func (v View[C]) Clone() []C {
	out := make([]C, len(v.data))
	copy(out, v.data)
	return out
}

// String returns the characters as a Go string. Byte views copy their bytes;
// wider views write each code unit as a rune, which is meant for display.
func (v View[C]) String() string {
	var zero C
	if unsafe.Sizeof(zero) == 1 {
		b := make([]byte, len(v.data))
		for i, c := range v.data {
			b[i] = byte(c)
		}
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(v.data))
	for _, c := range v.data {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// ToString materializes a byte view
func ToString(v StrView) string {
	return string(v.data)
}

// All iterates over positions and characters front to back
func (v View[C]) All() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward iterates over positions and characters back to front
func (v View[C]) Backward() iter.Seq2[int, C] {
	return func(yield func(int, C) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Hash returns a content hash; equal views hash equally under one seed
func (v View[C]) Hash(seed maphash.Seed) uint64 {
	if len(v.data) == 0 {
		return maphash.Bytes(seed, nil)
	}
	size := int(unsafe.Sizeof(v.data[0]))
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&v.data[0])), len(v.data)*size)
	return maphash.Bytes(seed, raw)
}

// IsOutOfRange reports whether err, or an error it wraps, came from a
// position outside a view
func IsOutOfRange(err error) bool {
	var e *mdwerror.Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Code() == mdwerror.CodeValueOutOfRange && mdwerrors.ExtractModule(e) == mdwerrors.ModuleStrview
}
