// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     query
// Description: Character widths and the text encodings behind them
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package query

import (
	"strings"
	"unicode/utf16"
	"unsafe"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

// Width selects the view instantiation a query runs on
type Width string

const (
	Width8    Width = "8"
	Width16   Width = "16"
	Width32   Width = "32"
	WidthWide Width = "wide"
)

// ParseWidth validates a width name
func ParseWidth(s string) (Width, error) {
	switch w := Width(strings.ToLower(strings.TrimSpace(s))); w {
	case Width8, Width16, Width32, WidthWide:
		return w, nil
	}
	return "", mdwerrors.QueryInvalidWidth(s)
}

// Encode converts text into code units of C: UTF-8 bytes for 8-bit
// characters, UTF-16 for 16-bit and code points otherwise
func Encode[C mdwstrview.Char](text string) []C {
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		units := make([]C, len(text))
		for i := 0; i < len(text); i++ {
			units[i] = C(text[i])
		}
		return units
	case 2:
		encoded := utf16.Encode([]rune(text))
		units := make([]C, len(encoded))
		for i, u := range encoded {
			units[i] = C(u)
		}
		return units
	default:
		runes := []rune(text)
		units := make([]C, len(runes))
		for i, r := range runes {
			units[i] = C(r)
		}
		return units
	}
}

// Decode converts code units produced by Encode back to text. Unpaired
// surrogates and invalid bytes become U+FFFD.
func Decode[C mdwstrview.Char](units []C) string {
	var zero C
	switch unsafe.Sizeof(zero) {
	case 1:
		b := make([]byte, len(units))
		for i, u := range units {
			b[i] = byte(u)
		}
		return strings.ToValidUTF8(string(b), "�")
	case 2:
		u16 := make([]uint16, len(units))
		for i, u := range units {
			u16[i] = uint16(u)
		}
		return string(utf16.Decode(u16))
	default:
		return mdwstrview.FromSlice(units).String()
	}
}
