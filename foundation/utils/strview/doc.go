// File: doc.go
// Title: String View Package Documentation
// Description: Package strview provides View, a generic non-owning read-only
//              window onto a contiguous character sequence.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-21
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-21 v0.1.0: Initial implementation
// - 2026-10-04 v0.2.0: Iterators and hashing

/*
Package strview provides View, a pointer-plus-length window onto characters
owned by someone else.

A View never allocates and never copies on construction. It can be built
from a Go slice, a Go string (byte views only), an explicit pointer and
count, or a zero-terminated sequence:

	v := strview.FromString("Hello, World")
	hello, _ := v.Substr(0, 5)
	pos := v.Find(strview.FromString("World"), 0) // 7

Four instantiations are predeclared: StrView (bytes), U16View (UTF-16 code
units), U32View (runes) and WView (platform wide characters). All of them
share the same operations since View is generic over the Char constraint.

# Positions and NPos

Sizes and positions are ints. Searches return NPos when nothing is found,
and NPos (or any negative value) passed as a count means "to the end".
Forward searches treat a negative start position as 0; backward searches
treat positions at or past the end as "from the end".

# Errors and contract violations

At, Substr, Tail, Copy, CompareAt and CompareRange check their positions and
return an error with code VALUE_OUT_OF_RANGE from foundation/core/errors;
IsOutOfRange recognizes it. Index, Front, Back, RemovePrefix and
RemoveSuffix expect valid arguments and panic with a runtime bounds error
otherwise.

# Lifetime

The viewed memory must outlive the view and must not be modified while the
view is used. Views are plain values: copying one copies the window, not
the characters, and concurrent reads are safe.
*/
package strview
