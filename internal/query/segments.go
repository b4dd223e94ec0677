package query

import (
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

type span struct {
	pos, n int
}

// segments cuts v into matched and unmatched pieces. Spans must be sorted
// and must not overlap.
func segments[C mdwstrview.Char](v mdwstrview.View[C], spans []span) []Segment {
	units := v.Chars()
	out := make([]Segment, 0, 2*len(spans)+1)
	cursor := 0
	for _, s := range spans {
		if s.pos > cursor {
			out = append(out, Segment{Text: Decode(units[cursor:s.pos])})
		}
		if s.n > 0 {
			out = append(out, Segment{Text: Decode(units[s.pos : s.pos+s.n]), Match: true})
		}
		cursor = s.pos + s.n
	}
	if cursor < len(units) {
		out = append(out, Segment{Text: Decode(units[cursor:])})
	}
	return out
}
