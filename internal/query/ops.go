package query

import (
	"context"
	"fmt"
	"hash/maphash"
	"slices"
	"unicode/utf8"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	mdwlog "github.com/msto63/strview/foundation/core/log"
	"github.com/msto63/strview/foundation/utils/stringx"
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

// defaultTrimSet is used when neither the request nor the configuration
// names characters to trim
const defaultTrimSet = " \t\n\v\f\r"

// execute runs req on views of character type C
func execute[C mdwstrview.Char](ctx context.Context, e *Engine, log *mdwlog.Logger, req Request, res *Result) error {
	v := mdwstrview.FromSlice(Encode[C](req.Text))
	arg := mdwstrview.FromSlice(Encode[C](req.Arg))
	res.Size = v.Size()

	switch req.Operation {
	case OpInspect:
		inspect(v, req, e.limit(), log, res)
	case OpAt:
		c, err := v.At(req.Pos)
		if err != nil {
			return err
		}
		res.Position = ptr(req.Pos)
		res.Value = ptr(Decode([]C{c}))
		res.Segments = segments(v, []span{{req.Pos, 1}})
	case OpFind:
		return find(ctx, v, arg, req, e.limit(), res)
	case OpFindOf:
		findOf(v, arg, req, res)
	case OpContains, OpStartsWith, OpEndsWith:
		predicate(v, arg, req.Operation, res)
	case OpSubstr:
		sub, err := v.Substr(req.Pos, req.Count)
		if err != nil {
			return err
		}
		res.Position = ptr(req.Pos)
		res.Count = ptr(sub.Size())
		res.Value = ptr(Decode(sub.Clone()))
		res.Segments = segments(v, []span{{req.Pos, sub.Size()}})
	case OpCompare:
		return compare(v, arg, req, res)
	case OpTrim:
		trim(v, arg, req.Side, e.cfg.TrimSet, res)
	case OpCut:
		before, after, found := stringx.Cut(v, arg)
		res.Found = ptr(found)
		res.Parts = []string{Decode(before.Chars()), Decode(after.Chars())}
		if found {
			res.Position = ptr(before.Size())
			res.Segments = segments(v, []span{{before.Size(), arg.Size()}})
		}
	case OpSplit:
		return split(v, arg, req.Unique, e, res)
	case OpFields:
		return fields(ctx, v, req.Unique, e, res)
	case OpTokens:
		tokens, err := stringx.Tokens(v, arg)
		if err != nil {
			return err
		}
		tokens = capParts(tokens, e.limit(), res)
		res.Count = ptr(len(tokens))
		res.Parts = decodeParts(tokens, req.Unique, e.seed)
	case OpLines:
		return lines(ctx, v, req, e, res)
	default:
		return mdwerrors.QueryUnknownOperation(string(req.Operation))
	}
	return nil
}

func inspect[C mdwstrview.Char](v mdwstrview.View[C], req Request, limit int, log *mdwlog.Logger, res *Result) {
	info := &Inspection{
		Empty:   v.Empty(),
		Blank:   stringx.IsBlank(v),
		Runes:   utf8.RuneCountInString(req.Text),
		MaxSize: v.MaxSize(),
		Units:   make([]string, 0, v.Size()),
	}
	if !v.Empty() {
		info.Front = Decode([]C{v.Front()})
		info.Back = Decode([]C{v.Back()})
	}

	digits := unitDigits(res.Width)
	trace := log.IsLevelEnabled(mdwlog.LevelTrace)
	for i, c := range v.All() {
		if limit > 0 && i == limit {
			res.Truncated = true
			break
		}
		unit := fmt.Sprintf("%0*x", digits, uint64(c))
		info.Units = append(info.Units, unit)
		if trace {
			log.Trace("unit", mdwlog.Fields{"index": i, "value": unit})
		}
	}
	res.Inspect = info
}

func unitDigits(w Width) int {
	switch w {
	case Width8:
		return 2
	case Width16:
		return 4
	default:
		return 8
	}
}

func find[C mdwstrview.Char](ctx context.Context, v, needle mdwstrview.View[C], req Request, limit int, res *Result) error {
	if !req.All {
		var pos int
		if req.Reverse {
			pos = v.RFind(needle, startPos(req, mdwstrview.NPos))
		} else {
			pos = v.Find(needle, startPos(req, 0))
		}
		res.setPosition(pos)
		if pos != mdwstrview.NPos {
			res.Segments = segments(v, []span{{pos, needle.Size()}})
		}
		return nil
	}

	step := max(needle.Size(), 1)
	var spans []span
	for pos := v.Find(needle, startPos(req, 0)); pos != mdwstrview.NPos; pos = v.Find(needle, pos+step) {
		if err := ctx.Err(); err != nil {
			return mdwerrors.OperationFailed(mdwerrors.ModuleQuery, string(req.Operation), err)
		}
		if limit > 0 && len(res.Positions) == limit {
			res.Truncated = true
			break
		}
		res.Positions = append(res.Positions, pos)
		spans = append(spans, span{pos, needle.Size()})
	}

	res.Found = ptr(len(res.Positions) > 0)
	res.Count = ptr(stringx.Count(v, needle))
	res.Segments = segments(v, spans)
	return nil
}

func startPos(req Request, natural int) int {
	if req.HasPos {
		return req.Pos
	}
	return natural
}

func findOf[C mdwstrview.Char](v, set mdwstrview.View[C], req Request, res *Result) {
	var pos int
	if set.Size() == 1 {
		c := set.Front()
		switch {
		case req.Last && req.Not:
			pos = v.FindLastNotOfChar(c, startPos(req, mdwstrview.NPos))
		case req.Last:
			pos = v.FindLastOfChar(c, startPos(req, mdwstrview.NPos))
		case req.Not:
			pos = v.FindFirstNotOfChar(c, startPos(req, 0))
		default:
			pos = v.FindFirstOfChar(c, startPos(req, 0))
		}
	} else {
		switch {
		case req.Last && req.Not:
			pos = v.FindLastNotOf(set, startPos(req, mdwstrview.NPos))
		case req.Last:
			pos = v.FindLastOf(set, startPos(req, mdwstrview.NPos))
		case req.Not:
			pos = v.FindFirstNotOf(set, startPos(req, 0))
		default:
			pos = v.FindFirstOf(set, startPos(req, 0))
		}
	}

	res.setPosition(pos)
	if pos != mdwstrview.NPos {
		res.Value = ptr(Decode([]C{v.Index(pos)}))
		res.Segments = segments(v, []span{{pos, 1}})
	}
}

func predicate[C mdwstrview.Char](v, arg mdwstrview.View[C], op Operation, res *Result) {
	switch op {
	case OpContains:
		pos := v.Find(arg, 0)
		res.Found = ptr(v.Contains(arg))
		if pos != mdwstrview.NPos {
			res.Position = ptr(pos)
			res.Segments = segments(v, []span{{pos, arg.Size()}})
		}
	case OpStartsWith:
		rest, found := stringx.CutPrefix(v, arg)
		res.Found = ptr(found)
		if found {
			res.Value = ptr(Decode(rest.Chars()))
			res.Segments = segments(v, []span{{0, arg.Size()}})
		}
	case OpEndsWith:
		rest, found := stringx.CutSuffix(v, arg)
		res.Found = ptr(found)
		if found {
			res.Value = ptr(Decode(rest.Chars()))
			res.Segments = segments(v, []span{{rest.Size(), arg.Size()}})
		}
	}
}

func compare[C mdwstrview.Char](v, other mdwstrview.View[C], req Request, res *Result) error {
	if req.Fold {
		if req.HasPos {
			sub, err := v.Substr(req.Pos, req.Count)
			if err != nil {
				return err
			}
			v = sub
		}
		res.Found = ptr(stringx.EqualFold(v, other))
		return nil
	}

	var ordering int
	if req.HasPos {
		var err error
		ordering, err = v.CompareAt(req.Pos, req.Count, other)
		if err != nil {
			return err
		}
	} else {
		ordering = v.Compare(other)
	}
	res.Ordering = ptr(ordering)
	res.Found = ptr(ordering == 0)
	return nil
}

func trim[C mdwstrview.Char](v, set mdwstrview.View[C], side TrimSide, configured string, res *Result) {
	if set.Empty() {
		if configured == "" {
			configured = defaultTrimSet
		}
		set = mdwstrview.FromSlice(Encode[C](configured))
	}

	start := 0
	if side != TrimRight {
		start = v.Size() - stringx.TrimLeft(v, set).Size()
	}

	var kept mdwstrview.View[C]
	switch side {
	case TrimLeft:
		kept = stringx.TrimLeft(v, set)
	case TrimRight:
		kept = stringx.TrimRight(v, set)
	default:
		kept = stringx.Trim(v, set)
	}

	res.Position = ptr(start)
	res.Count = ptr(kept.Size())
	res.Value = ptr(Decode(kept.Chars()))
	res.Segments = segments(v, []span{{start, kept.Size()}})
}

func split[C mdwstrview.Char](v, sep mdwstrview.View[C], unique bool, e *Engine, res *Result) error {
	n := -1
	if limit := e.limit(); limit > 0 {
		n = limit
	}
	parts, err := stringx.SplitAll(v, sep, n)
	if err != nil {
		return err
	}
	if n > 0 && len(parts) == n && stringx.Count(v, sep) >= n {
		res.Truncated = true
	}

	spans := make([]span, 0, len(parts))
	pos := 0
	for _, part := range parts {
		spans = append(spans, span{pos, part.Size()})
		pos += part.Size() + sep.Size()
	}

	res.Count = ptr(len(parts))
	res.Parts = decodeParts(parts, unique, e.seed)
	res.Segments = segments(v, spans)
	return nil
}

func fields[C mdwstrview.Char](ctx context.Context, v mdwstrview.View[C], unique bool, e *Engine, res *Result) error {
	var parts []mdwstrview.View[C]
	var spans []span
	cursor := 0
	for field := range stringx.Fields(v) {
		if err := ctx.Err(); err != nil {
			return mdwerrors.OperationFailed(mdwerrors.ModuleQuery, string(OpFields), err)
		}
		if limit := e.limit(); limit > 0 && len(parts) == limit {
			res.Truncated = true
			break
		}
		// only whitespace lies between cursor and the field
		pos := v.Find(field, cursor)
		parts = append(parts, field)
		spans = append(spans, span{pos, field.Size()})
		cursor = pos + field.Size()
	}

	res.Count = ptr(len(parts))
	res.Parts = decodeParts(parts, unique, e.seed)
	res.Segments = segments(v, spans)
	return nil
}

func lines[C mdwstrview.Char](ctx context.Context, v mdwstrview.View[C], req Request, e *Engine, res *Result) error {
	var parts []mdwstrview.View[C]
	for line := range stringx.Lines(v) {
		if err := ctx.Err(); err != nil {
			return mdwerrors.OperationFailed(mdwerrors.ModuleQuery, string(OpLines), err)
		}
		if req.SkipBlank && stringx.IsBlank(line) {
			continue
		}
		if req.TrimLines {
			line = stringx.TrimSpace(line)
		}
		parts = append(parts, line)
	}

	parts = capParts(parts, e.limit(), res)
	res.Count = ptr(len(parts))
	res.Parts = decodeParts(parts, req.Unique, e.seed)
	return nil
}

// capParts truncates parts to limit; 0 means unbounded
func capParts[C mdwstrview.Char](parts []mdwstrview.View[C], limit int, res *Result) []mdwstrview.View[C] {
	if limit > 0 && len(parts) > limit {
		res.Truncated = true
		return parts[:limit]
	}
	return parts
}

// decodeParts converts views to text. With unique set, views equal to an
// earlier one are dropped; equality is confirmed after a hash match.
func decodeParts[C mdwstrview.Char](parts []mdwstrview.View[C], unique bool, seed maphash.Seed) []string {
	out := make([]string, 0, len(parts))
	seen := make(map[uint64][]mdwstrview.View[C])
	for _, part := range parts {
		if unique {
			h := part.Hash(seed)
			if slices.ContainsFunc(seen[h], part.Equal) {
				continue
			}
			seen[h] = append(seen[h], part)
		}
		out = append(out, Decode(part.Chars()))
	}
	return out
}
