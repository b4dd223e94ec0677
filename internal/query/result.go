// ============================================================================
// strview - Character View Toolkit
// ============================================================================
//
// Package:     query
// Description: Query requests and their results
// Author:      Mike Stoffels
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package query

import (
	mdwstrview "github.com/msto63/strview/foundation/utils/strview"
)

// Operation names a query
type Operation string

const (
	OpInspect    Operation = "inspect"
	OpAt         Operation = "at"
	OpFind       Operation = "find"
	OpFindOf     Operation = "find-of"
	OpContains   Operation = "contains"
	OpStartsWith Operation = "starts-with"
	OpEndsWith   Operation = "ends-with"
	OpSubstr     Operation = "substr"
	OpCompare    Operation = "compare"
	OpTrim       Operation = "trim"
	OpCut        Operation = "cut"
	OpSplit      Operation = "split"
	OpFields     Operation = "fields"
	OpTokens     Operation = "tokens"
	OpLines      Operation = "lines"
)

// Operations lists every operation the engine runs
var Operations = []Operation{
	OpInspect, OpAt, OpFind, OpFindOf, OpContains, OpStartsWith, OpEndsWith,
	OpSubstr, OpCompare, OpTrim, OpCut, OpSplit, OpFields, OpTokens, OpLines,
}

// Valid reports whether the engine knows op
func (op Operation) Valid() bool {
	for _, known := range Operations {
		if op == known {
			return true
		}
	}
	return false
}

// TrimSide selects which ends trim removes characters from
type TrimSide int

const (
	TrimBoth TrimSide = iota
	TrimLeft
	TrimRight
)

// Request describes one query. Text and Arg are encoded in the request's
// width before the operation runs, so positions and counts are code units
// of that width.
type Request struct {
	Operation Operation
	Width     Width
	Text      string
	Arg       string

	// Pos is a start position for searches and the first position for
	// at, substr and ranged compare. Without HasPos searches use their
	// natural start.
	Pos    int
	HasPos bool
	// Count bounds substr and ranged compare. Negative means to the end.
	Count int

	Reverse bool
	All     bool
	Last    bool
	Not     bool
	Fold    bool
	Side    TrimSide
	Unique  bool
	// SkipBlank drops blank lines, TrimLines trims each line
	SkipBlank bool
	TrimLines bool
}

// Segment is a piece of the input text, marked when it belongs to a match
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Inspection describes a whole view
type Inspection struct {
	Empty   bool     `json:"empty"`
	Blank   bool     `json:"blank"`
	Runes   int      `json:"runes"`
	MaxSize int      `json:"max_size"`
	Front   string   `json:"front,omitempty"`
	Back    string   `json:"back,omitempty"`
	Units   []string `json:"units"`
}

// Result is the outcome of a query. Fields that do not apply to the
// operation stay nil and are left out of JSON output.
type Result struct {
	Operation Operation `json:"operation"`
	Width     Width     `json:"width"`
	Input     string    `json:"input"`
	Size      int       `json:"size"`

	Found     *bool    `json:"found,omitempty"`
	Position  *int     `json:"position,omitempty"`
	Positions []int    `json:"positions,omitempty"`
	Count     *int     `json:"count,omitempty"`
	Ordering  *int     `json:"ordering,omitempty"`
	Value     *string  `json:"value,omitempty"`
	Parts     []string `json:"parts,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`

	Inspect *Inspection `json:"inspect,omitempty"`

	Segments []Segment `json:"-"`
}

// setPosition records a search result; NPos means not found
func (r *Result) setPosition(pos int) {
	found := pos != mdwstrview.NPos
	r.Found = &found
	if found {
		r.Position = &pos
	}
}

func ptr[T any](v T) *T {
	return &v
}
