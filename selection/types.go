// Package selection implements the selection engine of a Kakoune-style
// modal editor: selectors that turn a buffer plus an existing
// selection (or selection list) into a new selection, by traversing
// text with awareness of Unicode codepoints, word classes, matched
// delimiters, and syntactic text objects.
//
// Selectors never mutate the buffer; they are pure functions of
// (Context, Selection) -> (Selection, ok) or, for list-level
// operations, of (List) -> (List, error).
package selection

import (
	"math"

	"corvid/charclass"
	"corvid/textbuf"
)

// WordType selects the word regime a word-motion or word text-object
// selector uses. Re-exported from charclass so callers only need to
// import this package.
type WordType = charclass.WordType

const (
	Word WordType = charclass.Word
	WORD WordType = charclass.WORD
)

// EOLTarget is the sentinel target column meaning "end of line",
// mirroring Kakoune's INT_MAX convention.
const EOLTarget = math.MaxInt

// ObjectFlags is a bitmask of independent selector modifiers. Treat it
// as a small set (Has) rather than comparing its integer value.
type ObjectFlags uint8

const (
	ToBegin ObjectFlags = 1 << iota
	ToEnd
	Inner
)

// Has reports whether all bits of flag are set in f.
func (f ObjectFlags) Has(flag ObjectFlags) bool { return f&flag == flag }

// Any reports whether any bit of flag is set in f.
func (f ObjectFlags) Any(flag ObjectFlags) bool { return f&flag != 0 }

// Direction is the orientation of a selection: Forward when anchor <=
// cursor, Backward otherwise.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Selection is an ordered pair of inclusive buffer coordinates
// (anchor, cursor), plus any regex captures that produced it and a
// sticky target column used by vertical motions.
type Selection struct {
	Anchor       textbuf.Coord
	Cursor       textbuf.Coord
	Captures     []string
	TargetColumn int
}

// New builds a selection with anchor == cursor == c.
func New(c textbuf.Coord) Selection {
	return Selection{Anchor: c, Cursor: c}
}

// NewRange builds a selection spanning [anchor, cursor] with no
// captures.
func NewRange(anchor, cursor textbuf.Coord) Selection {
	return Selection{Anchor: anchor, Cursor: cursor}
}

// Min returns the smaller of Anchor and Cursor.
func (s Selection) Min() textbuf.Coord { return textbuf.Min(s.Anchor, s.Cursor) }

// Max returns the larger of Anchor and Cursor.
func (s Selection) Max() textbuf.Coord { return textbuf.Max(s.Anchor, s.Cursor) }

// Direction reports the selection's orientation.
func (s Selection) Direction() Direction {
	if s.Cursor.Less(s.Anchor) {
		return Backward
	}
	return Forward
}

// TargetEOL returns a copy of s with its target column set to the
// end-of-line sentinel.
func (s Selection) TargetEOL() Selection {
	s.TargetColumn = EOLTarget
	return s
}

// Clone returns a deep copy of s (captures are copied, not shared).
func (s Selection) Clone() Selection {
	c := s
	if len(s.Captures) > 0 {
		c.Captures = append([]string(nil), s.Captures...)
	}
	return c
}

// KeepDirection returns candidate re-oriented to match the direction
// of reference: if reference is backward, candidate's anchor/cursor
// are swapped so that it is backward too.
func KeepDirection(candidate, reference Selection) Selection {
	if reference.Direction() == Backward && candidate.Direction() == Forward {
		candidate.Anchor, candidate.Cursor = candidate.Cursor, candidate.Anchor
	}
	return candidate
}

// fromRange builds a Selection out of two textbuf.Iterators, ordering
// anchor/cursor so that the result runs first->last (i.e. anchor =
// first.Coord(), cursor = last.Coord()), matching the original's
// utf8_range helper.
func fromRange(first, last textbuf.Iterator) Selection {
	return NewRange(first.Coord(), last.Coord())
}
