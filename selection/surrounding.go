package selection

import (
	"strings"

	"corvid/textbuf"
)

// findClosingInString scans text[pos:end] for the next occurrence of
// closing, tracking nesting against opening when nestable, and returns
// the index of the last byte of the closing delimiter that balances
// initLevel. It mirrors Kakoune's find_closing template, specialized
// to operate on a flat string (the buffer is flattened to
// (line,column) <-> byte-offset around the call site, since the
// underlying scan is byte-oriented regardless of line structure).
func findClosingInString(text string, pos, end int, opening, closing string, initLevel int, nestable bool) (int, bool) {
	openingLen, closingLen := len(opening), len(closing)
	level := 0
	if nestable {
		level = initLevel
	}

	if end-pos >= openingLen && text[pos:pos+openingLen] == opening {
		pos += openingLen
	}

	for pos != end {
		idx := strings.Index(text[pos:end], closing)
		if idx < 0 {
			return 0, false
		}
		closePos := pos + idx

		if nestable {
			open := pos
			for open != closePos {
				oidx := strings.Index(text[open:closePos], opening)
				if oidx < 0 {
					break
				}
				open += oidx
				if open == closePos {
					break
				}
				level++
				open += openingLen
			}
		}

		pos = closePos + closingLen
		if level == 0 {
			return pos - 1, true
		}
		level--
	}
	return 0, false
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// findSurroundingInString is the algorithmic core of the surrounding
// text object: given a flat string and a byte position, it finds the
// span bounded by opening/closing delimiters. It is exposed at
// package level (rather than folded into SelectSurrounding) because
// it is exactly the routine spec.md §8's find_surrounding scenario
// table exercises.
func findSurroundingInString(s string, pos int, opening, closing string, flags ObjectFlags, initLevel int) (first, last int, ok bool) {
	toBegin := flags.Has(ToBegin)
	toEnd := flags.Has(ToEnd)
	nestable := opening != closing

	first = pos
	if toBegin && !strings.HasPrefix(s[pos:], opening) {
		sub := s[:pos+1]
		rev := reverseString(sub)
		res, found := findClosingInString(rev, 0, len(rev), reverseString(closing), reverseString(opening), initLevel, nestable)
		if !found {
			return 0, 0, false
		}
		first = (len(sub) - 1) - res
	}

	last = pos
	if toEnd {
		res, found := findClosingInString(s, pos, len(s), opening, closing, initLevel, nestable)
		if !found {
			return 0, 0, false
		}
		last = res
	}

	if flags.Has(Inner) {
		if toBegin && first != last {
			first += len(opening)
		}
		if toEnd && first != last {
			last -= len(closing)
		}
	}
	if toEnd {
		return first, last, true
	}
	return last, first, true
}

// SelectSurrounding selects the span bounded by opening/closing
// delimiters around the cursor. If opening == closing the pair is
// non-nestable (quotes); otherwise it nests, and an exact outer match
// equal to the current selection retries one level up so repeated
// invocations grow to the enclosing pair.
func SelectSurrounding(ctx Context, sel Selection, opening, closing string, level int, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	nestable := opening != closing
	pos := sel.Cursor

	if !nestable || flags.Has(Inner) {
		f, l, ok := findSurroundingInString(buf.Text(), coordToOffset(buf, pos), opening, closing, flags, level)
		if !ok {
			return Selection{}, false
		}
		return NewRange(offsetToCoord(buf, f), offsetToCoord(buf, l)), true
	}

	c := buf.ByteAt(pos)
	if (flags == ToBegin && rune(c) == firstRune(opening)) || (flags == ToEnd && rune(c) == firstRune(closing)) {
		level++
	}

	f, l, ok := findSurroundingInString(buf.Text(), coordToOffset(buf, pos), opening, closing, flags, level)
	if !ok {
		return Selection{}, false
	}
	result := NewRange(offsetToCoord(buf, f), offsetToCoord(buf, l))

	if flags != (ToBegin|ToEnd) || result.Min() != sel.Min() || result.Max() != sel.Max() {
		return result, true
	}

	f2, l2, ok := findSurroundingInString(buf.Text(), coordToOffset(buf, pos), opening, closing, flags, level+1)
	if !ok {
		return Selection{}, false
	}
	return NewRange(offsetToCoord(buf, f2), offsetToCoord(buf, l2)), true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// coordToOffset and offsetToCoord translate between the engine's
// native (line, column) coordinates and a flat byte offset into
// Buffer.Text(), used by the surrounding-pair scan, whose underlying
// std::search-based algorithm is naturally byte-oriented, and by the
// regex selectors in regex.go.
func coordToOffset(buf *textbuf.Buffer, c textbuf.Coord) int {
	off := 0
	for i := 0; i < c.Line; i++ {
		off += len(buf.Line(i))
	}
	return off + c.Column
}

func offsetToCoord(buf *textbuf.Buffer, offset int) textbuf.Coord {
	for i := 0; i < buf.LineCount(); i++ {
		n := len(buf.Line(i))
		if offset < n {
			return textbuf.Coord{Line: i, Column: offset}
		}
		offset -= n
	}
	return buf.BackCoord()
}
