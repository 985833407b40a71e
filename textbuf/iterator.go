package textbuf

// Iterator is a bidirectional codepoint iterator over a Buffer. It
// advances in byte space internally (via Coord.Column) but exposes
// codepoint semantics: Next/Prev always step over a whole rune, never
// landing on a continuation byte, and never landing on a coordinate
// that isn't the start of a line or a rune.
//
// The past-the-end sentinel is Buffer.End(): line == LineCount(),
// column == 0. Comparing an Iterator against another with == is valid
// since both wrap the same *Buffer and a Coord.
type Iterator struct {
	buf   *Buffer
	coord Coord
}

// Coord returns the iterator's current position.
func (it Iterator) Coord() Coord { return it.coord }

// AtEnd reports whether it is the buffer's end sentinel.
func (it Iterator) AtEnd() bool { return it.coord.Line >= it.buf.LineCount() }

// Equal reports whether two iterators reference the same buffer and
// coordinate.
func (it Iterator) Equal(o Iterator) bool { return it.buf == o.buf && it.coord == o.coord }

// Less reports whether it sorts strictly before o.
func (it Iterator) Less(o Iterator) bool { return it.coord.Less(o.coord) }

// Rune dereferences the iterator, returning the codepoint at its
// position. Dereferencing the end sentinel returns 0.
func (it Iterator) Rune() rune {
	if it.AtEnd() {
		return 0
	}
	r, _ := it.buf.RuneAt(it.coord)
	return r
}

// Next advances the iterator by one codepoint, wrapping to the start
// of the next line after a '\n'. Advancing past the last line lands on
// the end sentinel. Next never advances past Buffer.End().
func (it Iterator) Next() Iterator {
	if it.AtEnd() {
		return it
	}
	line := it.buf.Line(it.coord.Line)
	_, size := it.buf.RuneAt(it.coord)
	if size == 0 {
		size = 1
	}
	col := it.coord.Column + size
	if col >= len(line) {
		return Iterator{buf: it.buf, coord: Coord{Line: it.coord.Line + 1, Column: 0}}
	}
	return Iterator{buf: it.buf, coord: Coord{Line: it.coord.Line, Column: col}}
}

// Prev retreats the iterator by one codepoint, wrapping to the last
// codepoint of the previous line when at column 0. Prev never
// retreats past Buffer.Begin().
func (it Iterator) Prev() Iterator {
	if it.coord == (Coord{0, 0}) {
		return it
	}
	if it.coord.Column == 0 || it.AtEnd() {
		prevLine := it.coord.Line - 1
		if it.AtEnd() {
			prevLine = it.buf.LineCount() - 1
		}
		line := it.buf.Line(prevLine)
		col := prevRuneStart(line, len(line))
		return Iterator{buf: it.buf, coord: Coord{Line: prevLine, Column: col}}
	}
	line := it.buf.Line(it.coord.Line)
	col := prevRuneStart(line, it.coord.Column)
	return Iterator{buf: it.buf, coord: Coord{Line: it.coord.Line, Column: col}}
}

// prevRuneStart returns the byte index of the codepoint immediately
// before byte offset upTo within s.
func prevRuneStart(s string, upTo int) int {
	i := upTo - 1
	for i > 0 && isContinuationByte(s[i]) {
		i--
	}
	return i
}

func isContinuationByte(b byte) bool { return b&0xC0 == 0x80 }

// NextTo advances it by one codepoint, saturating at limit instead of
// the buffer's own end. Mirrors utf8::next(it, end) from spec.md §4.1.
func NextTo(it, limit Iterator) Iterator {
	if it.Equal(limit) || limit.Less(it) {
		return it
	}
	n := it.Next()
	if limit.Less(n) {
		return limit
	}
	return n
}

// PrevTo retreats it by one codepoint, saturating at begin instead of
// the buffer's own start. Mirrors utf8::previous(it, begin).
func PrevTo(it, begin Iterator) Iterator {
	if it.Equal(begin) || it.Less(begin) {
		return it
	}
	return it.Prev()
}

// Advance moves it forward by n codepoints (n may be negative).
func (it Iterator) Advance(n int) Iterator {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}
