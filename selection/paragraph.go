package selection

import (
	"corvid/charclass"
	"corvid/textbuf"
)

// SelectParagraph selects a run of non-blank lines, or with ToEnd
// alone, a run of blank lines, matching the cursor's position relative
// to the boundary between the two.
func SelectParagraph(ctx Context, sel Selection, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	first := buf.IteratorAt(sel.Cursor)

	if !flags.Has(ToEnd) && (textbuf.Coord{Line: 0, Column: 1}).Less(first.Coord()) &&
		first.Prev().Rune() == '\n' && first.Prev().Prev().Rune() == '\n' {
		first = first.Prev()
	} else if flags.Has(ToEnd) && !first.Equal(buf.Begin()) && !first.Next().Equal(buf.End()) &&
		first.Prev().Rune() == '\n' && first.Rune() == '\n' {
		first = first.Next()
	}

	last := first

	if flags.Has(ToBegin) && !first.Equal(buf.Begin()) {
		charclass.SkipWhileReverse(&first, buf.Begin(), charclass.IsEOL)
		if flags.Has(ToEnd) {
			last = first
		}
		for !first.Equal(buf.Begin()) {
			cur := first.Rune()
			prev := first.Prev().Rune()
			if charclass.IsEOL(prev) && charclass.IsEOL(cur) {
				first = first.Next()
				break
			}
			first = first.Prev()
		}
	}
	if flags.Has(ToEnd) {
		if !last.Equal(buf.End()) && charclass.IsEOL(last.Rune()) {
			last = last.Next()
		}
		for !last.Equal(buf.End()) {
			if !last.Equal(buf.Begin()) && charclass.IsEOL(last.Rune()) && charclass.IsEOL(last.Prev().Rune()) {
				if !flags.Has(Inner) {
					charclass.SkipWhile(&last, buf.End(), charclass.IsEOL)
				}
				break
			}
			last = last.Next()
		}
		last = last.Prev()
	}
	if flags.Has(ToEnd) {
		return fromRange(first, last), true
	}
	return fromRange(last, first), true
}
