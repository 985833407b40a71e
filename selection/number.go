package selection

import "corvid/charclass"

// SelectNumber selects a run of digits (and, unless Inner, a
// surrounding decimal point) around the cursor. A leading '-' is
// swallowed by the ToEnd side but never required.
func SelectNumber(ctx Context, sel Selection, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	isNumber := func(r rune) bool {
		return (r >= '0' && r <= '9') || (!flags.Has(Inner) && r == '.')
	}

	first := buf.IteratorAt(sel.Cursor)
	last := first

	if !isNumber(first.Rune()) && first.Rune() != '-' {
		return Selection{}, false
	}

	if flags.Has(ToBegin) {
		charclass.SkipWhileReverse(&first, buf.Begin(), isNumber)
		next := first.Next()
		if !isNumber(first.Rune()) && first.Rune() != '-' && !next.Equal(buf.End()) {
			first = first.Next()
		}
	}

	if flags.Has(ToEnd) {
		if last.Rune() == '-' {
			last = last.Next()
		}
		charclass.SkipWhile(&last, buf.End(), isNumber)
		if !last.Equal(buf.Begin()) {
			last = last.Prev()
		}
	}

	if flags.Has(ToEnd) {
		return fromRange(first, last), true
	}
	return fromRange(last, first), true
}
