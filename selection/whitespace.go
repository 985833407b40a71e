package selection

import "corvid/charclass"

// SelectWhitespace selects the run of horizontal whitespace (and,
// unless Inner, newlines) touching the cursor. Fails if the cursor
// isn't on whitespace.
func SelectWhitespace(ctx Context, sel Selection, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	isWhitespace := func(r rune) bool {
		return r == ' ' || r == '\t' || (!flags.Has(Inner) && r == '\n')
	}

	first := buf.IteratorAt(sel.Cursor)
	last := first

	if !isWhitespace(first.Rune()) {
		return Selection{}, false
	}

	if flags.Has(ToBegin) {
		charclass.SkipWhileReverse(&first, buf.Begin(), isWhitespace)
		if !isWhitespace(first.Rune()) {
			first = first.Next()
		}
	}
	if flags.Has(ToEnd) {
		charclass.SkipWhile(&last, buf.End(), isWhitespace)
		last = last.Prev()
	}
	if flags.Has(ToEnd) {
		return fromRange(first, last), true
	}
	return fromRange(last, first), true
}
