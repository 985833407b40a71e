package selection

import "corvid/charclass"

// SelectTo extends the selection forward to the count'th occurrence of
// c, landing on c itself when inclusive or just before it otherwise.
// Fails if the buffer runs out before count occurrences are found.
func SelectTo(ctx Context, sel Selection, c rune, count int, inclusive bool) (Selection, bool) {
	buf := ctx.Buf
	begin := buf.IteratorAt(sel.Cursor)
	end := begin
	notC := func(r rune) bool { return r != c }
	for {
		end = end.Next()
		charclass.SkipWhile(&end, buf.End(), notC)
		if end.AtEnd() {
			return Selection{}, false
		}
		count--
		if count <= 0 {
			break
		}
	}
	last := end
	if !inclusive {
		last = last.Prev()
	}
	return fromRange(begin, last), true
}

// SelectToReverse is the mirror of SelectTo, searching backward.
func SelectToReverse(ctx Context, sel Selection, c rune, count int, inclusive bool) (Selection, bool) {
	buf := ctx.Buf
	begin := buf.IteratorAt(sel.Cursor)
	end := begin
	notC := func(r rune) bool { return r != c }
	for {
		end = end.Prev()
		if charclass.SkipWhileReverse(&end, buf.Begin(), notC) {
			return Selection{}, false
		}
		count--
		if count <= 0 {
			break
		}
	}
	last := end
	if !inclusive {
		last = last.Next()
	}
	return fromRange(begin, last), true
}
