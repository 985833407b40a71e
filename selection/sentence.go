package selection

import "corvid/charclass"

func isEndOfSentence(r rune) bool {
	return r == '.' || r == ';' || r == '!' || r == '?'
}

// SelectSentence selects the sentence the cursor sits in, delimited by
// '.', ';', '!', '?' or blank-line boundaries.
func SelectSentence(ctx Context, sel Selection, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	first := buf.IteratorAt(sel.Cursor)

	if !flags.Has(ToEnd) {
		prevNonBlank := first.Prev()
		charclass.SkipWhileReverse(&prevNonBlank, buf.Begin(), func(r rune) bool {
			return charclass.IsHorizontalBlank(r) || charclass.IsEOL(r)
		})
		if isEndOfSentence(prevNonBlank.Rune()) {
			first = prevNonBlank
		}
	}

	last := first

	if flags.Has(ToBegin) {
		sawNonBlank := false
		for !first.Equal(buf.Begin()) {
			cur := first.Rune()
			prev := first.Prev().Rune()
			if !charclass.IsHorizontalBlank(cur) {
				sawNonBlank = true
			}
			if charclass.IsEOL(prev) && charclass.IsEOL(cur) {
				first = first.Next()
				break
			} else if isEndOfSentence(prev) {
				if sawNonBlank {
					break
				} else if flags.Has(ToEnd) {
					last = first.Prev()
				}
			}
			first = first.Prev()
		}
		charclass.SkipWhile(&first, buf.End(), charclass.IsHorizontalBlank)
	}
	if flags.Has(ToEnd) {
		for !last.Equal(buf.End()) {
			cur := last.Rune()
			next := last.Next()
			if isEndOfSentence(cur) || (charclass.IsEOL(cur) && (next.Equal(buf.End()) || charclass.IsEOL(next.Rune()))) {
				break
			}
			last = last.Next()
		}
		if !flags.Has(Inner) && !last.Equal(buf.End()) {
			last = last.Next()
			charclass.SkipWhile(&last, buf.End(), charclass.IsHorizontalBlank)
			last = last.Prev()
		}
	}
	if flags.Has(ToEnd) {
		return fromRange(first, last), true
	}
	return fromRange(last, first), true
}
