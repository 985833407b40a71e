package selection

import (
	"corvid/charclass"
)

func isWordRune(wt WordType, r rune, extra []rune) bool {
	return charclass.IsWord(wt, r, extra)
}

// SelectToNextWord starts at the cursor, adjusts for a class change
// immediately after it, skips end-of-line codepoints, then consumes a
// word or punctuation run followed by trailing horizontal blanks.
// Reports ok=false when the cursor is already at (or one before) the
// end of the buffer.
func SelectToNextWord(ctx Context, sel Selection, wt WordType) (Selection, bool) {
	extra := ctx.Opts.ExtraWordChars
	buf := ctx.Buf
	begin := buf.IteratorAt(sel.Cursor)
	end := buf.End()
	if begin.Next().Equal(end) {
		return Selection{}, false
	}
	if charclass.Categorize(wt, begin.Rune(), extra) != charclass.Categorize(wt, begin.Next().Rune(), extra) {
		begin = begin.Next()
	}
	if !charclass.SkipWhile(&begin, end, charclass.IsEOL) {
		return Selection{}, false
	}
	last := begin.Next()

	isWord := ctx.isWord(wt)
	if isWord(begin.Rune()) {
		charclass.SkipWhile(&last, end, isWord)
	} else if charclass.IsPunctuation(begin.Rune()) {
		charclass.SkipWhile(&last, end, charclass.IsPunctuation)
	}
	charclass.SkipWhile(&last, end, charclass.IsHorizontalBlank)

	return fromRange(begin, last.Prev()), true
}

// SelectToNextWordEnd mirrors SelectToNextWord but skips leading
// horizontal blanks before consuming the run, landing on the last
// character of the run rather than after its trailing blanks.
func SelectToNextWordEnd(ctx Context, sel Selection, wt WordType) (Selection, bool) {
	extra := ctx.Opts.ExtraWordChars
	buf := ctx.Buf
	begin := buf.IteratorAt(sel.Cursor)
	end := buf.End()
	if begin.Next().Equal(end) {
		return Selection{}, false
	}
	if charclass.Categorize(wt, begin.Rune(), extra) != charclass.Categorize(wt, begin.Next().Rune(), extra) {
		begin = begin.Next()
	}
	if !charclass.SkipWhile(&begin, end, charclass.IsEOL) {
		return Selection{}, false
	}
	last := begin
	charclass.SkipWhile(&last, end, charclass.IsHorizontalBlank)

	isWord := ctx.isWord(wt)
	if isWord(last.Rune()) {
		charclass.SkipWhile(&last, end, isWord)
	} else if charclass.IsPunctuation(last.Rune()) {
		charclass.SkipWhile(&last, end, charclass.IsPunctuation)
	}

	return fromRange(begin, last.Prev()), true
}

// SelectToPreviousWord is the reverse of SelectToNextWord.
func SelectToPreviousWord(ctx Context, sel Selection, wt WordType) (Selection, bool) {
	extra := ctx.Opts.ExtraWordChars
	buf := ctx.Buf
	begin := buf.IteratorAt(sel.Cursor)
	bufBegin := buf.Begin()
	if begin.Equal(bufBegin) {
		return Selection{}, false
	}
	if charclass.Categorize(wt, begin.Rune(), extra) != charclass.Categorize(wt, begin.Prev().Rune(), extra) {
		begin = begin.Prev()
	}
	charclass.SkipWhileReverse(&begin, bufBegin, charclass.IsEOL)
	last := begin

	isWord := ctx.isWord(wt)
	withEnd := charclass.SkipWhileReverse(&last, bufBegin, charclass.IsHorizontalBlank)
	if isWord(last.Rune()) {
		withEnd = charclass.SkipWhileReverse(&last, bufBegin, isWord)
	} else if charclass.IsPunctuation(last.Rune()) {
		withEnd = charclass.SkipWhileReverse(&last, bufBegin, charclass.IsPunctuation)
	}

	if withEnd {
		return fromRange(begin, last), true
	}
	return fromRange(begin, last.Next()), true
}

// SelectWord selects the whole word (or, with flags, one side of it)
// the cursor sits on. Fails if the cursor isn't on a word character.
func SelectWord(ctx Context, sel Selection, wt WordType, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	isWord := ctx.isWord(wt)

	first := buf.IteratorAt(sel.Cursor)
	if !isWord(first.Rune()) {
		return Selection{}, false
	}

	last := first
	if flags.Has(ToBegin) {
		charclass.SkipWhileReverse(&first, buf.Begin(), isWord)
		if !isWord(first.Rune()) {
			first = first.Next()
		}
	}
	if flags.Has(ToEnd) {
		charclass.SkipWhile(&last, buf.End(), isWord)
		if !flags.Has(Inner) {
			charclass.SkipWhile(&last, buf.End(), charclass.IsHorizontalBlank)
		}
		last = last.Prev()
	}
	if flags.Has(ToEnd) {
		return fromRange(first, last), true
	}
	return fromRange(last, first), true
}
