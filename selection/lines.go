package selection

import (
	"corvid/charclass"
	"corvid/textbuf"
)

// SelectLine expands sel to cover the whole line the cursor sits on,
// with its target column set to end-of-line.
func SelectLine(ctx Context, sel Selection) (Selection, bool) {
	buf := ctx.Buf
	first := buf.IteratorAt(sel.Cursor)
	if first.Rune() == '\n' && !first.Next().Equal(buf.End()) {
		first = first.Next()
	}
	for !first.Equal(buf.Begin()) && first.Prev().Rune() != '\n' {
		first = first.Prev()
	}
	last := first
	for !last.Next().Equal(buf.End()) && last.Rune() != '\n' {
		last = last.Next()
	}
	return fromRange(first, last).TargetEOL(), true
}

// SelectToLineEnd moves (onlyMove=true) or extends (onlyMove=false)
// the selection so its cursor lands on the last non-newline character
// of the cursor's current line.
func SelectToLineEnd(ctx Context, sel Selection, onlyMove bool) (Selection, bool) {
	buf := ctx.Buf
	begin := sel.Cursor
	line := buf.Line(begin.Line)
	lineStart := textbuf.Coord{Line: begin.Line, Column: 0}
	lastByte := textbuf.Coord{Line: begin.Line, Column: len(line) - 1}
	end := textbuf.PrevTo(buf.IteratorAt(lastByte), buf.IteratorAt(lineStart)).Coord()
	if end.Less(begin) {
		end = begin
	}
	anchor := begin
	if onlyMove {
		anchor = end
	}
	return NewRange(anchor, end).TargetEOL(), true
}

// SelectToLineBegin moves (onlyMove=true) or extends (onlyMove=false)
// the selection so its cursor lands on column 0 of the cursor's line.
func SelectToLineBegin(_ Context, sel Selection, onlyMove bool) (Selection, bool) {
	begin := sel.Cursor
	end := textbuf.Coord{Line: begin.Line, Column: 0}
	anchor := begin
	if onlyMove {
		anchor = end
	}
	return NewRange(anchor, end), true
}

// SelectToFirstNonBlank collapses the selection onto the first
// non-horizontal-blank character of the cursor's line, never crossing
// into the next line.
func SelectToFirstNonBlank(ctx Context, sel Selection) (Selection, bool) {
	buf := ctx.Buf
	it := buf.IteratorAtLine(sel.Cursor.Line)
	lineEnd := buf.IteratorAtLine(sel.Cursor.Line + 1)
	charclass.SkipWhile(&it, lineEnd, charclass.IsHorizontalBlank)
	return New(it.Coord()), true
}
