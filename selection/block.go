package selection

import "corvid/textbuf"

// SelectLines expands sel so its extremes land on column 0 and the
// last byte of their respective lines, keeping anchor/cursor identity
// (and hence direction), with the target column set to end-of-line.
func SelectLines(ctx Context, sel Selection) (Selection, bool) {
	buf := ctx.Buf
	anchor, cursor := sel.Anchor, sel.Cursor
	start, end := &anchor, &cursor
	if !anchor.LessEq(cursor) {
		start, end = &cursor, &anchor
	}
	start.Column = 0
	end.Column = len(buf.Line(end.Line)) - 1
	return NewRange(anchor, cursor).TargetEOL(), true
}

// TrimPartialLines shrinks sel so it only covers whole lines, dropping
// any partial line at either extreme. Fails if nothing whole remains.
func TrimPartialLines(ctx Context, sel Selection) (Selection, bool) {
	buf := ctx.Buf
	anchor, cursor := sel.Anchor, sel.Cursor
	start, end := &anchor, &cursor
	if !anchor.LessEq(cursor) {
		start, end = &cursor, &anchor
	}

	if start.Column != 0 {
		*start = textbuf.Coord{Line: start.Line + 1, Column: 0}
	}
	if end.Column != len(buf.Line(end.Line))-1 {
		if end.Line == 0 {
			return Selection{}, false
		}
		prevLine := end.Line - 1
		*end = textbuf.Coord{Line: prevLine, Column: len(buf.Line(prevLine)) - 1}
	}

	if !start.LessEq(*end) {
		return Selection{}, false
	}
	return NewRange(anchor, cursor).TargetEOL(), true
}

// SelectBuffer collapses list to a single selection spanning the whole
// buffer, cursor at the end.
func SelectBuffer(list List) List {
	buf := list.Buffer()
	sel := NewRange(textbuf.Coord{Line: 0, Column: 0}, buf.BackCoord()).TargetEOL()
	return NewList(buf, sel)
}
