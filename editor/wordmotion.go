package editor

import (
	"corvid/selection"
	"corvid/textbuf"
)

// snapshotTextbuf builds a textbuf.Buffer view of buf's current text.
// The gap buffer and textbuf.Buffer are different representations
// (byte-offset-addressed vs. line-addressed), so word motions that
// want the selection engine's traversal logic pay for a full text
// copy per call. Fine for interactive use; not for hot loops.
func snapshotTextbuf(buf *Buffer) *textbuf.Buffer {
	return textbuf.New(buf.String())
}

func byteOffsetToCoord(buf *Buffer, pos int) textbuf.Coord {
	line, col := buf.PositionToLineCol(pos)
	return textbuf.Coord{Line: line, Column: col}
}

func coordToByteOffset(buf *Buffer, c textbuf.Coord) int {
	return buf.LineColToPosition(c.Line, c.Column)
}

// MoveWordLeft moves the cursor to the start of the previous word,
// delegating the traversal to the selection engine's word regime
// instead of duplicating the class-change scan here.
func (c *Cursor) MoveWordLeft() bool {
	if c.pos == 0 {
		return false
	}
	tb := snapshotTextbuf(c.buf)
	ctx := selection.NewContext(tb, c.opts)
	sel, ok := selection.SelectToPreviousWord(ctx, selection.New(byteOffsetToCoord(c.buf, c.pos)), selection.Word)
	if !ok {
		return false
	}
	c.pos = coordToByteOffset(c.buf, sel.Cursor)
	c.buf.MoveCursor(c.pos)
	return true
}

// MoveWordRight moves the cursor to the start of the next word.
func (c *Cursor) MoveWordRight() bool {
	if c.pos >= c.buf.Length() {
		return false
	}
	tb := snapshotTextbuf(c.buf)
	ctx := selection.NewContext(tb, c.opts)
	sel, ok := selection.SelectToNextWord(ctx, selection.New(byteOffsetToCoord(c.buf, c.pos)), selection.Word)
	if !ok {
		return false
	}
	next := tb.IteratorAt(sel.Cursor).Next()
	c.pos = coordToByteOffset(c.buf, next.Coord())
	c.buf.MoveCursor(c.pos)
	return true
}
