package editor

import (
	"corvid/selection"
	"corvid/textbuf"
)

// Selection represents a text selection in the buffer.
// The selection spans from Anchor to Cursor, where Anchor is where the selection
// started and Cursor is the current position (and can be before or after Anchor).
type Selection struct {
	Active bool // Whether there is an active selection
	Anchor int  // Byte offset where selection started
	Cursor int  // Byte offset where selection ends (current cursor position)

	opts selection.Options // parameterizes SelectWord's engine calls
}

// NewSelection creates a new inactive selection. opts parameterizes the
// word/whitespace traversal SelectWord delegates to the selection engine.
func NewSelection(opts selection.Options) *Selection {
	return &Selection{
		Active: false,
		Anchor: 0,
		Cursor: 0,
		opts:   opts,
	}
}

// SetSelectionOptions updates the options SelectWord delegates to the
// selection engine with, e.g. after a config reload.
func (s *Selection) SetSelectionOptions(opts selection.Options) {
	s.opts = opts
}

// Start begins a new selection at the given position.
func (s *Selection) Start(pos int) {
	s.Active = true
	s.Anchor = pos
	s.Cursor = pos
}

// Update updates the cursor end of the selection.
func (s *Selection) Update(pos int) {
	if s.Active {
		s.Cursor = pos
	}
}

// Clear clears the selection.
func (s *Selection) Clear() {
	s.Active = false
	s.Anchor = 0
	s.Cursor = 0
}

// StartPos returns the start position (lower of Anchor and Cursor).
func (s *Selection) StartPos() int {
	if s.Anchor < s.Cursor {
		return s.Anchor
	}
	return s.Cursor
}

// EndPos returns the end position (higher of Anchor and Cursor).
func (s *Selection) EndPos() int {
	if s.Anchor > s.Cursor {
		return s.Anchor
	}
	return s.Cursor
}

// Length returns the length of the selection in bytes.
func (s *Selection) Length() int {
	if !s.Active {
		return 0
	}
	return s.EndPos() - s.StartPos()
}

// Contains returns true if the given position is within the selection.
func (s *Selection) Contains(pos int) bool {
	if !s.Active {
		return false
	}
	return pos >= s.StartPos() && pos < s.EndPos()
}

// IsEmpty returns true if the selection is empty or inactive.
func (s *Selection) IsEmpty() bool {
	return !s.Active || s.Anchor == s.Cursor
}

// GetText returns the selected text from the given buffer.
func (s *Selection) GetText(buf *Buffer) string {
	if !s.Active || s.IsEmpty() {
		return ""
	}
	return buf.Substring(s.StartPos(), s.EndPos())
}

// SelectAll selects all text in the buffer.
func (s *Selection) SelectAll(buf *Buffer) {
	s.Active = true
	s.Anchor = 0
	s.Cursor = buf.Length()
}

// SelectWord selects the word, whitespace run, or punctuation run at
// the given position in the buffer, delegating the class-aware
// traversal to the selection engine.
func (s *Selection) SelectWord(buf *Buffer, pos int) {
	if buf.Length() == 0 {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= buf.Length() {
		pos = buf.Length() - 1
	}

	tb := snapshotTextbuf(buf)
	ctx := selection.NewContext(tb, s.opts)
	at := byteOffsetToCoord(buf, pos)

	if r, _ := buf.RuneAt(pos); isWordChar(r) {
		sel, ok := selection.SelectWord(ctx, selection.New(at), selection.Word, selection.ToBegin|selection.ToEnd|selection.Inner)
		if ok {
			s.setFromCoords(buf, tb, sel)
			return
		}
	}
	if sel, ok := selection.SelectWhitespace(ctx, selection.New(at), selection.ToBegin|selection.ToEnd|selection.Inner); ok {
		s.setFromCoords(buf, tb, sel)
		return
	}
	sel, ok := selection.SelectWord(ctx, selection.New(at), selection.WORD, selection.ToBegin|selection.ToEnd|selection.Inner)
	if ok {
		s.setFromCoords(buf, tb, sel)
	}
}

// setFromCoords sets the selection's byte-offset endpoints from a
// selection.Selection covering [min, max] inclusive.
func (s *Selection) setFromCoords(buf *Buffer, tb *textbuf.Buffer, sel selection.Selection) {
	s.Active = true
	s.Anchor = coordToByteOffset(buf, sel.Min())
	end := tb.IteratorAt(sel.Max()).Next()
	s.Cursor = coordToByteOffset(buf, end.Coord())
}

// SelectLine selects the entire line at the given position in the buffer.
func (s *Selection) SelectLine(buf *Buffer, pos int) {
	line, _ := buf.PositionToLineCol(pos)
	start := buf.LineStartOffset(line)
	end := buf.LineEndOffset(line)

	// Include the newline if there is one
	if end < buf.Length() {
		r, size := buf.RuneAt(end)
		if r == '\n' {
			end += size
		}
	}

	s.Active = true
	s.Anchor = start
	s.Cursor = end
}

// Normalize returns the selection with start <= end.
func (s *Selection) Normalize() (start, end int) {
	start, end = s.StartPos(), s.EndPos()
	return
}
