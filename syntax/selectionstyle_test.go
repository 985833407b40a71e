package syntax

import (
	"testing"

	"corvid/selection"
	"corvid/textbuf"
)

func TestSelectionSpansForLineWithinLine(t *testing.T) {
	buf := textbuf.New("hello world")
	list := selection.NewList(buf, selection.NewRange(
		textbuf.Coord{Line: 0, Column: 0}, textbuf.Coord{Line: 0, Column: 4}))

	spans := SelectionSpansForLine(list, 0, "hello world")
	if len(spans) != 1 {
		t.Fatalf("SelectionSpansForLine produced %d spans, want 1", len(spans))
	}
	if spans[0].Start != 0 || spans[0].End != 5 {
		t.Errorf("span = %+v, want Start=0 End=5", spans[0])
	}
	if spans[0].Color != SelectionReverseVideo {
		t.Errorf("span.Color = %q, want %q", spans[0].Color, SelectionReverseVideo)
	}
}

func TestSelectionSpansForLineOutsideLine(t *testing.T) {
	buf := textbuf.New("one\ntwo\nthree")
	list := selection.NewList(buf, selection.NewRange(
		textbuf.Coord{Line: 0, Column: 0}, textbuf.Coord{Line: 0, Column: 1}))

	spans := SelectionSpansForLine(list, 2, "three")
	if len(spans) != 0 {
		t.Errorf("SelectionSpansForLine on an untouched line produced %d spans, want 0", len(spans))
	}
}

func TestSelectionSpansForLineMultiLine(t *testing.T) {
	buf := textbuf.New("one\ntwo\nthree")
	list := selection.NewList(buf, selection.NewRange(
		textbuf.Coord{Line: 0, Column: 1}, textbuf.Coord{Line: 2, Column: 2}))

	if spans := SelectionSpansForLine(list, 0, "one"); len(spans) != 1 || spans[0].Start != 1 || spans[0].End != 3 {
		t.Errorf("line 0 spans = %+v, want single span [1,3)", spans)
	}
	if spans := SelectionSpansForLine(list, 1, "two"); len(spans) != 1 || spans[0].Start != 0 || spans[0].End != 3 {
		t.Errorf("line 1 spans = %+v, want single span [0,3) (whole line spanned)", spans)
	}
	if spans := SelectionSpansForLine(list, 2, "three"); len(spans) != 1 || spans[0].Start != 0 || spans[0].End != 3 {
		t.Errorf("line 2 spans = %+v, want single span [0,3)", spans)
	}
}

func TestComposedLineSpansPutsSelectionFirst(t *testing.T) {
	buf := textbuf.New("hello")
	list := selection.NewList(buf, selection.NewRange(
		textbuf.Coord{Line: 0, Column: 0}, textbuf.Coord{Line: 0, Column: 1}))

	h := New("") // no lexer, GetLineColors returns nil
	spans := ComposedLineSpans(h, list, 0, "hello")
	if len(spans) != 1 {
		t.Fatalf("ComposedLineSpans produced %d spans, want 1 (selection only, no lexer)", len(spans))
	}
	if spans[0].Color != SelectionReverseVideo {
		t.Errorf("ComposedLineSpans[0].Color = %q, want selection color", spans[0].Color)
	}
}

func TestByteColToRuneColMultiByte(t *testing.T) {
	// "café" — the byte offset right after 'é' (byte 5, since 'é' is
	// 2 bytes) must map to rune column 4, not byte column 5.
	if got := byteColToRuneCol("café world", 5); got != 4 {
		t.Errorf("byteColToRuneCol = %d, want 4", got)
	}
}
