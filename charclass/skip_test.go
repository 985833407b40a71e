package charclass

import (
	"testing"

	"corvid/textbuf"
)

func TestSkipWhile(t *testing.T) {
	buf := textbuf.New("abc   def")
	it := buf.IteratorAt(textbuf.Coord{Line: 0, Column: 3})

	hasMore := SkipWhile(&it, buf.End(), func(r rune) bool { return r == ' ' })
	if !hasMore {
		t.Error("SkipWhile should report more content after the run of spaces")
	}
	if it.Coord() != (textbuf.Coord{Line: 0, Column: 6}) {
		t.Errorf("SkipWhile stopped at %+v, want col 6", it.Coord())
	}
}

func TestSkipWhileRunsToEnd(t *testing.T) {
	buf := textbuf.New("   ")
	it := buf.IteratorAt(textbuf.Coord{Line: 0, Column: 0})

	hasMore := SkipWhile(&it, buf.End(), IsBlank)
	if hasMore {
		t.Error("SkipWhile should report no more content when the run reaches end")
	}
	if !it.Equal(buf.End()) {
		t.Errorf("SkipWhile should land on end, got %+v", it.Coord())
	}
}

func TestSkipWhileReverse(t *testing.T) {
	buf := textbuf.New("abc   def")
	it := buf.IteratorAt(textbuf.Coord{Line: 0, Column: 5})

	ranOff := SkipWhileReverse(&it, buf.Begin(), func(r rune) bool { return r == ' ' })
	if ranOff {
		t.Error("SkipWhileReverse should not report running off the start")
	}
	if it.Coord() != (textbuf.Coord{Line: 0, Column: 2}) {
		t.Errorf("SkipWhileReverse stopped at %+v, want col 2", it.Coord())
	}
}

func TestSkipWhileReverseRunsToBegin(t *testing.T) {
	buf := textbuf.New("   abc")
	it := buf.IteratorAt(textbuf.Coord{Line: 0, Column: 2})

	ranOff := SkipWhileReverse(&it, buf.Begin(), func(r rune) bool { return r == ' ' })
	if !ranOff {
		t.Error("SkipWhileReverse should report running off the start when the run reaches begin")
	}
	if !it.Equal(buf.Begin()) {
		t.Errorf("SkipWhileReverse should land on begin, got %+v", it.Coord())
	}
}
