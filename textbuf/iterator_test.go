package textbuf

import "testing"

func TestIteratorNextCrossesLines(t *testing.T) {
	buf := New("ab\ncd")
	it := buf.IteratorAt(Coord{Line: 0, Column: 1}) // 'b'
	it = it.Next()                                  // '\n'
	if got, want := it.Coord(), (Coord{Line: 0, Column: 2}); got != want {
		t.Fatalf("Next() = %+v, want %+v", got, want)
	}
	it = it.Next() // wraps to line 1
	if got, want := it.Coord(), (Coord{Line: 1, Column: 0}); got != want {
		t.Fatalf("Next() across newline = %+v, want %+v", got, want)
	}
	if r := it.Rune(); r != 'c' {
		t.Errorf("Rune() after wrap = %q, want 'c'", r)
	}
}

func TestIteratorPrevCrossesLines(t *testing.T) {
	buf := New("ab\ncd")
	it := buf.IteratorAt(Coord{Line: 1, Column: 0}) // 'c'
	it = it.Prev()
	if got, want := it.Coord(), (Coord{Line: 0, Column: 2}); got != want {
		t.Fatalf("Prev() across newline = %+v, want %+v", got, want)
	}
	if r := it.Rune(); r != '\n' {
		t.Errorf("Rune() after Prev = %q, want '\\n'", r)
	}
}

func TestIteratorPrevAtBegin(t *testing.T) {
	buf := New("abc")
	it := buf.Begin()
	if got := it.Prev(); got.Coord() != (Coord{0, 0}) {
		t.Errorf("Prev() at Begin() should not move, got %+v", got.Coord())
	}
}

func TestIteratorNextAtEnd(t *testing.T) {
	buf := New("abc")
	it := buf.End()
	if got := it.Next(); !got.Equal(buf.End()) {
		t.Errorf("Next() at End() should not move, got %+v", got.Coord())
	}
	if r := it.Rune(); r != 0 {
		t.Errorf("Rune() at End() = %q, want 0", r)
	}
}

func TestIteratorMultiByteRune(t *testing.T) {
	// "a日b" — '日' is a 3-byte UTF-8 codepoint sitting between two
	// ASCII bytes; Next/Prev must step over it as one codepoint, not
	// one byte at a time.
	buf := New("a日b")
	it := buf.IteratorAt(Coord{Line: 0, Column: 0})
	if r := it.Rune(); r != 'a' {
		t.Fatalf("Rune() at col 0 = %q, want 'a'", r)
	}

	it = it.Next()
	if got, want := it.Coord(), (Coord{Line: 0, Column: 1}); got != want {
		t.Fatalf("Next() = %+v, want %+v", got, want)
	}
	if r := it.Rune(); r != '日' {
		t.Fatalf("Rune() at col 1 = %q, want '日'", r)
	}

	it = it.Next()
	if got, want := it.Coord(), (Coord{Line: 0, Column: 4}); got != want {
		t.Fatalf("Next() past multi-byte rune = %+v, want %+v (skip 3 bytes)", got, want)
	}
	if r := it.Rune(); r != 'b' {
		t.Fatalf("Rune() at col 4 = %q, want 'b'", r)
	}

	it = it.Prev()
	if got, want := it.Coord(), (Coord{Line: 0, Column: 1}); got != want {
		t.Fatalf("Prev() back over multi-byte rune = %+v, want %+v", got, want)
	}
	if r := it.Rune(); r != '日' {
		t.Fatalf("Rune() after Prev = %q, want '日'", r)
	}
}

func TestNextToAndPrevToSaturate(t *testing.T) {
	buf := New("abc")
	limit := buf.IteratorAt(Coord{Line: 0, Column: 2})
	it := buf.IteratorAt(Coord{Line: 0, Column: 2})

	it = NextTo(it, limit)
	if !it.Equal(limit) {
		t.Errorf("NextTo at limit should not move, got %+v", it.Coord())
	}

	begin := buf.Begin()
	it = buf.Begin()
	it = PrevTo(it, begin)
	if !it.Equal(begin) {
		t.Errorf("PrevTo at begin should not move, got %+v", it.Coord())
	}
}

func TestAdvance(t *testing.T) {
	buf := New("abcdef")
	it := buf.IteratorAt(Coord{Line: 0, Column: 0})
	it = it.Advance(3)
	if got, want := it.Coord(), (Coord{Line: 0, Column: 3}); got != want {
		t.Errorf("Advance(3) = %+v, want %+v", got, want)
	}
	it = it.Advance(-2)
	if got, want := it.Coord(), (Coord{Line: 0, Column: 1}); got != want {
		t.Errorf("Advance(-2) = %+v, want %+v", got, want)
	}
}
