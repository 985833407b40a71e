package selection

import "testing"

func TestSelectLine(t *testing.T) {
	buf := newTestBuffer("first\nsecond\nthird")
	ctx := NewContext(buf, Options{})

	got, ok := SelectLine(ctx, New(coordAt(1, 2)))
	if !ok {
		t.Fatal("SelectLine failed")
	}
	if want, text := "second\n", selText(buf, got); text != want {
		t.Errorf("SelectLine = %q, want %q", text, want)
	}
	if got.TargetColumn != EOLTarget {
		t.Errorf("SelectLine target column = %d, want EOLTarget", got.TargetColumn)
	}
}

func TestSelectToLineEnd(t *testing.T) {
	buf := newTestBuffer("hello\nworld")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToLineEnd(ctx, New(coordAt(0, 1)), false)
	if !ok {
		t.Fatal("SelectToLineEnd failed")
	}
	if want, text := "ello", selText(buf, got); text != want {
		t.Errorf("SelectToLineEnd = %q, want %q", text, want)
	}
}

func TestSelectToLineBegin(t *testing.T) {
	buf := newTestBuffer("hello\nworld")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToLineBegin(ctx, New(coordAt(0, 3)), true)
	if !ok {
		t.Fatal("SelectToLineBegin failed")
	}
	if got.Cursor != coordAt(0, 0) {
		t.Errorf("SelectToLineBegin cursor = %+v, want col 0", got.Cursor)
	}
}

func TestSelectToFirstNonBlank(t *testing.T) {
	buf := newTestBuffer("   indented")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToFirstNonBlank(ctx, New(coordAt(0, 0)))
	if !ok {
		t.Fatal("SelectToFirstNonBlank failed")
	}
	if want := coordAt(0, 3); got.Cursor != want {
		t.Errorf("SelectToFirstNonBlank cursor = %+v, want %+v", got.Cursor, want)
	}
}
