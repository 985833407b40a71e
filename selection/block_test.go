package selection

import "testing"

func TestSelectLines(t *testing.T) {
	buf := newTestBuffer("first\nsecond\nthird")
	ctx := NewContext(buf, Options{})

	sel := NewRange(coordAt(0, 2), coordAt(1, 3))
	got, ok := SelectLines(ctx, sel)
	if !ok {
		t.Fatal("SelectLines failed")
	}
	if want, text := "first\nsecond\n", selText(buf, got); text != want {
		t.Errorf("SelectLines = %q, want %q", text, want)
	}
	if got.TargetColumn != EOLTarget {
		t.Errorf("SelectLines target column = %d, want EOLTarget", got.TargetColumn)
	}
}

func TestTrimPartialLines(t *testing.T) {
	buf := newTestBuffer("first\nsecond\nthird")
	ctx := NewContext(buf, Options{})

	sel := NewRange(coordAt(0, 3), coordAt(2, 2))
	got, ok := TrimPartialLines(ctx, sel)
	if !ok {
		t.Fatal("TrimPartialLines failed")
	}
	if want, text := "second\n", selText(buf, got); text != want {
		t.Errorf("TrimPartialLines = %q, want %q", text, want)
	}
}

func TestTrimPartialLinesNothingWhole(t *testing.T) {
	buf := newTestBuffer("first\nsecond\nthird")
	ctx := NewContext(buf, Options{})

	sel := NewRange(coordAt(0, 2), coordAt(0, 4))
	if _, ok := TrimPartialLines(ctx, sel); ok {
		t.Error("TrimPartialLines should fail when no whole line is covered")
	}
}

func TestSelectBuffer(t *testing.T) {
	buf := newTestBuffer("first\nsecond\nthird")
	list := NewList(buf, New(coordAt(1, 0)))

	got := SelectBuffer(list)
	if got.Len() != 1 {
		t.Fatalf("SelectBuffer produced %d selections, want 1", got.Len())
	}
	want := "first\nsecond\nthird\n"
	if text := selText(buf, got.MainSelection()); text != want {
		t.Errorf("SelectBuffer = %q, want %q", text, want)
	}
}
