package selection

import "testing"

func TestSelectTo(t *testing.T) {
	buf := newTestBuffer("a,b,c,d")
	ctx := NewContext(buf, Options{})

	got, ok := SelectTo(ctx, New(coordAt(0, 0)), ',', 2, true)
	if !ok {
		t.Fatal("SelectTo failed")
	}
	if want, text := "a,b,", selText(buf, got); text != want {
		t.Errorf("SelectTo(',', count=2, inclusive) = %q, want %q", text, want)
	}

	got, ok = SelectTo(ctx, New(coordAt(0, 0)), ',', 1, false)
	if !ok {
		t.Fatal("SelectTo failed")
	}
	if want, text := "a", selText(buf, got); text != want {
		t.Errorf("SelectTo(',', count=1, exclusive) = %q, want %q", text, want)
	}
}

func TestSelectToNotFound(t *testing.T) {
	buf := newTestBuffer("abc")
	ctx := NewContext(buf, Options{})
	if _, ok := SelectTo(ctx, New(coordAt(0, 0)), 'z', 1, true); ok {
		t.Error("SelectTo should fail when the target character never occurs")
	}
}

func TestSelectToReverse(t *testing.T) {
	buf := newTestBuffer("a,b,c,d")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToReverse(ctx, New(coordAt(0, 6)), ',', 1, true)
	if !ok {
		t.Fatal("SelectToReverse failed")
	}
	if want, text := ",d", selText(buf, got); text != want {
		t.Errorf("SelectToReverse(',', count=1, inclusive) = %q, want %q", text, want)
	}
}
