package selection

import "testing"

func TestSelectMatching(t *testing.T) {
	buf := newTestBuffer("f(a, g(b), c)")
	ctx := NewContext(buf, Options{})

	got, ok := SelectMatching(ctx, New(coordAt(0, 1)))
	if !ok {
		t.Fatal("SelectMatching failed")
	}
	if want, text := "(a, g(b), c)", selText(buf, got); text != want {
		t.Errorf("SelectMatching from '(' = %q, want %q", text, want)
	}

	got, ok = SelectMatching(ctx, New(coordAt(0, 12)))
	if !ok {
		t.Fatal("SelectMatching failed")
	}
	if want, text := "(a, g(b), c)", selText(buf, got); text != want {
		t.Errorf("SelectMatching from ')' = %q, want %q", text, want)
	}
}

func TestSelectMatchingNoBracket(t *testing.T) {
	buf := newTestBuffer("no brackets here")
	ctx := NewContext(buf, Options{})
	if _, ok := SelectMatching(ctx, New(coordAt(0, 0))); ok {
		t.Error("SelectMatching should fail when the line has no brackets")
	}
}
