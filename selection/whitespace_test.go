package selection

import "testing"

func TestSelectWhitespace(t *testing.T) {
	buf := newTestBuffer("foo   bar")
	ctx := NewContext(buf, Options{})

	got, ok := SelectWhitespace(ctx, New(coordAt(0, 4)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectWhitespace failed")
	}
	if want, text := "   ", selText(buf, got); text != want {
		t.Errorf("SelectWhitespace = %q, want %q", text, want)
	}
}

func TestSelectWhitespaceNotOnWhitespace(t *testing.T) {
	buf := newTestBuffer("foo bar")
	ctx := NewContext(buf, Options{})
	if _, ok := SelectWhitespace(ctx, New(coordAt(0, 0)), ToBegin|ToEnd); ok {
		t.Error("SelectWhitespace should fail when the cursor isn't on whitespace")
	}
}
