package selection

import "testing"

func TestSelectSentence(t *testing.T) {
	buf := newTestBuffer("Hello world. Foo bar.")
	ctx := NewContext(buf, Options{})

	got, ok := SelectSentence(ctx, New(coordAt(0, 2)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectSentence failed")
	}
	if want, text := "Hello world. ", selText(buf, got); text != want {
		t.Errorf("SelectSentence (outer) = %q, want %q", text, want)
	}

	got, ok = SelectSentence(ctx, New(coordAt(0, 2)), ToBegin|ToEnd|Inner)
	if !ok {
		t.Fatal("SelectSentence failed")
	}
	if want, text := "Hello world.", selText(buf, got); text != want {
		t.Errorf("SelectSentence (inner) = %q, want %q", text, want)
	}
}
