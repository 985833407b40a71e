package selection

import "testing"

func TestSelectParagraph(t *testing.T) {
	buf := newTestBuffer("para one\npara one line2\n\npara two\n")
	ctx := NewContext(buf, Options{})

	got, ok := SelectParagraph(ctx, New(coordAt(0, 2)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectParagraph failed")
	}
	want := "para one\npara one line2\n\n"
	if text := selText(buf, got); text != want {
		t.Errorf("SelectParagraph = %q, want %q", text, want)
	}
}

func TestSelectParagraphInner(t *testing.T) {
	buf := newTestBuffer("one\n\n\ntwo\n")
	ctx := NewContext(buf, Options{})

	got, ok := SelectParagraph(ctx, New(coordAt(0, 0)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectParagraph failed")
	}
	if want, text := "one\n\n\n", selText(buf, got); text != want {
		t.Errorf("SelectParagraph (non-inner) = %q, want %q", text, want)
	}

	got, ok = SelectParagraph(ctx, New(coordAt(0, 0)), ToBegin|ToEnd|Inner)
	if !ok {
		t.Fatal("SelectParagraph (inner) failed")
	}
	if want, text := "one\n", selText(buf, got); text != want {
		t.Errorf("SelectParagraph (inner) = %q, want %q", text, want)
	}
}
