package selection

import "testing"

func TestSelectToNextWord(t *testing.T) {
	buf := newTestBuffer("foo.bar  baz")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToNextWord(ctx, New(coordAt(0, 0)), Word)
	if !ok {
		t.Fatal("SelectToNextWord failed")
	}
	if want, text := "foo", selText(buf, got); text != want {
		t.Errorf("SelectToNextWord from col 0 = %q, want %q", text, want)
	}

	got, ok = SelectToNextWord(ctx, New(coordAt(0, 2)), Word)
	if !ok {
		t.Fatal("SelectToNextWord failed")
	}
	if want, text := ".", selText(buf, got); text != want {
		t.Errorf("SelectToNextWord from col 2 = %q, want %q", text, want)
	}
}

func TestSelectToNextWordEnd(t *testing.T) {
	buf := newTestBuffer("foo.bar  baz")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToNextWordEnd(ctx, New(coordAt(0, 0)), Word)
	if !ok {
		t.Fatal("SelectToNextWordEnd failed")
	}
	if want, text := "foo", selText(buf, got); text != want {
		t.Errorf("SelectToNextWordEnd from col 0 = %q, want %q", text, want)
	}
}

func TestSelectWord(t *testing.T) {
	buf := newTestBuffer("foo.bar  baz")
	ctx := NewContext(buf, Options{})

	got, ok := SelectWord(ctx, New(coordAt(0, 5)), Word, ToBegin|ToEnd|Inner)
	if !ok {
		t.Fatal("SelectWord failed")
	}
	if want, text := "bar", selText(buf, got); text != want {
		t.Errorf("SelectWord over 'bar' (inner) = %q, want %q", text, want)
	}

	got, ok = SelectWord(ctx, New(coordAt(0, 5)), Word, ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectWord failed")
	}
	if want, text := "bar  ", selText(buf, got); text != want {
		t.Errorf("SelectWord over 'bar' (outer) = %q, want %q", text, want)
	}

	if _, ok := SelectWord(ctx, New(coordAt(0, 3)), Word, ToBegin|ToEnd); ok {
		t.Error("SelectWord starting on '.' should fail under the Word regime")
	}
}

func TestSelectWordMultiByte(t *testing.T) {
	// "café rösti" — both accented letters are 2-byte UTF-8 codepoints;
	// SelectWord must land on rune boundaries, not byte offsets, when
	// walking across them.
	buf := newTestBuffer("café rösti")
	ctx := NewContext(buf, Options{})

	got, ok := SelectWord(ctx, New(coordAt(0, 0)), Word, ToBegin|ToEnd|Inner)
	if !ok {
		t.Fatal("SelectWord failed")
	}
	if want, text := "café", selText(buf, got); text != want {
		t.Errorf("SelectWord over 'café' = %q, want %q", text, want)
	}

	got, ok = SelectToNextWord(ctx, New(coordAt(0, 0)), Word)
	if !ok {
		t.Fatal("SelectToNextWord failed")
	}
	if want, text := "café ", selText(buf, got); text != want {
		t.Errorf("SelectToNextWord over 'café ' = %q, want %q", text, want)
	}
}

func TestSelectToPreviousWord(t *testing.T) {
	buf := newTestBuffer("foo.bar  baz")
	ctx := NewContext(buf, Options{})

	got, ok := SelectToPreviousWord(ctx, New(coordAt(0, 9)), Word)
	if !ok {
		t.Fatal("SelectToPreviousWord failed")
	}
	if want, text := "bar  ", selText(buf, got); text != want {
		t.Errorf("SelectToPreviousWord from col 9 = %q, want %q", text, want)
	}
}
