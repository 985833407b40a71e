package selection

import "testing"

func TestSelectNumber(t *testing.T) {
	buf := newTestBuffer("abc -12.5 def")
	ctx := NewContext(buf, Options{})

	got, ok := SelectNumber(ctx, New(coordAt(0, 6)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectNumber failed")
	}
	if want, text := "-12.5", selText(buf, got); text != want {
		t.Errorf("SelectNumber (outer) = %q, want %q", text, want)
	}

	got, ok = SelectNumber(ctx, New(coordAt(0, 6)), ToBegin|ToEnd|Inner)
	if !ok {
		t.Fatal("SelectNumber failed")
	}
	if want, text := "-12", selText(buf, got); text != want {
		t.Errorf("SelectNumber (inner) = %q, want %q", text, want)
	}
}

func TestSelectNumberNotOnNumber(t *testing.T) {
	buf := newTestBuffer("abc def")
	ctx := NewContext(buf, Options{})
	if _, ok := SelectNumber(ctx, New(coordAt(0, 0)), ToBegin|ToEnd); ok {
		t.Error("SelectNumber should fail when the cursor isn't on a digit or '-'")
	}
}
