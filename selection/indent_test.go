package selection

import "testing"

func TestSelectIndent(t *testing.T) {
	buf := newTestBuffer("no indent\n\tindented one\n\tindented two\nno indent again\n")
	ctx := NewContext(buf, Options{TabStop: 8})

	got, ok := SelectIndent(ctx, New(coordAt(1, 2)), ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectIndent failed")
	}
	want := "\tindented one\n\tindented two\n"
	if text := selText(buf, got); text != want {
		t.Errorf("SelectIndent = %q, want %q", text, want)
	}
}
