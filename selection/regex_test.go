package selection

import "testing"

func TestCompileMarkCount(t *testing.T) {
	re, err := Compile("(a)(b)")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got := re.MarkCount(); got != 2 {
		t.Errorf("MarkCount = %d, want 2", got)
	}
	if got := re.String(); got != "(a)(b)" {
		t.Errorf("String = %q, want %q", got, "(a)(b)")
	}
}

func TestFindNextMatchForwardAndWrap(t *testing.T) {
	buf := newTestBuffer("abc abc")
	ctx := NewContext(buf, Options{})
	re, err := Compile("abc")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	sel := New(coordAt(0, 0))
	got, wrapped, err := FindNextMatch(ctx, sel, re, Forward)
	if err != nil {
		t.Fatalf("FindNextMatch failed: %v", err)
	}
	if wrapped {
		t.Error("first forward search should not wrap")
	}
	if want, text := "abc", selText(buf, got); text != want {
		t.Errorf("FindNextMatch = %q, want %q", text, want)
	}
	if got.Cursor != coordAt(0, 6) {
		t.Errorf("FindNextMatch cursor = %+v, want col 6", got.Cursor)
	}

	got, wrapped, err = FindNextMatch(ctx, got, re, Forward)
	if err != nil {
		t.Fatalf("FindNextMatch failed: %v", err)
	}
	if !wrapped {
		t.Error("second forward search should wrap back to the start")
	}
	if want, text := "abc", selText(buf, got); text != want {
		t.Errorf("FindNextMatch (wrapped) = %q, want %q", text, want)
	}
	if got.Cursor != coordAt(0, 2) {
		t.Errorf("FindNextMatch (wrapped) cursor = %+v, want col 2", got.Cursor)
	}
}

func TestFindNextMatchCrossLineWrap(t *testing.T) {
	buf := newTestBuffer("abc\nabc")
	ctx := NewContext(buf, Options{})
	re, err := Compile("abc")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	sel := New(coordAt(0, 0))
	got, wrapped, err := FindNextMatch(ctx, sel, re, Forward)
	if err != nil {
		t.Fatalf("FindNextMatch failed: %v", err)
	}
	if wrapped {
		t.Error("first forward search should not wrap")
	}
	if want, text := "abc", selText(buf, got); text != want {
		t.Errorf("FindNextMatch = %q, want %q", text, want)
	}
	if got.Cursor.Line != 1 {
		t.Errorf("FindNextMatch cursor = %+v, want line 1 (second line)", got.Cursor)
	}

	got, wrapped, err = FindNextMatch(ctx, got, re, Forward)
	if err != nil {
		t.Fatalf("FindNextMatch failed: %v", err)
	}
	if !wrapped {
		t.Error("second forward search should wrap back to line 0")
	}
	if want, text := "abc", selText(buf, got); text != want {
		t.Errorf("FindNextMatch (wrapped) = %q, want %q", text, want)
	}
	if got.Cursor.Line != 0 {
		t.Errorf("FindNextMatch (wrapped) cursor = %+v, want line 0", got.Cursor)
	}
}

func TestFindNextMatchNoMatches(t *testing.T) {
	buf := newTestBuffer("abc")
	ctx := NewContext(buf, Options{})
	re, err := Compile("xyz")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if _, _, err := FindNextMatch(ctx, New(coordAt(0, 0)), re, Forward); err == nil {
		t.Error("FindNextMatch should fail when the pattern never matches")
	}
}

func TestSelectAllMatches(t *testing.T) {
	buf := newTestBuffer("a,b,,c")
	re, err := Compile("[a-z]")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	list := NewList(buf, NewRange(coordAt(0, 0), coordAt(0, 5)))

	got, err := SelectAllMatches(list, re, 0)
	if err != nil {
		t.Fatalf("SelectAllMatches failed: %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("SelectAllMatches produced %d selections, want 3", got.Len())
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if text := selText(buf, got.Sels[i]); text != w {
			t.Errorf("SelectAllMatches[%d] = %q, want %q", i, text, w)
		}
	}
}

func TestSplitSelections(t *testing.T) {
	buf := newTestBuffer("a,b,c")
	re, err := Compile(",")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	list := NewList(buf, NewRange(coordAt(0, 0), coordAt(0, 4)))

	got, err := SplitSelections(list, re, 0)
	if err != nil {
		t.Fatalf("SplitSelections failed: %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("SplitSelections produced %d selections, want 3", got.Len())
	}
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if text := selText(buf, got.Sels[i]); text != w {
			t.Errorf("SplitSelections[%d] = %q, want %q", i, text, w)
		}
	}
}

func TestSplitSelectionsMatchAtBufferStart(t *testing.T) {
	// A delimiter sitting at the very first byte of the buffer has no
	// preceding piece to emit; splitting must not invent a phantom
	// empty selection there.
	buf := newTestBuffer(",abc")
	re, err := Compile(",")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	list := NewList(buf, NewRange(coordAt(0, 0), coordAt(0, 3)))

	got, err := SplitSelections(list, re, 0)
	if err != nil {
		t.Fatalf("SplitSelections failed: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("SplitSelections produced %d selections, want 1", got.Len())
	}
	if text := selText(buf, got.Sels[0]); text != "abc" {
		t.Errorf("SplitSelections[0] = %q, want %q (no phantom leading selection)", text, "abc")
	}
}

func TestSplitSelectionsEmptyGap(t *testing.T) {
	// Two adjacent delimiters leave nothing between them; since a
	// selection can never be truly empty, the gap surfaces as a
	// single-character selection sitting on the second delimiter.
	buf := newTestBuffer("a,b,,c")
	re, err := Compile(",")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	list := NewList(buf, NewRange(coordAt(0, 0), coordAt(0, 5)))

	got, err := SplitSelections(list, re, 0)
	if err != nil {
		t.Fatalf("SplitSelections failed: %v", err)
	}
	if got.Len() != 4 {
		t.Fatalf("SplitSelections produced %d selections, want 4", got.Len())
	}
	want := []string{"a", "b", ",", "c"}
	for i, w := range want {
		if text := selText(buf, got.Sels[i]); text != w {
			t.Errorf("SplitSelections[%d] = %q, want %q", i, text, w)
		}
	}
}
