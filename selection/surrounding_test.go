package selection

import "testing"

func TestFindSurroundingInString(t *testing.T) {
	s := "[salut { toi[] }]"
	check := func(pos int, opening, closing string, flags ObjectFlags, level int, want string) {
		t.Helper()
		f, l, ok := findSurroundingInString(s, pos, opening, closing, flags, level)
		if !ok {
			t.Fatalf("findSurroundingInString(pos=%d, %q, %q) = not found, want %q", pos, opening, closing, want)
		}
		min, max := f, l
		if l < f {
			min, max = l, f
		}
		got := s[min : max+1]
		if got != want {
			t.Errorf("findSurroundingInString(pos=%d, %q, %q) = %q, want %q", pos, opening, closing, got, want)
		}
	}

	check(10, "{", "}", ToBegin|ToEnd, 0, "{ toi[] }")
	check(10, "[", "]", ToBegin|ToEnd|Inner, 0, "salut { toi[] }")
	check(0, "[", "]", ToBegin|ToEnd, 0, "[salut { toi[] }]")
	check(7, "{", "}", ToBegin|ToEnd, 0, "{ toi[] }")
	check(12, "[", "]", ToBegin|ToEnd|Inner, 0, "]")
	check(14, "[", "]", ToBegin|ToEnd, 0, "[salut { toi[] }]")
	check(1, "[", "]", ToBegin, 0, "[s")
}

func TestFindSurroundingInStringEmptyPair(t *testing.T) {
	s := "[]"
	f, l, ok := findSurroundingInString(s, 1, "[", "]", ToBegin|ToEnd, 0)
	if !ok {
		t.Fatal("findSurroundingInString([], pos=1) = not found, want [] ")
	}
	min, max := f, l
	if l < f {
		min, max = l, f
	}
	if got := s[min : max+1]; got != "[]" {
		t.Errorf("got %q, want %q", got, "[]")
	}
}

func TestFindSurroundingInStringNoMatch(t *testing.T) {
	s := "[*][] hehe"
	if _, _, ok := findSurroundingInString(s, 6, "[", "]", ToBegin, 0); ok {
		t.Error("findSurroundingInString should fail to find an enclosing '[' for position 6")
	}
}

func TestFindSurroundingInStringWordDelimiters(t *testing.T) {
	s := "begin tchou begin tchaa end end"
	f, l, ok := findSurroundingInString(s, 6, "begin", "end", ToBegin|ToEnd, 0)
	if !ok {
		t.Fatal("findSurroundingInString(\"begin\"/\"end\") = not found")
	}
	min, max := f, l
	if l < f {
		min, max = l, f
	}
	if got := s[min : max+1]; got != s {
		t.Errorf("got %q, want the whole string %q", got, s)
	}
}

func TestSelectSurrounding(t *testing.T) {
	buf := newTestBuffer("[salut { toi[] }]")
	ctx := NewContext(buf, Options{})

	sel := New(coordAt(0, 10))
	got, ok := SelectSurrounding(ctx, sel, "{", "}", 0, ToBegin|ToEnd)
	if !ok {
		t.Fatal("SelectSurrounding failed, want a match")
	}
	if want, gotText := "{ toi[] }", selText(buf, got); gotText != want {
		t.Errorf("SelectSurrounding = %q, want %q", gotText, want)
	}
}
