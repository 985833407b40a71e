package charclass

import "testing"

func TestIsEOLAndBlank(t *testing.T) {
	if !IsEOL('\n') {
		t.Error("IsEOL('\\n') should be true")
	}
	if IsEOL('a') {
		t.Error("IsEOL('a') should be false")
	}
	if !IsHorizontalBlank(' ') || !IsHorizontalBlank('\t') {
		t.Error("IsHorizontalBlank should accept space and tab")
	}
	if IsHorizontalBlank('\n') {
		t.Error("IsHorizontalBlank should not accept newline")
	}
	if !IsBlank('\n') || !IsBlank(' ') {
		t.Error("IsBlank should accept newline and space")
	}
}

func TestIsWordWordRegime(t *testing.T) {
	cases := []struct {
		c     rune
		extra []rune
		want  bool
	}{
		{'a', nil, true},
		{'_', nil, true},
		{'9', nil, true},
		{'.', nil, false},
		{' ', nil, false},
		{'$', []rune("$_"), true},
		{'$', nil, false},
	}
	for _, c := range cases {
		if got := IsWord(Word, c.c, c.extra); got != c.want {
			t.Errorf("IsWord(Word, %q, %v) = %v, want %v", c.c, c.extra, got, c.want)
		}
	}
}

func TestIsWordWORDRegime(t *testing.T) {
	if !IsWord(WORD, '.', nil) {
		t.Error("under WORD, punctuation counts as word")
	}
	if IsWord(WORD, ' ', nil) {
		t.Error("under WORD, whitespace is never word")
	}
}

func TestIsWordUnicodeLetter(t *testing.T) {
	// 'é' and '日' are letters outside ASCII; the Word regime relies on
	// unicode.IsLetter, not a byte-range check, to classify them.
	if !IsWord(Word, 'é', nil) {
		t.Error("IsWord(Word, 'é') should be true (unicode letter)")
	}
	if !IsWord(Word, '日', nil) {
		t.Error("IsWord(Word, '日') should be true (unicode letter)")
	}
	if IsWord(Word, '。', nil) {
		t.Error("IsWord(Word, '。') should be false (unicode punctuation)")
	}
}

func TestIsPunctuation(t *testing.T) {
	if !IsPunctuation('.') {
		t.Error("IsPunctuation('.') should be true")
	}
	if IsPunctuation('a') {
		t.Error("IsPunctuation('a') should be false")
	}
	if IsPunctuation(' ') {
		t.Error("IsPunctuation(' ') should be false")
	}
	if !IsPunctuation('£') {
		t.Error("IsPunctuation('£') (unicode symbol) should be true")
	}
}

func TestCategorize(t *testing.T) {
	if got := Categorize(Word, 'a', nil); got != ClassWord {
		t.Errorf("Categorize(Word, 'a') = %v, want ClassWord", got)
	}
	if got := Categorize(Word, '.', nil); got != ClassPunctuation {
		t.Errorf("Categorize(Word, '.') = %v, want ClassPunctuation", got)
	}
	if got := Categorize(Word, ' ', nil); got != ClassWhitespace {
		t.Errorf("Categorize(Word, ' ') = %v, want ClassWhitespace", got)
	}
	if got := Categorize(WORD, '.', nil); got != ClassWord {
		t.Errorf("Categorize(WORD, '.') = %v, want ClassWord (WORD conflates word/punctuation)", got)
	}
}
