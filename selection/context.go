package selection

import "corvid/textbuf"

// Options is the "options collaborator" of spec.md §6: the per-context
// configuration selectors consult. It is passed explicitly rather than
// read from any global, per spec.md §9's design note.
type Options struct {
	// ExtraWordChars are additional codepoints counted as word
	// characters under the Word regime, beyond letters/digits/'_'.
	ExtraWordChars []rune
	// TabStop is the width a tab expands to for indent computations.
	// Must be positive; callers should default it to 8 if unset.
	TabStop int
}

// Context bundles the immutable state a selector needs: the buffer to
// traverse and the options that parameterize traversal. A Context
// borrows its buffer for the duration of a call and never retains it
// beyond return.
type Context struct {
	Buf  *textbuf.Buffer
	Opts Options
}

// NewContext builds a Context over buf with the given options,
// defaulting TabStop to 8 if it isn't positive.
func NewContext(buf *textbuf.Buffer, opts Options) Context {
	if opts.TabStop <= 0 {
		opts.TabStop = 8
	}
	return Context{Buf: buf, Opts: opts}
}

func (c Context) isWord(wt WordType) func(rune) bool {
	return func(r rune) bool { return isWordRune(wt, r, c.Opts.ExtraWordChars) }
}
