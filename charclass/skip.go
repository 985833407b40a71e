package charclass

import "corvid/textbuf"

// SkipWhile advances *it while pred holds and it hasn't reached end.
// It reports whether the buffer still has more to offer afterward:
// false means the skip ran all the way to end without pred ever
// turning false (e.g. the buffer ends in a run of blank lines), which
// callers use to detect "nothing left to select".
func SkipWhile(it *textbuf.Iterator, end textbuf.Iterator, pred func(rune) bool) bool {
	for !it.Equal(end) && pred(it.Rune()) {
		*it = it.Next()
	}
	return !it.Equal(end)
}

// SkipWhileReverse retreats *it while pred holds, stopping when it
// reaches begin (begin itself is never dereferenced by the loop guard,
// unlike SkipWhile's end). Because of that asymmetry the boundary case
// needs an explicit check: it reports true only when the retreat ran
// all the way to begin AND pred still holds there, meaning the run
// never terminated on its own and swallowed the whole span down to
// begin. Callers use this to tell "reached a real stopping point" from
// "ran off the start of the buffer".
func SkipWhileReverse(it *textbuf.Iterator, begin textbuf.Iterator, pred func(rune) bool) bool {
	for !it.Equal(begin) && pred(it.Rune()) {
		*it = it.Prev()
	}
	return it.Equal(begin) && pred(it.Rune())
}
