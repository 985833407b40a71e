package selection

var matchingPairs = []rune{'(', ')', '{', '}', '[', ']', '<', '>'}

// SelectMatching scans forward from the cursor within its current line
// for one of the bracket characters, then jumps to its balanced
// counterpart, tracking nesting depth across the buffer. Fails if no
// bracket is found on the line, or if the buffer ends before the
// match balances.
func SelectMatching(ctx Context, sel Selection) (Selection, bool) {
	buf := ctx.Buf
	it := buf.IteratorAt(sel.Cursor)

	matchIdx := -1
	for it.Rune() != '\n' {
		for i, m := range matchingPairs {
			if m == it.Rune() {
				matchIdx = i
				break
			}
		}
		if matchIdx >= 0 {
			break
		}
		it = it.Next()
	}
	if matchIdx < 0 {
		return Selection{}, false
	}

	begin := it
	if matchIdx%2 == 0 {
		level := 0
		opening, closing := matchingPairs[matchIdx], matchingPairs[matchIdx+1]
		for !it.Equal(buf.End()) {
			switch it.Rune() {
			case opening:
				level++
			case closing:
				level--
				if level == 0 {
					return fromRange(begin, it), true
				}
			}
			it = it.Next()
		}
	} else {
		level := 0
		opening, closing := matchingPairs[matchIdx-1], matchingPairs[matchIdx]
		for {
			switch it.Rune() {
			case closing:
				level++
			case opening:
				level--
				if level == 0 {
					return fromRange(begin, it), true
				}
			}
			if it.Equal(buf.Begin()) {
				break
			}
			it = it.Prev()
		}
	}
	return Selection{}, false
}
