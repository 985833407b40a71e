package selection

import "corvid/charclass"

type argClass int

const (
	argNone argClass = iota
	argOpening
	argClosing
	argDelimiter
)

func classifyArg(r rune) argClass {
	switch r {
	case '(', '[', '{':
		return argOpening
	case ')', ']', '}':
		return argClosing
	case ',', ';':
		return argDelimiter
	default:
		return argNone
	}
}

// SelectArgument selects the comma/semicolon-delimited argument the
// cursor sits in, tracking bracket nesting via level. Starting on a
// closing delimiter is intentionally left as a no-op (matches the
// original's commented-out Closing case): the scan always starts from
// pos itself in that case, rather than stepping outward first.
func SelectArgument(ctx Context, sel Selection, level int, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	pos := buf.IteratorAt(sel.Cursor)

	switch classifyArg(pos.Rune()) {
	case argOpening, argDelimiter:
		if !pos.Equal(buf.Begin()) {
			pos = pos.Prev()
		}
	}

	firstArg := false
	begin := pos
	lev := level
beginScan:
	for !begin.Equal(buf.Begin()) {
		c := classifyArg(begin.Rune())
		switch {
		case c == argClosing:
			lev++
		case c == argOpening:
			cur := lev
			lev--
			if cur == 0 {
				firstArg = true
				begin = begin.Next()
				break beginScan
			}
		case c == argDelimiter && lev == 0:
			begin = begin.Next()
			break beginScan
		}
		begin = begin.Prev()
	}

	lastArg := false
	end := pos
	lev = level
endScan:
	for !end.Equal(buf.End()) {
		c := classifyArg(end.Rune())
		switch {
		case c == argOpening:
			lev++
		case !end.Equal(pos) && c == argClosing:
			cur := lev
			lev--
			if cur == 0 {
				lastArg = true
				end = end.Prev()
				break endScan
			}
		case c == argDelimiter && lev == 0:
			if firstArg && !flags.Has(Inner) {
				for {
					next := end.Next()
					if next.Equal(buf.End()) || !charclass.IsBlank(next.Rune()) {
						break
					}
					end = next
				}
			}
			break endScan
		}
		end = end.Next()
	}

	if flags.Has(Inner) {
		if !lastArg {
			end = end.Prev()
		}
		charclass.SkipWhile(&begin, end, charclass.IsBlank)
		charclass.SkipWhileReverse(&end, begin, charclass.IsBlank)
	} else if !firstArg && lastArg {
		begin = begin.Prev()
	}

	if end.Equal(buf.End()) {
		end = end.Prev()
	}

	if flags.Has(ToBegin) && !flags.Has(ToEnd) {
		return NewRange(pos.Coord(), begin.Coord()), true
	}
	first := pos
	if flags.Has(ToBegin) {
		first = begin
	}
	return NewRange(first.Coord(), end.Coord()), true
}
