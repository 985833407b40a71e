package selection

import "corvid/textbuf"

func lineIndent(line string, tabStop int) int {
	indent := 0
	for _, c := range line {
		switch c {
		case ' ':
			indent++
		case '\t':
			indent = (indent/tabStop + 1) * tabStop
		default:
			return indent
		}
	}
	return indent
}

func isOnlyWhitespaceLine(line string) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\n' {
			return false
		}
	}
	return true
}

// SelectIndent grows the selection to the block of lines sharing an
// indent level at least as deep as the cursor's line, treating blank
// lines as transparent. With Inner, leading/trailing whitespace-only
// lines are trimmed from the block.
func SelectIndent(ctx Context, sel Selection, flags ObjectFlags) (Selection, bool) {
	buf := ctx.Buf
	toBegin, toEnd := flags.Has(ToBegin), flags.Has(ToEnd)

	pos := sel.Cursor
	line := pos.Line
	indent := lineIndent(buf.Line(line), ctx.Opts.TabStop)

	beginLine := line - 1
	if toBegin {
		for beginLine >= 0 && (buf.Line(beginLine) == "\n" || lineIndent(buf.Line(beginLine), ctx.Opts.TabStop) >= indent) {
			beginLine--
		}
	}
	beginLine++

	endLine := line + 1
	if toEnd {
		lineCount := buf.LineCount()
		for endLine < lineCount && (buf.Line(endLine) == "\n" || lineIndent(buf.Line(endLine), ctx.Opts.TabStop) >= indent) {
			endLine++
		}
	}
	endLine--

	if flags.Has(Inner) {
		for beginLine < endLine && isOnlyWhitespaceLine(buf.Line(beginLine)) {
			beginLine++
		}
		for beginLine < endLine && isOnlyWhitespaceLine(buf.Line(endLine)) {
			endLine--
		}
	}

	first := pos
	if toBegin {
		first = textbuf.Coord{Line: beginLine, Column: 0}
	}
	last := pos
	if toEnd {
		last = textbuf.Coord{Line: endLine, Column: len(buf.Line(endLine)) - 1}
	}
	if toEnd {
		return NewRange(first, last), true
	}
	return NewRange(last, first), true
}
