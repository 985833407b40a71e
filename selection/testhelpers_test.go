package selection

import "corvid/textbuf"

func newTestBuffer(s string) *textbuf.Buffer {
	return textbuf.New(s)
}

func coordAt(line, col int) textbuf.Coord {
	return textbuf.Coord{Line: line, Column: col}
}

// textEnd returns the coordinate one codepoint past c, for turning an
// inclusive selection endpoint into the exclusive bound Buffer.String
// wants. Uses the actual rune width at c so a selection ending on a
// multi-byte codepoint isn't truncated mid-rune.
func textEnd(buf *textbuf.Buffer, c textbuf.Coord) textbuf.Coord {
	_, size := buf.RuneAt(c)
	if size == 0 {
		size = 1
	}
	return textbuf.Coord{Line: c.Line, Column: c.Column + size}
}

// selText renders the text a selection covers, inclusive of both
// endpoints, for assertions in table-driven tests.
func selText(buf *textbuf.Buffer, sel Selection) string {
	return buf.String(sel.Min(), textEnd(buf, sel.Max()))
}
