// Package textbuf provides a read-only, line-indexed view over buffer
// text and a bidirectional UTF-8 codepoint iterator over it. It is the
// "buffer collaborator" the selection engine (package selection) is
// specified against: coordinates are (line, byte-column) pairs, and
// every line's slice includes its trailing newline, the last line of
// the buffer included (New appends one when the text lacks it).
package textbuf

import (
	"strings"
	"unicode/utf8"
)

// Coord is a (line, column) position in a Buffer. Column is a byte
// offset into the line, not a rune index.
type Coord struct {
	Line   int
	Column int
}

// Less reports whether c sorts strictly before o.
func (c Coord) Less(o Coord) bool {
	return c.Line < o.Line || (c.Line == o.Line && c.Column < o.Column)
}

// LessEq reports whether c sorts before or equal to o.
func (c Coord) LessEq(o Coord) bool {
	return c == o || c.Less(o)
}

// Min returns the smaller of a and b.
func Min(a, b Coord) Coord {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max(a, b Coord) Coord {
	if b.Less(a) {
		return a
	}
	return b
}

// Buffer is an immutable, line-indexed view over a piece of text. Each
// line's string includes its trailing '\n', matching Kakoune's
// convention that a line's length always counts the newline.
type Buffer struct {
	lines []string
}

// New builds a Buffer from raw text. A trailing newline is appended if
// missing, so the last line always satisfies the "ends with \n"
// invariant of spec.md's data model; an empty buffer is a single empty
// line "\n".
func New(text string) *Buffer {
	if text == "" {
		text = "\n"
	} else if text[len(text)-1] != '\n' {
		text += "\n"
	}
	lines := strings.SplitAfter(text, "\n")
	// SplitAfter leaves a trailing "" element after the final "\n".
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		lines = []string{"\n"}
	}
	return &Buffer{lines: lines}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the raw contents of line i, trailing newline included
// (the last line of the buffer always has one, per New's invariant).
func (b *Buffer) Line(i int) string {
	return b.lines[i]
}

// BackCoord returns the coordinate of the last byte in the buffer.
func (b *Buffer) BackCoord() Coord {
	last := len(b.lines) - 1
	return Coord{Line: last, Column: len(b.lines[last]) - 1}
}

// ClampCoord clamps c to a valid position within the buffer.
func (b *Buffer) ClampCoord(c Coord) Coord {
	if c.Line < 0 {
		return Coord{0, 0}
	}
	if c.Line >= len(b.lines) {
		return b.BackCoord()
	}
	line := b.lines[c.Line]
	if c.Column < 0 {
		c.Column = 0
	}
	if c.Column >= len(line) {
		c.Column = len(line) - 1
		if c.Column < 0 {
			c.Column = 0
		}
	}
	return c
}

// ByteAt returns the byte at coordinate c.
func (b *Buffer) ByteAt(c Coord) byte {
	return b.lines[c.Line][c.Column]
}

// String returns the buffer text between begin (inclusive) and end
// (exclusive), a half-open coordinate range.
func (b *Buffer) String(begin, end Coord) string {
	if !begin.Less(end) {
		return ""
	}
	if begin.Line == end.Line {
		return b.lines[begin.Line][begin.Column:end.Column]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[begin.Line][begin.Column:])
	for l := begin.Line + 1; l < end.Line; l++ {
		sb.WriteString(b.lines[l])
	}
	sb.WriteString(b.lines[end.Line][:end.Column])
	return sb.String()
}

// Text returns the whole buffer contents as a single string.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "")
}

// Begin returns an iterator at the buffer's first byte.
func (b *Buffer) Begin() Iterator {
	return Iterator{buf: b, coord: Coord{0, 0}}
}

// End returns the past-the-end sentinel iterator: one line past the
// last line of the buffer.
func (b *Buffer) End() Iterator {
	return Iterator{buf: b, coord: Coord{Line: len(b.lines), Column: 0}}
}

// IteratorAt returns an iterator positioned at coordinate c.
func (b *Buffer) IteratorAt(c Coord) Iterator {
	return Iterator{buf: b, coord: c}
}

// IteratorAtLine returns an iterator at the start of the given line.
func (b *Buffer) IteratorAtLine(line int) Iterator {
	return Iterator{buf: b, coord: Coord{Line: line, Column: 0}}
}

// RuneAt decodes the codepoint starting at c and returns it with its
// byte width.
func (b *Buffer) RuneAt(c Coord) (rune, int) {
	if c.Line < 0 || c.Line >= len(b.lines) {
		return 0, 0
	}
	line := b.lines[c.Line]
	if c.Column < 0 || c.Column >= len(line) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(line[c.Column:])
}
