package selection

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"corvid/textbuf"
)

// Regex wraps a compiled pattern for both forward and backward search.
// dlclark/regexp2 needs a separate right-to-left compile to search
// backward, unlike Kakoune's own regex engine, which can walk a match
// in either direction from one compiled program; a Regex value keeps
// both variants of the same pattern together.
type Regex struct {
	pattern  string
	forward  *regexp2.Regexp
	backward *regexp2.Regexp
}

// Compile builds a Regex from pattern. Multiline is always on, so ^
// and $ anchor at real line boundaries within the buffer rather than
// only at its absolute start and end.
func Compile(pattern string) (*Regex, error) {
	fwd, err := regexp2.Compile(pattern, regexp2.Multiline)
	if err != nil {
		return nil, err
	}
	bwd, err := regexp2.Compile(pattern, regexp2.Multiline|regexp2.RightToLeft)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, forward: fwd, backward: bwd}, nil
}

// String returns the source pattern, as used in "no matches" errors.
func (r *Regex) String() string { return r.pattern }

// MarkCount returns the number of capturing groups, not counting the
// whole-match group 0.
func (r *Regex) MarkCount() int {
	return len(r.forward.GetGroupNumbers()) - 1
}

type matchSpan struct {
	begin, end int
	ok         bool
}

type matchResult struct {
	spans []matchSpan
}

// Because both the search functions and their callers here always
// operate against the buffer's whole flattened text (never a detached
// substring), ^, $ and \b evaluate against genuine surrounding buffer
// content for free; unlike the original's boost::regex-based
// collaborator, no synthetic BOL/EOL/BOW/EOW flags need to be threaded
// through to fake up context at a search window's edges.

func byteToRune(s string, byteOff int) int {
	n := 0
	for i := range s {
		if i >= byteOff {
			break
		}
		n++
	}
	return n
}

func runeToByte(s string, runeIdx int) int {
	n := 0
	for i := range s {
		if n == runeIdx {
			return i
		}
		n++
	}
	return len(s)
}

func extractSpans(text string, m *regexp2.Match) []matchSpan {
	groups := m.Groups()
	spans := make([]matchSpan, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			continue
		}
		c := g.Captures[0]
		spans[i] = matchSpan{
			begin: runeToByte(text, c.Index),
			end:   runeToByte(text, c.Index+c.Length),
			ok:    true,
		}
	}
	return spans
}

func (r *Regex) findForward(text string, fromByte int) *matchResult {
	if fromByte > len(text) {
		return nil
	}
	m, err := r.forward.FindStringMatchStartingAt(text, byteToRune(text, fromByte))
	if err != nil || m == nil {
		return nil
	}
	return &matchResult{spans: extractSpans(text, m)}
}

func (r *Regex) findBackward(text string, beforeByte int) *matchResult {
	if beforeByte < 0 {
		return nil
	}
	m, err := r.backward.FindStringMatchStartingAt(text, byteToRune(text, beforeByte))
	if err != nil || m == nil {
		return nil
	}
	return &matchResult{spans: extractSpans(text, m)}
}

func advancePastMatch(text string, span matchSpan) int {
	if span.end > span.begin {
		return span.end
	}
	if span.end >= len(text) {
		return len(text) + 1
	}
	_, size := utf8.DecodeRuneInString(text[span.end:])
	return span.end + size
}

// FindNextMatch searches for the next (Forward) or previous (Backward)
// match of re, starting just past sel's max (forward) or at its min
// (backward). It reports wrapped=true when the search ran off its end
// of the buffer and restarted from the other end.
func FindNextMatch(ctx Context, sel Selection, re *Regex, dir Direction) (result Selection, wrapped bool, err error) {
	buf := ctx.Buf
	text := buf.Text()

	var m *matchResult
	if dir == Forward {
		start := textbuf.NextTo(buf.IteratorAt(sel.Max()), buf.End())
		m = re.findForward(text, coordToOffset(buf, start.Coord()))
		if m == nil {
			wrapped = true
			m = re.findForward(text, 0)
		}
	} else {
		start := buf.IteratorAt(sel.Min())
		m = re.findBackward(text, coordToOffset(buf, start.Coord()))
		if m == nil {
			wrapped = true
			m = re.findBackward(text, len(text))
		}
	}
	if m == nil || !m.spans[0].ok {
		return Selection{}, wrapped, ErrNoMatches(re.String())
	}

	captures := make([]string, len(m.spans))
	for i, sp := range m.spans {
		if sp.ok {
			captures[i] = text[sp.begin:sp.end]
		}
	}

	beginC := offsetToCoord(buf, m.spans[0].begin)
	endC := offsetToCoord(buf, m.spans[0].end)
	if m.spans[0].begin != m.spans[0].end {
		it := textbuf.PrevTo(buf.IteratorAt(endC), buf.IteratorAt(beginC))
		endC = it.Coord()
	}
	if dir == Backward {
		beginC, endC = endC, beginC
	}
	result = NewRange(beginC, endC)
	result.Captures = captures
	return result, wrapped, nil
}

// SelectAllMatches replaces list with one selection per match of
// capture within each existing selection's span.
func SelectAllMatches(list List, re *Regex, capture int) (List, error) {
	if capture < 0 || capture > re.MarkCount() {
		return List{}, ErrInvalidCapture()
	}
	buf := list.Buffer()
	text := buf.Text()

	var result []Selection
	for _, sel := range list.Sels {
		selBegByte := coordToOffset(buf, sel.Min())
		selEndIt := textbuf.NextTo(buf.IteratorAt(sel.Max()), buf.End())
		selEndByte := coordToOffset(buf, selEndIt.Coord())

		for fromByte := selBegByte; fromByte <= selEndByte; {
			m := re.findForward(text, fromByte)
			if m == nil || m.spans[0].begin >= selEndByte {
				break
			}
			g := m.spans[capture]
			if !g.ok || g.begin >= selEndByte {
				fromByte = advancePastMatch(text, m.spans[0])
				continue
			}

			captures := make([]string, len(m.spans))
			for i, sp := range m.spans {
				if sp.ok {
					captures[i] = text[sp.begin:sp.end]
				}
			}
			beginC := offsetToCoord(buf, g.begin)
			endC := offsetToCoord(buf, g.end)
			if g.begin != g.end {
				it := textbuf.PrevTo(buf.IteratorAt(endC), buf.IteratorAt(beginC))
				endC = it.Coord()
			}
			cand := Selection{Anchor: beginC, Cursor: endC, Captures: captures}
			result = append(result, KeepDirection(cand, sel))

			fromByte = advancePastMatch(text, m.spans[0])
		}
	}
	if len(result) == 0 {
		return List{}, ErrNothingSelected()
	}
	return NewListFromSorted(buf, result, len(result)-1), nil
}

// SplitSelections replaces list with the pieces of each existing
// selection left over after removing every match of capture.
func SplitSelections(list List, re *Regex, capture int) (List, error) {
	if capture < 0 || capture > re.MarkCount() {
		return List{}, ErrInvalidCapture()
	}
	buf := list.Buffer()
	text := buf.Text()
	bufBeginByte := coordToOffset(buf, buf.Begin().Coord())
	bufEndByte := len(text)

	var result []Selection
	for _, sel := range list.Sels {
		beginByte := coordToOffset(buf, sel.Min())
		selEndIt := textbuf.NextTo(buf.IteratorAt(sel.Max()), buf.End())
		selEndByte := coordToOffset(buf, selEndIt.Coord())

		for fromByte := beginByte; fromByte <= selEndByte; {
			m := re.findForward(text, fromByte)
			if m == nil || m.spans[0].begin >= selEndByte {
				break
			}
			g := m.spans[capture]
			if !g.ok {
				fromByte = advancePastMatch(text, m.spans[0])
				continue
			}
			// A match starting exactly at buffer end leaves no piece to
			// carry forward at all: skip it and don't advance beginByte,
			// unlike the ordinary case below.
			if g.begin == bufEndByte {
				fromByte = advancePastMatch(text, m.spans[0])
				continue
			}
			// A match starting exactly at buffer begin has no preceding
			// piece to emit, but still advances beginByte past it.
			if g.begin != bufBeginByte {
				pieceEndByte := g.begin
				if beginByte != g.begin {
					it := textbuf.PrevTo(buf.IteratorAt(offsetToCoord(buf, g.begin)), buf.IteratorAt(offsetToCoord(buf, beginByte)))
					pieceEndByte = coordToOffset(buf, it.Coord())
				}
				cand := NewRange(offsetToCoord(buf, beginByte), offsetToCoord(buf, pieceEndByte))
				result = append(result, KeepDirection(cand, sel))
			}
			beginByte = g.end
			fromByte = advancePastMatch(text, m.spans[0])
		}
		if offsetToCoord(buf, beginByte).LessEq(sel.Max()) {
			cand := NewRange(offsetToCoord(buf, beginByte), sel.Max())
			result = append(result, KeepDirection(cand, sel))
		}
	}
	if len(result) == 0 {
		return List{}, ErrNothingSelected()
	}
	return NewListFromSorted(buf, result, len(result)-1), nil
}
