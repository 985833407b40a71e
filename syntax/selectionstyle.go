package syntax

import "corvid/selection"

// SelectionReverseVideo is the ANSI sequence used to paint the extent
// of an active selection, layered on top of any syntax color for the
// same span.
const SelectionReverseVideo = "\033[7m"

// SelectionSpansForLine returns ColorSpans, in the same rune-column
// terms as Highlighter.GetLineColors, covering the parts of line
// (0-indexed) that fall inside any selection of list. Pass the result
// ahead of a Highlighter's own spans to ColorAt so selection coloring
// wins ties.
func SelectionSpansForLine(list selection.List, line int, lineText string) []ColorSpan {
	var spans []ColorSpan
	for _, sel := range list.Sels {
		min, max := sel.Min(), sel.Max()
		if line < min.Line || line > max.Line {
			continue
		}
		startByte := 0
		if line == min.Line {
			startByte = min.Column
		}
		endByte := len(lineText)
		if line == max.Line {
			endByte = max.Column + 1
			if endByte > len(lineText) {
				endByte = len(lineText)
			}
		}
		if startByte >= endByte {
			continue
		}
		spans = append(spans, ColorSpan{
			Start: byteColToRuneCol(lineText, startByte),
			End:   byteColToRuneCol(lineText, endByte),
			Color: SelectionReverseVideo,
		})
	}
	return spans
}

// ComposedLineSpans merges h's syntax spans with list's selection
// spans for a single line, selection spans first so they take
// priority in ColorAt.
func ComposedLineSpans(h *Highlighter, list selection.List, line int, lineText string) []ColorSpan {
	spans := SelectionSpansForLine(list, line, lineText)
	return append(spans, h.GetLineColors(lineText)...)
}

func byteColToRuneCol(s string, byteCol int) int {
	n := 0
	for i := range s {
		if i >= byteCol {
			break
		}
		n++
	}
	return n
}
