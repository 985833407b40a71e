package editor

import "corvid/syntax"

// lineColors computes syntax (and, while the multi-selection demo mode
// is active, selection) color spans for the lines visible in the
// viewport, keyed by absolute line index to match selectionMap's own
// convention. Word wrap can spread one logical line over several rows,
// so this pads generously past the viewport's line height rather than
// tracking exact wrapped-row counts.
func (e *Editor) lineColors(lines []string) map[int][]syntax.ColorSpan {
	if !e.highlighter.Enabled() || len(lines) == 0 {
		return nil
	}
	start := e.viewport.ScrollY()
	if start < 0 {
		start = 0
	}
	if start >= len(lines) {
		return nil
	}
	end := start + e.viewport.Height()*4
	if end > len(lines) {
		end = len(lines)
	}

	colors := make(map[int][]syntax.ColorSpan, end-start)
	for line := start; line < end; line++ {
		if e.multiSelActive {
			colors[line] = syntax.ComposedLineSpans(e.highlighter, e.multiSel, line, lines[line])
		} else {
			colors[line] = e.highlighter.GetLineColors(lines[line])
		}
	}
	return colors
}
