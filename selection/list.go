package selection

import (
	"sort"

	"corvid/textbuf"
)

// List is a non-empty, sorted, non-overlapping set of selections over
// a single buffer, with one selection designated as the main one.
type List struct {
	buf  *textbuf.Buffer
	Sels []Selection
	Main int
}

// NewList builds a List holding a single selection.
func NewList(buf *textbuf.Buffer, sel Selection) List {
	return List{buf: buf, Sels: []Selection{sel}, Main: 0}
}

// NewListFromSorted builds a List from selections that are already
// known to be sorted by Min() and pairwise non-overlapping, avoiding
// the O(n log n) re-sort NewSortedList performs.
func NewListFromSorted(buf *textbuf.Buffer, sels []Selection, main int) List {
	return List{buf: buf, Sels: sels, Main: main}
}

// Buffer returns the buffer the list's coordinates are valid against.
func (l List) Buffer() *textbuf.Buffer { return l.buf }

// Len returns the number of selections in the list.
func (l List) Len() int { return len(l.Sels) }

// MainSelection returns the designated main selection.
func (l List) MainSelection() Selection { return l.Sels[l.Main] }

// SortAndMerge sorts selections by Min() ascending and merges any that
// now overlap, restoring the SelectionList invariants of spec.md §3.
// The direction of the earlier-starting selection in a merge wins.
func SortAndMerge(buf *textbuf.Buffer, sels []Selection, main int) List {
	mainSel := sels[main]
	sort.SliceStable(sels, func(i, j int) bool { return sels[i].Min().Less(sels[j].Min()) })
	out := sels[:0:0]
	for _, s := range sels {
		if n := len(out); n > 0 && !out[n-1].Max().Less(s.Min()) {
			merged := out[n-1]
			if s.Max().Less(merged.Max()) {
				s.Cursor, s.Anchor = merged.Anchor, merged.Cursor
			}
			lo, hi := textbuf.Min(merged.Min(), s.Min()), textbuf.Max(merged.Max(), s.Max())
			if merged.Direction() == Backward {
				out[n-1] = Selection{Anchor: hi, Cursor: lo, Captures: merged.Captures}
			} else {
				out[n-1] = Selection{Anchor: lo, Cursor: hi, Captures: merged.Captures}
			}
			continue
		}
		out = append(out, s)
	}
	newMain := 0
	for i, s := range out {
		if s.Min().LessEq(mainSel.Min()) && mainSel.Max().LessEq(s.Max()) {
			newMain = i
		}
	}
	return List{buf: buf, Sels: out, Main: newMain}
}
