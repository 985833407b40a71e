package editor

import (
	"fmt"

	"corvid/selection"
)

// jumpToNextMatch (F6) moves the cursor and selection to the next
// regex match of the find query, wrapping past the end of the buffer,
// mirroring Kakoune's own "next match" search.
func (e *Editor) jumpToNextMatch() {
	if e.findQuery == "" {
		e.statusbar.SetMessage("No find query", "error")
		return
	}
	re, err := selection.Compile(e.findQuery)
	if err != nil {
		e.statusbar.SetMessage("Bad pattern: "+err.Error(), "error")
		return
	}
	tb := snapshotTextbuf(e.buffer)
	ctx := selection.NewContext(tb, e.selectionOptions())
	at := byteOffsetToCoord(e.buffer, e.cursor.ByteOffset())

	sel, wrapped, err := selection.FindNextMatch(ctx, selection.New(at), re, selection.Forward)
	if err != nil {
		e.statusbar.SetMessage("Not found", "error")
		return
	}

	e.selection.setFromCoords(e.buffer, tb, sel)
	e.cursor.SetByteOffset(e.selection.Cursor)
	e.viewport.EnsureCursorVisibleWrapped(e.buffer.Lines(), e.cursor.Line(), e.cursor.Col())
	if wrapped {
		e.statusbar.SetMessage("Search wrapped", "info")
	} else {
		e.statusbar.ClearMessage()
	}
}

// clearMultiSelect drops the demo mode's selection.List, if any.
func (e *Editor) clearMultiSelect() {
	e.multiSel = selection.List{}
	e.multiSelActive = false
	e.statusbar.SetSelectionCount(0)
}

// growMultiSelect (F3) compiles the current find query as a regex and
// selects every match in the buffer, replacing whatever multi-selection
// demo state existed before. Requires config.Editor.MultiSelect.
func (e *Editor) growMultiSelect() {
	if e.config == nil || !e.config.Editor.MultiSelect {
		return
	}
	if e.findQuery == "" {
		e.statusbar.SetMessage("No find query to select matches of", "error")
		return
	}
	re, err := selection.Compile(e.findQuery)
	if err != nil {
		e.statusbar.SetMessage("Bad pattern: "+err.Error(), "error")
		return
	}
	tb := snapshotTextbuf(e.buffer)
	whole := selection.SelectBuffer(selection.NewList(tb, selection.New(tb.Begin().Coord())))
	list, err := selection.SelectAllMatches(whole, re, 0)
	if err != nil {
		e.statusbar.SetMessage("No matches: "+err.Error(), "error")
		return
	}
	e.multiSel = list
	e.multiSelActive = true
	e.statusbar.SetSelectionCount(list.Len())
	e.statusbar.SetMessage(fmt.Sprintf("%d selections", list.Len()), "info")
}

// splitMultiSelect (F4) splits the active multi-selection demo list on
// every match of the find query.
func (e *Editor) splitMultiSelect() {
	if !e.multiSelActive {
		e.growMultiSelect()
		return
	}
	if e.findQuery == "" {
		return
	}
	re, err := selection.Compile(e.findQuery)
	if err != nil {
		e.statusbar.SetMessage("Bad pattern: "+err.Error(), "error")
		return
	}
	list, err := selection.SplitSelections(e.multiSel, re, 0)
	if err != nil {
		e.statusbar.SetMessage("Split left nothing: "+err.Error(), "error")
		return
	}
	e.multiSel = list
	e.statusbar.SetSelectionCount(list.Len())
	e.statusbar.SetMessage(fmt.Sprintf("%d selections", list.Len()), "info")
}

// yankMultiSelect (F5) copies the text of every selection in the demo
// list to the clipboard, one per line.
func (e *Editor) yankMultiSelect() {
	if !e.multiSelActive {
		return
	}
	if err := e.clipboard.YankSelections(e.multiSel); err != nil {
		e.statusbar.SetMessage("Yank failed: "+err.Error(), "error")
		return
	}
	e.statusbar.SetMessage(fmt.Sprintf("Yanked %d selections", e.multiSel.Len()), "info")
}
