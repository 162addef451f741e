package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// setupEventHandling wires the per-window change and selection handlers.
// Everything runs synchronously inside the triggering handler; a handler
// completes before the next event is dispatched.
func (w *Window) setupEventHandling() {
	// Live reformat on every input keystroke. Errors are swallowed here;
	// intermediate keystrokes routinely produce transiently invalid JSON.
	w.input.SetChangedFunc(func() {
		w.process(w.input.GetText(), false)
	})

	// Rebuild the search session wholesale on every pattern keystroke.
	w.searchInput.SetChangedFunc(func(text string) {
		w.rebuildSearch(text)
	})

	w.searchInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			w.nextMatch()
		case tcell.KeyEscape:
			w.closeSearch()
		}
	})

	w.searchInput.SetFocusFunc(func() {
		w.searchInput.SetTitle(" 🔍 Searching... ")
	})
	w.searchInput.SetBlurFunc(func() {
		w.searchInput.SetTitle(" 🔍 Search ")
	})

	// Selecting a tree node regenerates the JSON fragment rooted there.
	w.tree.SetSelectedFunc(func(node *tview.TreeNode) {
		w.showNodeFragment(node)
	})
}
