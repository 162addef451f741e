package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// createComponents initializes all UI components of a window.
func (w *Window) createComponents() {
	// Top title bar
	w.topBar = tview.NewTextView().
		SetText("[::b][yellow]" + w.title() + "- Press F1 for Help [white]").
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	// Raw JSON input pane
	w.input = tview.NewTextArea().
		SetPlaceholder("Raw JSON")
	w.input.SetWrap(false)

	// Display tree pane
	w.tree = tview.NewTreeView()
	w.tree.SetTopLevel(0)

	// Formatted output pane
	w.output = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	// Search input
	w.searchInput = tview.NewInputField()
	w.searchInput.SetLabel("")
	w.searchInput.SetFieldWidth(0)
	w.searchInput.SetBorder(true)
	w.searchInput.SetTitle(" 🔍 Search ")
	w.searchInput.SetTitleAlign(tview.AlignCenter)

	// Status/bottom bar
	w.statusBar = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)

	w.focusOrder = []tview.Primitive{w.input, w.tree, w.output, w.searchInput}
}

// styleComponents applies borders, titles and theme colors.
func (w *Window) styleComponents() {
	theme := w.mgr.cfg.Theme

	w.input.SetBorder(true).SetTitle(" 📝 Raw JSON ").SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.GetColor(theme.InputBorder))
	w.tree.SetBorder(true).SetTitle(" 🌳 JSON Tree ").SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.GetColor(theme.TreeBorder))
	w.output.SetBorder(true).SetTitle(" 📄 Result ").SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.GetColor(theme.OutputBorder))
	w.searchInput.SetBorderColor(tcell.GetColor(theme.SearchBorder))

	w.tree.SetGraphicsColor(tcell.ColorGray)
}

// createLayout arranges the three panes side by side with the search box and
// the status bar below.
func (w *Window) createLayout() {
	panes := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(w.input, 0, inputPaneRatio, true).
		AddItem(w.tree, 0, treePaneRatio, false).
		AddItem(w.output, 0, outputPaneRatio, false)

	searchContainer := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(w.searchInput, 0, 2, false).
		AddItem(nil, 0, 1, false)

	w.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(w.topBar, 1, 0, false).
		AddItem(panes, 0, 1, true).
		AddItem(searchContainer, searchBoxHeight, 0, false).
		AddItem(w.statusBar, 1, 0, false)
}
