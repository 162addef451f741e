package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jviz-dev/jviz/internal/highlight"
	"github.com/jviz-dev/jviz/internal/jsontree"
	"github.com/jviz-dev/jviz/internal/jsonval"
	"github.com/jviz-dev/jviz/internal/search"
)

// process parses the buffer and refreshes the tree and output panes. With
// showError set (explicit Format action) a parse failure opens a modal;
// otherwise (live typing) the failure is swallowed and both views cleared.
func (w *Window) process(text string, showError bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		w.clearResult()
		return
	}

	v, err := jsonval.Parse(text)
	if err != nil {
		if showError {
			w.mgr.showParseErrorModal("Format failed", err)
		} else {
			w.clearResult()
		}
		return
	}
	if w.mgr.cfg.ShouldExpand() {
		v = jsonval.Expand(v)
	}

	w.value = v
	w.hasValue = true
	w.populateTree(v)
	w.setOutput(jsonval.Serialize(v, jsonval.ModePretty))
}

// compact reformats the buffer without whitespace. Mirrors the Compress
// action: no nested-string expansion, errors always surfaced.
func (w *Window) compact() {
	text := strings.TrimSpace(w.input.GetText())
	if text == "" {
		return
	}
	v, err := jsonval.Parse(text)
	if err != nil {
		w.mgr.showParseErrorModal("Compress failed", err)
		return
	}
	w.value = v
	w.hasValue = true
	w.populateTree(v)
	w.setOutput(jsonval.Serialize(v, jsonval.ModeCompact))
}

// clearResult empties the tree and output panes and drops the session's
// buffer reference; the search pattern itself stays in the field.
func (w *Window) clearResult() {
	w.hasValue = false
	w.tree.SetRoot(nil)
	w.outputPlain = ""
	w.session = search.New("", w.searchInput.GetText())
	w.output.SetText("")
}

// populateTree rebuilds the tree pane from scratch; the previous tree is
// discarded wholesale.
func (w *Window) populateTree(v jsonval.Value) {
	root := jsontree.Project(v)
	w.tree.SetRoot(w.buildTreeNode(root))
	w.tree.SetCurrentNode(w.tree.GetRoot())
}

// buildTreeNode converts a projected node into a tview node, all containers
// expanded by default.
func (w *Window) buildTreeNode(n *jsontree.Node) *tview.TreeNode {
	label := n.Label
	if label == "" {
		label = "(root)"
	}
	t := tview.NewTreeNode(label).
		SetReference(n).
		SetColor(tcell.ColorSpringGreen).
		SetSelectable(true).
		SetExpanded(true)
	for _, c := range n.Children {
		t.AddChild(w.buildTreeNode(c))
	}
	return t
}

// showNodeFragment pretty-prints the reconstruction of the selected node.
// If reconstruction blows up for a structural reason, the raw label is shown
// verbatim instead of failing the interaction.
func (w *Window) showNodeFragment(node *tview.TreeNode) {
	n, ok := node.GetReference().(*jsontree.Node)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.mgr.log.WithField("panic", r).Warn("reconstruction failed")
			w.setOutput(node.GetText())
		}
	}()
	v := jsontree.Reconstruct(n)
	w.setOutput(jsonval.Serialize(v, jsonval.ModePretty))
}

// setOutput replaces the output buffer, rebuilds the search session against
// the new text and re-renders the pane.
func (w *Window) setOutput(text string) {
	w.outputPlain = text
	w.session = search.New(text, w.searchInput.GetText())
	w.renderOutput()
}

// rebuildSearch rebuilds the session for a new pattern over the current
// buffer.
func (w *Window) rebuildSearch(pattern string) {
	w.session = search.New(w.outputPlain, pattern)
	w.renderOutput()
	w.updateStatusBar()
}

// renderOutput paints the output pane. While a pattern is active the search
// layers own the pane (current line, all matches, current match); otherwise
// the serialized JSON is syntax colored.
func (w *Window) renderOutput() {
	if w.session == nil || w.session.Pattern == "" {
		w.output.SetText(w.mgr.formatter.ColorizeJSON(w.outputPlain))
		w.output.ScrollToBeginning()
		return
	}
	spans := highlight.Compose(w.session, 0)
	w.output.SetText(w.mgr.formatter.ApplyHighlights(w.outputPlain, spans))
	w.scrollToCurrentMatch()
}

func (w *Window) scrollToCurrentMatch() {
	m, ok := w.session.CurrentMatch()
	if !ok {
		return
	}
	line := strings.Count(w.outputPlain[:m.Start], "\n")
	w.output.ScrollTo(line, 0)
}

func (w *Window) nextMatch() {
	if !w.session.HasMatches() {
		return
	}
	w.session.Next()
	w.renderOutput()
	w.updateStatusBar()
}

func (w *Window) prevMatch() {
	if !w.session.HasMatches() {
		return
	}
	w.session.Prev()
	w.renderOutput()
	w.updateStatusBar()
}

// closeSearch clears the session and restores the plain rendering; only the
// current-line marker semantics remain (the output pane falls back to
// syntax coloring).
func (w *Window) closeSearch() {
	w.searchInput.SetText("")
	w.session = search.New(w.outputPlain, "")
	w.renderOutput()
	w.updateStatusBar()
	w.mgr.app.SetFocus(w.input)
}

// updateStatusBar refreshes the bottom bar: transient message, match
// counter, key legend.
func (w *Window) updateStatusBar() {
	if w.statusMessage != "" {
		w.statusBar.SetText(fmt.Sprintf("[green]✅ %s[white]", tview.Escape(w.statusMessage)))
		return
	}

	legend := "[cyan]F2[white] Format  [cyan]F3[white] Compress  [cyan]Ctrl+Y[white] Copy  " +
		"[cyan]Ctrl+S[white] Save  [cyan]Ctrl+O[white] Open  [cyan]Ctrl+F[white] Search  " +
		"[cyan]Ctrl+N[white] New Window  [cyan]F1[white] Help"

	if w.session != nil && w.session.Pattern != "" {
		var pos string
		if w.session.HasMatches() {
			pos = fmt.Sprintf("match %d/%d", w.session.Current+1, len(w.session.Matches))
		} else {
			pos = "no matches"
		}
		legend = fmt.Sprintf("[yellow]🔍 %s[white]  [cyan]F7/F8[white] Prev/Next  [cyan]Esc[white] Close  |  %s",
			pos, legend)
	}
	w.statusBar.SetText(legend)
}
