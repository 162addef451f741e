package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/jviz-dev/jviz/internal/jsonval"
	"github.com/jviz-dev/jviz/internal/search"
)

// Window is one independent workspace: an input buffer, its display tree,
// its search session and its output text. Nothing here is shared with other
// windows. All work runs synchronously inside the event handler that
// triggered it.
type Window struct {
	mgr    *Manager
	number int

	// UI components
	input       *tview.TextArea
	tree        *tview.TreeView
	output      *tview.TextView
	searchInput *tview.InputField
	topBar      *tview.TextView
	statusBar   *tview.TextView
	layout      *tview.Flex

	// Parsed state; valid only when hasValue is true.
	value    jsonval.Value
	hasValue bool

	// outputPlain is the untagged text shown in the output pane; the search
	// session always refers to this buffer.
	outputPlain string
	session     *search.Session

	statusMessage string
	statusEnd     time.Time

	focusOrder []tview.Primitive
}

// newWindow builds a fully wired window. The caller registers it with the
// manager and switches to it.
func newWindow(m *Manager, number int) *Window {
	w := &Window{mgr: m, number: number}
	w.createComponents()
	w.styleComponents()
	w.createLayout()
	w.setupEventHandling()
	w.updateStatusBar()
	return w
}

// title returns the window title; window 1 carries no number, matching the
// counter's only observable purpose.
func (w *Window) title() string {
	if w.number > 1 {
		return fmt.Sprintf(" 🧩 jviz — JSON Formatter %d ", w.number)
	}
	return " 🧩 jviz — JSON Formatter "
}
