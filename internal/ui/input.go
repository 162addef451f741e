package ui

import (
	"github.com/gdamore/tcell/v2"
)

// handleInput handles the global keyboard shortcuts. Text keys fall through
// to whichever pane has focus; everything global lives on function keys and
// control chords so typing in the buffer is never intercepted.
func (m *Manager) handleInput(event *tcell.EventKey) *tcell.EventKey {
	w := m.current()
	if w == nil || m.modalOpen {
		// Modals handle their own keys.
		return event
	}

	switch event.Key() {
	case tcell.KeyF1:
		m.showHelpModal()
		return nil
	case tcell.KeyF2:
		// Explicit format: parse errors surface in a modal.
		w.process(w.input.GetText(), true)
		return nil
	case tcell.KeyF3:
		w.compact()
		return nil
	case tcell.KeyF7:
		w.prevMatch()
		return nil
	case tcell.KeyF8:
		w.nextMatch()
		return nil
	case tcell.KeyF9:
		m.cycleWindow(-1)
		return nil
	case tcell.KeyF10:
		m.cycleWindow(1)
		return nil
	case tcell.KeyCtrlN:
		m.CreateWindow()
		return nil
	case tcell.KeyCtrlW:
		m.DestroyWindow(w)
		return nil
	case tcell.KeyCtrlQ:
		m.app.Stop()
		return nil
	case tcell.KeyCtrlF:
		m.app.SetFocus(w.searchInput)
		return nil
	case tcell.KeyCtrlY:
		w.copyResult()
		return nil
	case tcell.KeyCtrlS:
		m.showSaveModal(w)
		return nil
	case tcell.KeyCtrlO:
		m.showOpenModal(w)
		return nil
	case tcell.KeyTab, tcell.KeyBacktab:
		// The TextArea would swallow Tab as text; use it for focus cycling
		// across input -> tree -> output -> search instead.
		step := 1
		if event.Key() == tcell.KeyBacktab {
			step = -1
		}
		w.cycleFocus(step)
		return nil
	}
	return event
}

// cycleFocus moves focus through the window's panes in order.
func (w *Window) cycleFocus(step int) {
	cur := 0
	for i, p := range w.focusOrder {
		if w.mgr.app.GetFocus() == p {
			cur = i
			break
		}
	}
	next := (cur + step + len(w.focusOrder)) % len(w.focusOrder)
	w.mgr.app.SetFocus(w.focusOrder[next])
}
