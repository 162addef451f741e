package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jviz-dev/jviz/internal/jsonval"
)

// showParseErrorModal surfaces a ParseError with its message and position.
func (m *Manager) showParseErrorModal(title string, err error) {
	var perr *jsonval.ParseError
	if errors.As(err, &perr) {
		m.showErrorModal(title, fmt.Sprintf("%s\nLine: %d, Column: %d",
			perr.Message, perr.Line, perr.Column))
		return
	}
	m.showErrorModal(title, err.Error())
}

// showErrorModal displays a dismissable error box over the current window.
func (m *Manager) showErrorModal(title, message string) {
	view := tview.NewTextView()
	view.SetDynamicColors(true)
	view.SetText(fmt.Sprintf("[red]%s[white]\n\n[yellow]Press Esc or Enter to dismiss[white]",
		tview.Escape(message)))
	view.SetTextAlign(tview.AlignCenter)
	view.SetBorder(true)
	view.SetTitle(" ❌ " + title + " ")
	view.SetTitleAlign(tview.AlignCenter)
	view.SetBorderColor(tcell.ColorRed)

	container := m.centeredModal(view, 9)
	container.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyEnter {
			m.dismissModal()
			return nil
		}
		return event
	})

	m.presentModal(container, container)
}

// showHelpModal displays the key legend and version.
func (m *Manager) showHelpModal() {
	helpText := fmt.Sprintf(`[yellow]🧩 jviz %s — JSON viewer for the terminal[white]

[yellow]Formatting:[white]
  [cyan]F2[white]           Format the buffer (errors shown with position)
  [cyan]F3[white]           Compress the buffer (compact output)
  (the buffer also reformats live as you type)

[yellow]Tree:[white]
  [cyan]arrows[white]       Navigate the tree
  [cyan]Enter[white]        Show the JSON fragment for the selected node

[yellow]Search:[white]
  [cyan]Ctrl+F[white]       Focus the search box (literal, case-sensitive)
  [cyan]Enter / F8[white]   Next match (wraps around)
  [cyan]F7[white]           Previous match (wraps around)
  [cyan]Esc[white]          Close search

[yellow]Files & clipboard:[white]
  [cyan]Ctrl+O[white]       Open a JSON file into the buffer
  [cyan]Ctrl+S[white]       Save the result pane to a file
  [cyan]Ctrl+Y[white]       Copy the result pane to the clipboard

[yellow]Windows:[white]
  [cyan]Ctrl+N[white]       New independent window
  [cyan]Ctrl+W[white]       Close window (last one quits)
  [cyan]F9/F10[white]       Previous/next window
  [cyan]Tab[white]          Cycle focus between panes
  [cyan]Ctrl+Q[white]       Quit`, appVersion)

	view := tview.NewTextView()
	view.SetDynamicColors(true)
	view.SetText(helpText)
	view.SetTextAlign(tview.AlignLeft)
	view.SetBorder(true)
	view.SetTitle(" 🆘 Help ")
	view.SetTitleAlign(tview.AlignCenter)
	view.SetBorderColor(tcell.ColorYellow)

	container := m.centeredModal(view, 0)
	container.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 || event.Rune() == 'q' {
			m.dismissModal()
			return nil
		}
		return event
	})

	m.presentModal(container, container)
}

// showSaveModal prompts for a path and writes the result pane there.
func (m *Manager) showSaveModal(w *Window) {
	m.showPathModal(" 💾 Save result to ", func(path string) {
		w.saveFile(path)
	})
}

// showOpenModal prompts for a path and loads it into the input buffer.
func (m *Manager) showOpenModal(w *Window) {
	m.showPathModal(" 📂 Open JSON file ", func(path string) {
		w.openFile(path)
	})
}

// showPathModal displays a one-line path prompt; Enter confirms, Esc
// cancels. The terminal has no native file dialog, so a path field stands in
// for one.
func (m *Manager) showPathModal(title string, done func(path string)) {
	field := tview.NewInputField()
	field.SetLabel(" Path: ")
	field.SetFieldWidth(0)
	field.SetBorder(true)
	field.SetTitle(title)
	field.SetTitleAlign(tview.AlignCenter)
	field.SetBorderColor(tcell.ColorGreen)

	field.SetDoneFunc(func(key tcell.Key) {
		path := field.GetText()
		m.dismissModal()
		if key == tcell.KeyEnter && path != "" {
			done(path)
		}
	})

	container := m.centeredModal(field, 3)
	m.presentModal(container, field)
}

// centeredModal wraps content in spacer flexes. A height of 0 lets the
// content take the available proportional space.
func (m *Manager) centeredModal(content tview.Primitive, height int) *tview.Flex {
	inner := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(content, 0, 2, true).
		AddItem(nil, 0, 1, false)

	container := tview.NewFlex().SetDirection(tview.FlexRow)
	container.AddItem(nil, 0, 1, false)
	if height > 0 {
		container.AddItem(inner, height, 0, true)
	} else {
		container.AddItem(inner, 0, 3, true)
	}
	container.AddItem(nil, 0, 1, false)
	return container
}

// presentModal swaps the root primitive for the modal container.
func (m *Manager) presentModal(container tview.Primitive, focus tview.Primitive) {
	m.modalOpen = true
	m.app.SetRoot(container, true)
	m.app.SetFocus(focus)
}

// dismissModal restores the window pages as the root primitive.
func (m *Manager) dismissModal() {
	m.modalOpen = false
	m.app.SetRoot(m.pages, true)
	if w := m.current(); w != nil {
		m.app.SetFocus(w.input)
	}
}
