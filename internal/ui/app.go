package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/jviz-dev/jviz/internal/config"
	"github.com/jviz-dev/jviz/internal/format"
	"github.com/jviz-dev/jviz/internal/logging"
)

const (
	statusMessageDurationSec = 3

	// Pane width ratios: input 1/5, tree 2/5, output 2/5.
	inputPaneRatio  = 1
	treePaneRatio   = 2
	outputPaneRatio = 2

	searchBoxHeight = 3

	appVersion = "v2.0.2"
)

// Manager owns the tview application, the window-creation counter and the
// list of live windows. All window lifecycle goes through Create/Destroy;
// there is no other shared state between windows.
type Manager struct {
	app       *tview.Application
	cfg       *config.Config
	formatter *format.Formatter
	log       *logrus.Entry

	pages     *tview.Pages
	windows   []*Window
	counter   int
	active    int
	modalOpen bool
}

// NewManager creates the application shell. No window exists yet; Run
// creates the first one.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		app:       tview.NewApplication(),
		cfg:       cfg,
		formatter: format.NewFormatter(),
		log:       logging.NewLogger("ui"),
		pages:     tview.NewPages(),
	}
}

// Run opens the first window, optionally pre-filled with initial buffer
// text, and blocks until the application exits.
func (m *Manager) Run(initialText string) error {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	w := m.CreateWindow()
	if initialText != "" {
		w.input.SetText(initialText, false)
	}

	m.app.SetInputCapture(m.handleInput)
	return m.app.SetRoot(m.pages, true).Run()
}

// CreateWindow increments the creation counter, builds an independent
// window (own buffer, tree, search session) and switches to it.
func (m *Manager) CreateWindow() *Window {
	m.counter++
	w := newWindow(m, m.counter)
	m.windows = append(m.windows, w)
	m.pages.AddPage(w.pageName(), w.layout, true, false)
	m.switchTo(len(m.windows) - 1)
	m.log.WithField("window", m.counter).Debug("window created")
	return w
}

// DestroyWindow removes w; closing the last window stops the application.
// The creation counter never decreases, so titles stay unique.
func (m *Manager) DestroyWindow(w *Window) {
	for i, win := range m.windows {
		if win != w {
			continue
		}
		m.pages.RemovePage(w.pageName())
		m.windows = append(m.windows[:i], m.windows[i+1:]...)
		m.log.WithField("window", w.number).Debug("window destroyed")
		if len(m.windows) == 0 {
			m.app.Stop()
			return
		}
		if m.active >= len(m.windows) {
			m.active = len(m.windows) - 1
		}
		m.switchTo(m.active)
		return
	}
}

// current returns the active window.
func (m *Manager) current() *Window {
	if len(m.windows) == 0 {
		return nil
	}
	return m.windows[m.active]
}

func (m *Manager) switchTo(i int) {
	if i < 0 || i >= len(m.windows) {
		return
	}
	m.active = i
	w := m.windows[i]
	m.pages.SwitchToPage(w.pageName())
	m.app.SetFocus(w.input)
	w.updateStatusBar()
}

func (m *Manager) cycleWindow(step int) {
	if len(m.windows) < 2 {
		return
	}
	m.switchTo((m.active + step + len(m.windows)) % len(m.windows))
}

// showStatusMessage shows a transient message in the window's status bar.
func (w *Window) showStatusMessage(msg string) {
	w.statusMessage = msg
	w.statusEnd = time.Now().Add(statusMessageDurationSec * time.Second)
	w.updateStatusBar()

	mgr := w.mgr
	time.AfterFunc(statusMessageDurationSec*time.Second, func() {
		mgr.app.QueueUpdateDraw(func() {
			if time.Now().After(w.statusEnd) {
				w.statusMessage = ""
				w.updateStatusBar()
			}
		})
	})
}

func (w *Window) pageName() string {
	return fmt.Sprintf("window-%d", w.number)
}
