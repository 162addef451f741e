package ui

import (
	"fmt"

	"github.com/jviz-dev/jviz/internal/textio"
	"github.com/jviz-dev/jviz/pkg/clipboard"
)

// copyResult puts the output pane's plain text on the system clipboard.
func (w *Window) copyResult() {
	if w.outputPlain == "" {
		return
	}
	if err := clipboard.Copy(w.outputPlain); err != nil {
		w.showStatusMessage(fmt.Sprintf("Clipboard error: %v", err))
		return
	}
	w.showStatusMessage("JSON result copied to clipboard")
}

// openFile loads a UTF-8 file into the input buffer. On failure the buffer
// is left untouched and the error is surfaced once.
func (w *Window) openFile(path string) {
	text, err := textio.ReadFile(path)
	if err != nil {
		w.mgr.showErrorModal("Open failed", err.Error())
		return
	}
	w.input.SetText(text, false)
	w.process(text, false)
	w.showStatusMessage(fmt.Sprintf("Opened %s", path))
}

// saveFile writes the output pane's plain text to path, whole-file
// overwrite.
func (w *Window) saveFile(path string) {
	if w.outputPlain == "" {
		w.showStatusMessage("Nothing to save")
		return
	}
	if err := textio.WriteFile(path, w.outputPlain); err != nil {
		w.mgr.showErrorModal("Save failed", err.Error())
		return
	}
	w.showStatusMessage(fmt.Sprintf("Saved to %s", path))
}
