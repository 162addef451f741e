// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
)

// Copy places text on the system clipboard, preferring the native binding
// and falling back to common command-line utilities.
func Copy(text string) error {
	if err := atotto.WriteAll(text); err == nil {
		return nil
	}

	commands := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
		{"pbcopy"}, // macOS
		{"clip"},   // Windows
	}
	for _, cmdArgs := range commands {
		cmd := exec.Command(cmdArgs[0], cmdArgs[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no clipboard available (tried native binding, xclip, xsel, wl-copy, pbcopy, clip)")
}
