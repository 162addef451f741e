// Package logging wires logrus for a TUI process: stdout belongs to the
// terminal UI, so logs are discarded unless a file sink is configured.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var root = newRoot()

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Setup points the root logger at the given file and level. An empty file
// keeps logging disabled; an unknown level falls back to info.
func Setup(file, level string) error {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		root.SetLevel(lvl)
	}
	if file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	root.SetOutput(f)
	return nil
}

// NewLogger returns a component-scoped entry.
func NewLogger(component string) *logrus.Entry {
	return root.WithField("component", component)
}
