// Package textio reads and writes whole UTF-8 text files for the open and
// save actions. Failures surface as IOError; an open failure never mutates
// the caller's buffer because the text is only returned on success.
package textio

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// IOError wraps a file open/save failure with the operation and path.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadFile reads the whole file and validates it as UTF-8.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: "open", Path: path, Err: fmt.Errorf("not valid UTF-8")}
	}
	return string(data), nil
}

// WriteFile overwrites path with text. Partial-write semantics are the
// filesystem's own; nothing is retried.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
