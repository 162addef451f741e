package ui

import (
	"strings"
	"testing"

	"github.com/jviz-dev/jviz/internal/config"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	m := NewManager(config.Default())
	return m.CreateWindow()
}

func TestWindowProcessValidJSON(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"a":1,"b":[1,2,3]}`, false)

	if !w.hasValue {
		t.Fatal("expected a parsed value")
	}
	want := "{\n    \"a\": 1,\n    \"b\": [\n        1,\n        2,\n        3\n    ]\n}"
	if w.outputPlain != want {
		t.Errorf("outputPlain = %q, want %q", w.outputPlain, want)
	}
	if w.tree.GetRoot() == nil {
		t.Error("expected a populated tree")
	}
}

func TestWindowProcessExpandsNestedStrings(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"x":"{\"y\":2}"}`, false)

	if !strings.Contains(w.outputPlain, `"y": 2`) {
		t.Errorf("expected nested string expanded, got %q", w.outputPlain)
	}
}

func TestWindowProcessInvalidJSONSilentlyClears(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"a":1}`, false)
	w.process(`{"a":`, false)

	if w.hasValue {
		t.Error("expected value to be dropped")
	}
	if w.outputPlain != "" {
		t.Errorf("expected cleared output, got %q", w.outputPlain)
	}
	if w.tree.GetRoot() != nil {
		t.Error("expected cleared tree")
	}
}

func TestWindowProcessEmptyInputClears(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"a":1}`, false)
	w.process("   \n  ", false)

	if w.hasValue || w.outputPlain != "" {
		t.Error("expected empty input to clear the result")
	}
}

func TestWindowCompact(t *testing.T) {
	w := newTestWindow(t)
	w.input.SetText("{\n  \"a\": 1,\n  \"b\": [1, 2, 3]\n}", false)
	w.compact()

	if w.outputPlain != `{"a":1,"b":[1,2,3]}` {
		t.Errorf("compact output = %q", w.outputPlain)
	}
}

func TestWindowNodeSelectionShowsFragment(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"outer":{"x":1}}`, false)

	root := w.tree.GetRoot()
	if root == nil || len(root.GetChildren()) != 1 {
		t.Fatal("unexpected tree shape")
	}
	w.showNodeFragment(root.GetChildren()[0])

	want := "{\n    \"x\": 1\n}"
	if w.outputPlain != want {
		t.Errorf("fragment = %q, want %q", w.outputPlain, want)
	}
}

func TestWindowSearchSessionTracksBuffer(t *testing.T) {
	w := newTestWindow(t)
	w.process(`{"name":"one","other":"one"}`, false)
	w.rebuildSearch("one")

	if len(w.session.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(w.session.Matches))
	}

	w.nextMatch()
	if w.session.Current != 1 {
		t.Errorf("expected current match 1, got %d", w.session.Current)
	}
	w.nextMatch() // wraps
	if w.session.Current != 0 {
		t.Errorf("expected wraparound to 0, got %d", w.session.Current)
	}

	// A buffer change rebuilds the session against the new text.
	w.process(`{"name":"one"}`, false)
	if len(w.session.Matches) != 1 {
		t.Errorf("expected session rebuilt with 1 match, got %d", len(w.session.Matches))
	}
}

func TestManagerWindowLifecycle(t *testing.T) {
	m := NewManager(config.Default())
	w1 := m.CreateWindow()
	w2 := m.CreateWindow()
	w3 := m.CreateWindow()

	if w1.number != 1 || w2.number != 2 || w3.number != 3 {
		t.Fatalf("window numbers = %d,%d,%d", w1.number, w2.number, w3.number)
	}

	// Destroying a window never reuses its number.
	m.DestroyWindow(w2)
	w4 := m.CreateWindow()
	if w4.number != 4 {
		t.Errorf("expected counter to keep increasing, got %d", w4.number)
	}
	if len(m.windows) != 3 {
		t.Errorf("expected 3 live windows, got %d", len(m.windows))
	}

	if w1.title() != " 🧩 jviz — JSON Formatter " {
		t.Errorf("first window title = %q", w1.title())
	}
	if !strings.Contains(w4.title(), "4") {
		t.Errorf("window 4 title = %q", w4.title())
	}
}
