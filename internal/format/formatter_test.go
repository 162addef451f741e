package format

import (
	"strings"
	"testing"

	"github.com/jviz-dev/jviz/internal/highlight"
	"github.com/jviz-dev/jviz/internal/search"
)

func TestFormatter_ColorizeJSON(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:  "keys and string values",
			input: `{"key": "value"}`,
			contains: []string{
				`[#1e90ff]"key"[white]`,
				`[orange]"value"[white]`,
			},
		},
		{
			name:  "numbers",
			input: `{"n": 42, "f": -1.5e3}`,
			contains: []string{
				`[#56b6c2]42[white]`,
				`[#56b6c2]-1.5e3[white]`,
			},
		},
		{
			name:  "constants",
			input: `{"a": true, "b": false, "c": null}`,
			contains: []string{
				`[#e5c07b]true[white]`,
				`[#e5c07b]false[white]`,
				`[#e5c07b]null[white]`,
			},
		},
		{
			name:  "array elements",
			input: `["first", 2]`,
			contains: []string{
				`[orange]"first"[white]`,
				`[#56b6c2]2[white]`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatter.ColorizeJSON(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(result, want) {
					t.Errorf("ColorizeJSON(%q) = %q, missing %q", tt.input, result, want)
				}
			}
		})
	}
}

func TestFormatter_ApplyHighlights(t *testing.T) {
	formatter := NewFormatter()
	text := "foo bar\nfoo baz"

	session := search.New(text, "foo")
	session.Next() // current match is the one on the second line
	spans := highlight.Compose(session, 0)

	result := formatter.ApplyHighlights(text, spans)

	// First match gets the all-match style.
	if !strings.Contains(result, tagMatch+"foo"+tagReset) {
		t.Errorf("expected all-match style on first foo, got %q", result)
	}
	// Current match gets the distinct style.
	if !strings.Contains(result, tagCurrentMatch+"foo"+tagReset) {
		t.Errorf("expected current-match style on second foo, got %q", result)
	}
	// The rest of the current match's row carries the line background.
	if !strings.Contains(result, tagCurrentLine+" baz"+tagReset) {
		t.Errorf("expected current-line style on rest of row, got %q", result)
	}
}

func TestFormatter_ApplyHighlightsCurrentLineOnly(t *testing.T) {
	formatter := NewFormatter()
	text := "line one\nline two"

	spans := highlight.Compose(search.New(text, ""), 10) // anchor on second line
	result := formatter.ApplyHighlights(text, spans)

	if !strings.Contains(result, tagCurrentLine+"line two"+tagReset) {
		t.Errorf("expected current-line style on second row, got %q", result)
	}
	if strings.Contains(result, tagMatch) || strings.Contains(result, tagCurrentMatch) {
		t.Errorf("no match layers expected for empty pattern, got %q", result)
	}
}

func TestFormatter_ApplyHighlightsEscapesTags(t *testing.T) {
	formatter := NewFormatter()
	text := `value with [red] pseudo tag`

	result := formatter.ApplyHighlights(text, nil)
	if strings.Contains(result, "[red]") {
		t.Errorf("color-tag-like text must be escaped, got %q", result)
	}
}
