// Package format renders output-pane text: JSON syntax coloring via tview
// dynamic color tags, and flattening of search highlight layers onto plain
// text using a painter's model.
package format

import (
	"regexp"
	"strings"

	"github.com/rivo/tview"

	"github.com/jviz-dev/jviz/internal/highlight"
)

// Formatter colors serialized JSON and applies highlight overlays.
type Formatter struct{}

// NewFormatter creates a new formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// tokenPattern matches one JSON token at a time: a quoted string (with its
// trailing colon when it is an object key), a number literal, a constant, or
// a bracket. Single-pass replacement keeps inserted color tags out of reach
// of later matches.
var tokenPattern = regexp.MustCompile(
	`"(?:[^"\\]|\\.)*"(?:\s*:)?|-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?|\btrue\b|\bfalse\b|\bnull\b|[{}\[\]]`)

// ColorizeJSON adds tview color tags to serialized JSON text: keys blue,
// strings orange, numbers cyan, true/false/null yellow, brackets blue. The
// input is expected to be the serializer's own output.
func (f *Formatter) ColorizeJSON(text string) string {
	return tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		switch {
		case strings.HasPrefix(tok, `"`):
			if strings.HasSuffix(tok, ":") {
				i := strings.LastIndexByte(tok, '"')
				return "[#1e90ff]" + tview.Escape(tok[:i+1]) + "[white]" + tok[i+1:]
			}
			return "[orange]" + tview.Escape(tok) + "[white]"
		case tok == "true" || tok == "false" || tok == "null":
			return "[#e5c07b]" + tok + "[white]"
		case tok == "{" || tok == "}" || tok == "[" || tok == "]":
			return "[blue]" + tok + "[white]"
		default:
			return "[#56b6c2]" + tok + "[white]"
		}
	})
}

// Tag strings for the three highlight layers, reset between segments.
const (
	tagCurrentLine  = `[:#3a3a3a]`
	tagMatch        = `[black:yellow]`
	tagCurrentMatch = `[white:#4b5cc4:b]`
	tagReset        = `[-:-:-]`
)

// Layer codes for the per-byte paint buffer.
const (
	paintNone = iota
	paintLine
	paintMatch
	paintCurrent
)

// ApplyHighlights flattens the composed spans onto plain text and returns
// tview-tagged markup. Spans are painted in slice order so later layers
// override earlier ones where they overlap; the zero-length current-line
// anchor is expanded to its full row first.
func (f *Formatter) ApplyHighlights(text string, spans []highlight.Span) string {
	if len(spans) == 0 {
		return tview.Escape(text)
	}

	paint := make([]byte, len(text))
	for _, sp := range spans {
		start, end := sp.Start, sp.Start+sp.Length
		var code byte
		switch sp.Layer {
		case highlight.LayerCurrentLine:
			start, end = lineBounds(text, sp.Start)
			code = paintLine
		case highlight.LayerMatch:
			code = paintMatch
		case highlight.LayerCurrentMatch:
			code = paintCurrent
		}
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
		for i := start; i < end; i++ {
			paint[i] = code
		}
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		code := paint[i]
		j := i + 1
		for j < len(text) && paint[j] == code {
			j++
		}
		segment := tview.Escape(text[i:j])
		switch code {
		case paintLine:
			b.WriteString(tagCurrentLine + segment + tagReset)
		case paintMatch:
			b.WriteString(tagMatch + segment + tagReset)
		case paintCurrent:
			b.WriteString(tagCurrentMatch + segment + tagReset)
		default:
			b.WriteString(segment)
		}
		i = j
	}
	return b.String()
}

// lineBounds returns the [start, end) byte range of the line containing
// offset, excluding the trailing newline.
func lineBounds(text string, offset int) (int, int) {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += offset
	}
	return start, end
}
