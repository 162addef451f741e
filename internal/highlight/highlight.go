// Package highlight derives the ordered overlay ranges applied to the
// output pane from a search session. Layers are emitted in painter's order:
// later spans visually override earlier ones where they overlap.
package highlight

import "github.com/jviz-dev/jviz/internal/search"

// Layer identifies one of the three overlay layers.
type Layer int

const (
	// LayerCurrentLine is a zero-length anchor at the cursor or current
	// match start; the renderer expands it to a full-row background.
	LayerCurrentLine Layer = iota
	// LayerMatch marks every located match with a uniform background.
	LayerMatch
	// LayerCurrentMatch marks the single current match; painted last so it
	// wins over LayerMatch at the same offsets.
	LayerCurrentMatch
)

// Span is one highlight range in byte offsets.
type Span struct {
	Layer  Layer
	Start  int
	Length int
}

// Compose builds the overlay list for one render pass. cursor is the anchor
// offset used for the current-line marker when no match is active; with at
// least one match the anchor moves to the current match start. A nil or
// empty session contributes only the current-line marker.
func Compose(session *search.Session, cursor int) []Span {
	anchor := cursor
	if m, ok := session.CurrentMatch(); ok {
		anchor = m.Start
	}
	spans := []Span{{Layer: LayerCurrentLine, Start: anchor, Length: 0}}

	if !session.HasMatches() {
		return spans
	}
	for _, m := range session.Matches {
		spans = append(spans, Span{Layer: LayerMatch, Start: m.Start, Length: m.Length})
	}
	cur := session.Matches[session.Current]
	spans = append(spans, Span{Layer: LayerCurrentMatch, Start: cur.Start, Length: cur.Length})
	return spans
}
