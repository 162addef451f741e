package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jviz-dev/jviz/internal/search"
)

func TestComposeNoSession(t *testing.T) {
	spans := Compose(nil, 17)
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Layer: LayerCurrentLine, Start: 17, Length: 0}, spans[0])
}

func TestComposeEmptyPattern(t *testing.T) {
	spans := Compose(search.New("some text", ""), 0)
	require.Len(t, spans, 1)
	assert.Equal(t, LayerCurrentLine, spans[0].Layer)
}

func TestComposeNoMatchesKeepsCursorAnchor(t *testing.T) {
	spans := Compose(search.New("some text", "zzz"), 5)
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Layer: LayerCurrentLine, Start: 5, Length: 0}, spans[0])
}

func TestComposeLayerOrder(t *testing.T) {
	s := search.New("ab ab ab", "ab")
	s.Next() // current match is the second one, at offset 3

	spans := Compose(s, 0)
	require.Len(t, spans, 5)

	// Current-line anchor first, at the current match start, zero length.
	assert.Equal(t, Span{Layer: LayerCurrentLine, Start: 3, Length: 0}, spans[0])

	// All-match layer in match order.
	assert.Equal(t, Span{Layer: LayerMatch, Start: 0, Length: 2}, spans[1])
	assert.Equal(t, Span{Layer: LayerMatch, Start: 3, Length: 2}, spans[2])
	assert.Equal(t, Span{Layer: LayerMatch, Start: 6, Length: 2}, spans[3])

	// Current-match layer last so it wins at overlapping offsets.
	assert.Equal(t, Span{Layer: LayerCurrentMatch, Start: 3, Length: 2}, spans[4])
}
