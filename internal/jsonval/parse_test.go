package jsonval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"null", `null`, Null()},
		{"true", `true`, Bool(true)},
		{"false", `false`, Bool(false)},
		{"zero", `0`, Number("0")},
		{"negative", `-42`, Number("-42")},
		{"fraction", `3.14`, Number("3.14")},
		{"exponent", `1e-3`, Number("1e-3")},
		{"exponent uppercase", `2E+10`, Number("2E+10")},
		{"string", `"hello"`, String("hello")},
		{"string with escapes", `"a\"b\\c\nd"`, String("a\"b\\c\nd")},
		{"unicode escape", `"é"`, String("é")},
		{"surrogate pair", `"😀"`, String("😀")},
		{"non-ascii literal", `"中文"`, String("中文")},
		{"surrounding whitespace", " \n\ttrue\r\n", Bool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %#v, want %#v", got, tt.want)
		})
	}
}

func TestParseContainers(t *testing.T) {
	got, err := Parse(`{"a":1,"b":[1,2,3],"c":{"d":null},"e":[]}`)
	require.NoError(t, err)

	want := Object(
		Member{"a", Number("1")},
		Member{"b", Array(Number("1"), Number("2"), Number("3"))},
		Member{"c", Object(Member{"d", Null()})},
		Member{"e", Array()},
	)
	assert.True(t, got.Equal(want))
}

func TestParseKeyOrderPreserved(t *testing.T) {
	got, err := Parse(`{"z":1,"a":2,"m":3}`)
	require.NoError(t, err)
	require.Equal(t, KindObject, got.Kind)

	var keys []string
	for _, m := range got.Members {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestParseDuplicateKeyLastWins(t *testing.T) {
	got, err := Parse(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)
	want := Object(Member{"a", Number("3")}, Member{"b", Number("2")})
	assert.True(t, got.Equal(want))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		column  int
	}{
		{"missing value after colon", `{"a":}`, 1, 6},
		{"bare word", `nope`, 1, 1},
		{"trailing garbage", `{} {}`, 1, 4},
		{"unterminated string", `"abc`, 1, 1},
		{"missing colon", `{"a" 1}`, 1, 6},
		{"trailing comma in object", `{"a":1,}`, 1, 8},
		{"trailing comma in array", `[1,]`, 1, 4},
		{"error on second line", "{\n  \"a\": }", 2, 8},
		{"empty input", ``, 1, 1},
		{"lone minus", `-`, 1, 1},
		{"leading zero", `01`, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tt.line, perr.Line, "line")
			assert.Equal(t, tt.column, perr.Column, "column")
			assert.NotEmpty(t, perr.Message)
		})
	}
}

func TestParseErrorColumnCountsRunes(t *testing.T) {
	// Two multi-byte runes before the failure offset; the column counts
	// runes, not bytes.
	_, err := Parse(`{"éé":}`)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 7, perr.Column)
}
