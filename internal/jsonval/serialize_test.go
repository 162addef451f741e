package jsonval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializePretty(t *testing.T) {
	v, err := Parse(`{"a":1,"b":[1,2,3]}`)
	require.NoError(t, err)

	want := strings.Join([]string{
		`{`,
		`    "a": 1,`,
		`    "b": [`,
		`        1,`,
		`        2,`,
		`        3`,
		`    ]`,
		`}`,
	}, "\n")
	assert.Equal(t, want, Serialize(v, ModePretty))
}

func TestSerializeCompact(t *testing.T) {
	v, err := Parse("{\n  \"a\": 1,\n  \"b\": [1, 2, 3]\n}")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[1,2,3]}`, Serialize(v, ModeCompact))
}

func TestSerializeCompactNoInsignificantWhitespace(t *testing.T) {
	v, err := Parse(`{"a b":"c d","e":[1,"f\tg",null],"h":{"i":true}}`)
	require.NoError(t, err)

	out := Serialize(v, ModeCompact)
	assert.NotContains(t, out, "\n")
	assert.NotContains(t, out, "\t") // tab in the string stays escaped
	assert.NotContains(t, out, ", ")
	assert.NotContains(t, out, " ,")
	assert.NotContains(t, out, ": ")
	assert.NotContains(t, out, " :")
}

func TestSerializeEmptyContainers(t *testing.T) {
	assert.Equal(t, "{}", Serialize(Object(), ModePretty))
	assert.Equal(t, "[]", Serialize(Array(), ModePretty))
	assert.Equal(t, `{"a":{},"b":[]}`, Serialize(Object(
		Member{"a", Object()},
		Member{"b", Array()},
	), ModeCompact))
}

func TestSerializeNonASCIILiteral(t *testing.T) {
	v := Object(Member{"名前", String("値です")})
	out := Serialize(v, ModeCompact)
	assert.Equal(t, `{"名前":"値です"}`, out)
}

func TestSerializeStringEscapes(t *testing.T) {
	out := Serialize(String("a\"b\\c\nd\te"), ModeCompact)
	assert.Equal(t, `"a\"b\\c\nd\te"`, out)
}

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`-1.5e-7`,
		`"中文 and ascii"`,
		`{"z":1,"a":[{"k":"v"},[],{},null,false],"m":"x"}`,
		`[0,1.25,"two",{"three":3}]`,
	}
	for _, in := range inputs {
		v, err := Parse(in)
		require.NoError(t, err, in)

		back, err := Parse(Serialize(v, ModePretty))
		require.NoError(t, err, in)
		assert.True(t, back.Equal(v), "pretty round-trip of %s", in)

		back, err = Parse(Serialize(v, ModeCompact))
		require.NoError(t, err, in)
		assert.True(t, back.Equal(v), "compact round-trip of %s", in)
	}
}
