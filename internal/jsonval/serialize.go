package jsonval

import (
	"fmt"
	"strings"
)

// Mode selects the serialization layout.
type Mode int

const (
	// ModePretty renders one key/element per line with 4-space indent.
	ModePretty Mode = iota
	// ModeCompact renders with no insignificant whitespace.
	ModeCompact
)

const prettyIndent = "    "

// Serialize renders v as JSON text. Object member order is preserved and
// non-ASCII characters are emitted literally. Serialization never fails for
// a well-formed Value.
func Serialize(v Value, mode Mode) string {
	var b strings.Builder
	writeValue(&b, v, mode, 0)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, mode Mode, depth int) {
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.Num)
	case KindString:
		writeString(b, v.Str)
	case KindArray:
		writeArray(b, v, mode, depth)
	case KindObject:
		writeObject(b, v, mode, depth)
	}
}

func writeArray(b *strings.Builder, v Value, mode Mode, depth int) {
	if len(v.Arr) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteByte('[')
	for i, elem := range v.Arr {
		if i > 0 {
			b.WriteByte(',')
		}
		if mode == ModePretty {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		writeValue(b, elem, mode, depth+1)
	}
	if mode == ModePretty {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte(']')
}

func writeObject(b *strings.Builder, v Value, mode Mode, depth int) {
	if len(v.Members) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteByte('{')
	for i, m := range v.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		if mode == ModePretty {
			b.WriteByte('\n')
			writeIndent(b, depth+1)
		}
		writeString(b, m.Key)
		b.WriteByte(':')
		if mode == ModePretty {
			b.WriteByte(' ')
		}
		writeValue(b, m.Value, mode, depth+1)
	}
	if mode == ModePretty {
		b.WriteByte('\n')
		writeIndent(b, depth)
	}
	b.WriteByte('}')
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(prettyIndent)
	}
}

// writeString emits a quoted JSON string. Only the quote, backslash and
// control characters are escaped; everything else, non-ASCII included, is
// written literally.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
