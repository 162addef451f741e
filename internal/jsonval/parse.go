package jsonval

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ParseError describes the first syntactic violation in the input. Line and
// Column are 1-based; Column counts runes from the start of the line.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d column %d", e.Message, e.Line, e.Column)
}

// Parse decodes text as a single JSON value per the standard grammar.
// Object member order is preserved; a duplicate key keeps its first position
// but takes the last value, matching the usual last-wins decoding rule.
func Parse(text string) (Value, error) {
	p := &parser{src: text}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Value{}, p.errorAt(p.pos, "unexpected data after top-level value")
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorAt(off int, msg string) error {
	if off > len(p.src) {
		off = len(p.src)
	}
	line := 1 + strings.Count(p.src[:off], "\n")
	lineStart := strings.LastIndexByte(p.src[:off], '\n') + 1
	col := 1 + utf8.RuneCountInString(p.src[lineStart:off])
	return &ParseError{Line: line, Column: col, Message: msg}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value() (Value, error) {
	if p.pos >= len(p.src) {
		return Value{}, p.errorAt(p.pos, "expecting value, got end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"':
		s, err := p.stringLit()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	case c == 't':
		return p.literal("true", Bool(true))
	case c == 'f':
		return p.literal("false", Bool(false))
	case c == 'n':
		return p.literal("null", Null())
	default:
		return Value{}, p.errorAt(p.pos, "expecting value")
	}
}

func (p *parser) literal(word string, v Value) (Value, error) {
	if !strings.HasPrefix(p.src[p.pos:], word) {
		return Value{}, p.errorAt(p.pos, "expecting value")
	}
	p.pos += len(word)
	return v, nil
}

func (p *parser) object() (Value, error) {
	p.pos++ // consume '{'
	var members []Member
	index := map[string]int{}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return Object(), nil
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '"' {
			return Value{}, p.errorAt(p.pos, "expecting object key string")
		}
		key, err := p.stringLit()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return Value{}, p.errorAt(p.pos, "expecting ':' after object key")
		}
		p.pos++
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return Value{}, err
		}
		if i, dup := index[key]; dup {
			members[i].Value = val
		} else {
			index[key] = len(members)
			members = append(members, Member{Key: key, Value: val})
		}
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Value{}, p.errorAt(p.pos, "expecting ',' or '}' in object")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return Object(members...), nil
		default:
			return Value{}, p.errorAt(p.pos, "expecting ',' or '}' in object")
		}
	}
}

func (p *parser) array() (Value, error) {
	p.pos++ // consume '['
	var elems []Value
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return Array(), nil
	}
	for {
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Value{}, p.errorAt(p.pos, "expecting ',' or ']' in array")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return Array(elems...), nil
		default:
			return Value{}, p.errorAt(p.pos, "expecting ',' or ']' in array")
		}
	}
}

func (p *parser) stringLit() (string, error) {
	start := p.pos
	p.pos++ // consume opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return "", p.errorAt(start, "unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case c < 0x20:
			return "", p.errorAt(p.pos, "invalid control character in string")
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			if r == utf8.RuneError && size == 1 {
				return "", p.errorAt(p.pos, "invalid UTF-8 in string")
			}
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) escape(b *strings.Builder) error {
	escStart := p.pos
	p.pos++ // consume backslash
	if p.pos >= len(p.src) {
		return p.errorAt(escStart, "unterminated escape sequence")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := p.hexRune(escStart)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			if strings.HasPrefix(p.src[p.pos:], `\u`) {
				save := p.pos
				p.pos += 2
				r2, err := p.hexRune(escStart)
				if err != nil {
					return err
				}
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					b.WriteRune(dec)
					return nil
				}
				p.pos = save
			}
			b.WriteRune(utf8.RuneError)
			return nil
		}
		b.WriteRune(r)
	default:
		return p.errorAt(escStart, "invalid escape sequence")
	}
	return nil
}

func (p *parser) hexRune(escStart int) (rune, error) {
	if p.pos+4 > len(p.src) {
		return 0, p.errorAt(escStart, "invalid \\u escape")
	}
	var r rune
	for _, c := range p.src[p.pos : p.pos+4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= c - '0'
		case c >= 'a' && c <= 'f':
			r |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			r |= c - 'A' + 10
		default:
			return 0, p.errorAt(escStart, "invalid \\u escape")
		}
	}
	p.pos += 4
	return r, nil
}

func (p *parser) number() (Value, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	switch {
	case p.pos < len(p.src) && p.src[p.pos] == '0':
		p.pos++
	case p.pos < len(p.src) && p.src[p.pos] >= '1' && p.src[p.pos] <= '9':
		p.digits()
	default:
		return Value{}, p.errorAt(start, "invalid number literal")
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if !p.digits() {
			return Value{}, p.errorAt(start, "invalid number literal")
		}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if !p.digits() {
			return Value{}, p.errorAt(start, "invalid number literal")
		}
	}
	return Number(p.src[start:p.pos]), nil
}

// digits consumes a run of ASCII digits and reports whether at least one
// digit was present.
func (p *parser) digits() bool {
	n := 0
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
		n++
	}
	return n > 0
}
