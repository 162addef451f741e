// Package jsonval implements the ordered JSON value model used throughout
// jviz: parsing with positional errors, order-preserving serialization, and
// the nested-JSON-string expansion pass.
package jsonval

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Member is a single object entry. Insertion order is significant and is
// preserved through parse, expand and serialize.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON datum. Exactly one variant field is meaningful,
// selected by Kind. Values are immutable once constructed; transformations
// return new values.
type Value struct {
	Kind Kind

	Bool bool
	// Num holds the untouched source literal (e.g. "1e-3"), so that
	// serialization reproduces the input byte for byte.
	Num     string
	Str     string
	Arr     []Value
	Members []Member
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number wraps a numeric literal. The literal is not validated; callers
// outside the parser should pass canonical JSON number text.
func Number(lit string) Value { return Value{Kind: KindNumber, Num: lit} }

// String wraps a string.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Array wraps an element sequence.
func Array(elems ...Value) Value { return Value{Kind: KindArray, Arr: elems} }

// Object wraps an ordered member list.
func Object(members ...Member) Value { return Value{Kind: KindObject, Members: members} }

// Equal reports structural equality, order-sensitive for object members.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == w.Bool
	case KindNumber:
		return v.Num == w.Num
	case KindString:
		return v.Str == w.Str
	case KindArray:
		if len(v.Arr) != len(w.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(w.Arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Members) != len(w.Members) {
			return false
		}
		for i := range v.Members {
			if v.Members[i].Key != w.Members[i].Key {
				return false
			}
			if !v.Members[i].Value.Equal(w.Members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
