package jsonval

// Expand returns a copy of v in which every string leaf inside an object or
// array that parses as JSON has been replaced by the parsed value,
// recursively: a string containing JSON whose own strings are themselves
// JSON keeps expanding. Strings that fail to parse are kept as-is, and a
// bare top-level string is never touched. Expand is a pure transform and is
// idempotent; termination follows because every replacement decodes from a
// strictly shorter source string.
func Expand(v Value) Value {
	switch v.Kind {
	case KindArray:
		elems := make([]Value, len(v.Arr))
		for i, e := range v.Arr {
			elems[i] = expandLeaf(e)
		}
		return Array(elems...)
	case KindObject:
		members := make([]Member, len(v.Members))
		for i, m := range v.Members {
			members[i] = Member{Key: m.Key, Value: expandLeaf(m.Value)}
		}
		return Object(members...)
	default:
		return v
	}
}

// expandLeaf handles a container element: strings are re-parsed and, on
// success, the replacement is expanded again so nested encodings unwrap all
// the way down.
func expandLeaf(v Value) Value {
	if v.Kind == KindString {
		parsed, err := Parse(v.Str)
		if err != nil {
			return v
		}
		return expandLeaf(parsed)
	}
	return Expand(v)
}
