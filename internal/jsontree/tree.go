// Package jsontree projects a parsed JSON value into the display tree shown
// in the tree pane, and reconstructs a JSON fragment from a selected
// (sub)tree. Reconstruction is a label-based heuristic, not a
// type-preserving inverse of projection: array-vs-object shape is inferred
// from label text, so an object whose key literally starts with "[" is
// misclassified as an array. That behavior is intentional and kept.
package jsontree

import (
	"fmt"
	"strings"

	"github.com/jviz-dev/jviz/internal/jsonval"
)

// NodeKind classifies a display node. A node never changes kind.
type NodeKind int

const (
	KindObject NodeKind = iota
	KindArray
	KindScalar
)

// Node is one display-tree node, one per JSON value encountered during
// projection. Children keep object insertion order or array index order.
type Node struct {
	Kind  NodeKind
	Label string // display text; empty for an unlabeled root

	// Container payload: the originating value, kept so childless
	// containers reconstruct without guessing.
	Value jsonval.Value

	// Scalar payload. Key is set only for object members; array elements
	// keep their "[i]" text in the label alone.
	Key    string
	HasKey bool
	Scalar jsonval.Value

	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Project maps an (already expanded) value to its display tree. The root is
// unlabeled; object children are labeled by key, array children by "[i]",
// scalar leaves by "key: value".
func Project(v jsonval.Value) *Node {
	return project(v, "", false)
}

func project(v jsonval.Value, label string, isMember bool) *Node {
	switch v.Kind {
	case jsonval.KindObject:
		n := &Node{Kind: KindObject, Label: label, Value: v}
		for _, m := range v.Members {
			n.Children = append(n.Children, project(m.Value, m.Key, true))
		}
		return n
	case jsonval.KindArray:
		n := &Node{Kind: KindArray, Label: label, Value: v}
		for i, e := range v.Arr {
			n.Children = append(n.Children, project(e, fmt.Sprintf("[%d]", i), false))
		}
		return n
	default:
		n := &Node{Kind: KindScalar, Scalar: v}
		if isMember {
			n.Key = label
			n.HasKey = true
		}
		if label != "" {
			n.Label = label + ": " + scalarText(v)
		} else {
			n.Label = scalarText(v)
		}
		return n
	}
}

// scalarText renders a scalar the way the tree pane shows it: strings
// unquoted, everything else as its JSON literal.
func scalarText(v jsonval.Value) string {
	if v.Kind == jsonval.KindString {
		return v.Str
	}
	return jsonval.Serialize(v, jsonval.ModeCompact)
}

// Reconstruct regenerates the JSON fragment rooted at n.
//
// Leaves with an object key come back wrapped as {key: value}; the object
// branch below unwraps that again so keys do not nest twice. Childless
// containers return their stored originating value. Non-leaves are arrays
// iff every child label begins with "[", otherwise objects with keys derived
// from the text before the first ":" of each child label.
func Reconstruct(n *Node) jsonval.Value {
	if n.IsLeaf() {
		if n.Kind != KindScalar {
			return n.Value
		}
		if n.HasKey {
			return jsonval.Object(jsonval.Member{Key: n.Key, Value: n.Scalar})
		}
		return n.Scalar
	}

	isArray := true
	for _, c := range n.Children {
		if !strings.HasPrefix(c.Label, "[") {
			isArray = false
			break
		}
	}

	if isArray {
		elems := make([]jsonval.Value, len(n.Children))
		for i, c := range n.Children {
			elems[i] = Reconstruct(c)
		}
		return jsonval.Array(elems...)
	}

	members := make([]jsonval.Member, 0, len(n.Children))
	for _, c := range n.Children {
		key := c.Label
		if i := strings.Index(key, ":"); i >= 0 {
			key = key[:i]
		}
		val := Reconstruct(c)
		// Undo the single-entry wrapping a keyed leaf produced above.
		if val.Kind == jsonval.KindObject && len(val.Members) == 1 && val.Members[0].Key == key {
			val = val.Members[0].Value
		}
		members = append(members, jsonval.Member{Key: key, Value: val})
	}
	return jsonval.Object(members...)
}
