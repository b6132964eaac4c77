// Package vectree: the Structure type.
// A Structure is the data-free skeleton of a Tree: identical nesting and
// keys, leaf shapes instead of leaf tensors. Operators declare their input
// and output spaces as Structures; the solver layer records them to flatten
// conforming trees and to rebuild solutions.

package vectree

import (
	"fmt"
	"sort"
	"strings"
)

// Structure describes the shape of a Tree without its data.
//
// Like Tree it is an immutable value sharing frozen internal nodes; copying
// is O(1) and never exposes mutable state. The zero Structure is invalid
// and the same taint convention as Tree applies to the builders below.
type Structure struct {
	n *structNode
}

type structNode struct {
	kind   nodeKind
	shape  Shape         // kindLeaf
	items  []*structNode // kindList
	keys   []string      // kindObject, sorted ascending
	fields []*structNode // kindObject, aligned with keys
	size   int
	leaves int
}

// LeafStructure describes a single tensor leaf of the given shape. Shapes
// with negative dimensions taint the result to the zero Structure.
func LeafStructure(shape Shape) Structure {
	if shape.validate() != nil {
		return Structure{}
	}

	return Structure{n: &structNode{kind: kindLeaf, shape: shape.Clone(), size: shape.Size(), leaves: 1}}
}

// ScalarStructure describes a single rank-0 leaf (one element).
func ScalarStructure() Structure { return LeafStructure(nil) }

// VectorStructure describes a single rank-1 leaf of n elements. Negative n
// taints the result.
func VectorStructure(n int) Structure { return LeafStructure(Shape{n}) }

// ListStructure arranges subtree structures into an ordered node, matching
// the List tree constructor.
func ListStructure(items ...Structure) Structure {
	node := &structNode{kind: kindList, items: make([]*structNode, len(items))}
	for i, it := range items {
		if it.n == nil {
			return Structure{}
		}
		node.items[i] = it.n
		node.size += it.n.size
		node.leaves += it.n.leaves
	}

	return Structure{n: node}
}

// ObjectStructure arranges subtree structures into a string-keyed node with
// ascending key order, matching the Object tree constructor.
func ObjectStructure(fields map[string]Structure) Structure {
	node := &structNode{
		kind:   kindObject,
		keys:   make([]string, 0, len(fields)),
		fields: make([]*structNode, 0, len(fields)),
	}
	for k := range fields {
		node.keys = append(node.keys, k)
	}
	sort.Strings(node.keys)

	for _, k := range node.keys {
		f := fields[k]
		if f.n == nil {
			return Structure{}
		}
		node.fields = append(node.fields, f.n)
		node.size += f.n.size
		node.leaves += f.n.leaves
	}

	return Structure{n: node}
}

// StructureOf derives the structure of a tree: same nesting, leaf shapes
// only.
//
// Errors: ErrNilTree when t is zero-valued.
//
// Complexity: O(nodes).
func StructureOf(t Tree) (Structure, error) {
	if t.n == nil {
		return Structure{}, fmt.Errorf("StructureOf: %w", ErrNilTree)
	}

	return Structure{n: structOf(t.n)}, nil
}

func structOf(n *treeNode) *structNode {
	out := &structNode{kind: n.kind, size: n.size, leaves: n.leaves}
	switch n.kind {
	case kindLeaf:
		out.shape = n.leaf.Shape()
	case kindList:
		out.items = make([]*structNode, len(n.items))
		for i, it := range n.items {
			out.items[i] = structOf(it)
		}
	case kindObject:
		out.keys = make([]string, len(n.keys))
		copy(out.keys, n.keys)
		out.fields = make([]*structNode, len(n.fields))
		for i, f := range n.fields {
			out.fields[i] = structOf(f)
		}
	}

	return out
}

// IsZero reports whether s is the zero (invalid) Structure.
func (s Structure) IsZero() bool { return s.n == nil }

// Size returns the total element count across all leaves; 0 for the zero
// Structure.
//
// Complexity: O(1) — sizes are cached at construction.
func (s Structure) Size() int {
	if s.n == nil {
		return 0
	}

	return s.n.size
}

// NumLeaves returns the total leaf count; 0 for the zero Structure.
func (s Structure) NumLeaves() int {
	if s.n == nil {
		return 0
	}

	return s.n.leaves
}

// LeafShapes returns fresh copies of all leaf shapes in flattening order.
func (s Structure) LeafShapes() []Shape {
	if s.n == nil {
		return nil
	}
	out := make([]Shape, 0, s.n.leaves)

	return appendShapes(out, s.n)
}

func appendShapes(dst []Shape, n *structNode) []Shape {
	switch n.kind {
	case kindLeaf:
		return append(dst, n.shape.Clone())
	case kindList:
		for _, it := range n.items {
			dst = appendShapes(dst, it)
		}
	case kindObject:
		for _, f := range n.fields {
			dst = appendShapes(dst, f)
		}
	}

	return dst
}

// Equal reports whether two structures describe exactly the same nesting,
// keys and leaf shapes. Two zero Structures are equal.
func (s Structure) Equal(o Structure) bool {
	if s.n == nil || o.n == nil {
		return s.n == o.n
	}

	return structNodesEqual(s.n, o.n)
}

func structNodesEqual(a, b *structNode) bool {
	if a.kind != b.kind || a.size != b.size || a.leaves != b.leaves {
		return false
	}
	switch a.kind {
	case kindLeaf:
		return a.shape.Equal(b.shape)
	case kindList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !structNodesEqual(a.items[i], b.items[i]) {
				return false
			}
		}
	case kindObject:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i := range a.keys {
			if a.keys[i] != b.keys[i] || !structNodesEqual(a.fields[i], b.fields[i]) {
				return false
			}
		}
	}

	return true
}

// String renders the structure with leaf shapes, e.g. `{a: (), b: (2)}`.
func (s Structure) String() string {
	if s.n == nil {
		return "<zero>"
	}
	var b strings.Builder
	writeStructNode(&b, s.n)

	return b.String()
}

func writeStructNode(b *strings.Builder, n *structNode) {
	switch n.kind {
	case kindLeaf:
		b.WriteString(n.shape.String())
	case kindList:
		b.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeStructNode(b, it)
		}
		b.WriteByte(']')
	case kindObject:
		b.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			writeStructNode(b, n.fields[i])
		}
		b.WriteByte('}')
	}
}
