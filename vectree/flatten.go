// Package vectree: flattening and reconstruction.
// Flatten serialises a tree into one []float64 by depth-first leaf order;
// NewFromFlat inverts it given the structure. Round-trip identity:
//
//	NewFromFlat(StructureOf(t), t.Flatten()) ≡ t
//
// for every valid tree t.

package vectree

import "fmt"

// Flatten concatenates all leaf data in depth-first order into a fresh
// slice. The zero Tree and trees of total size 0 flatten to nil.
//
// Complexity: O(size).
func (t Tree) Flatten() []float64 {
	if t.n == nil || t.n.size == 0 {
		return nil
	}
	out := make([]float64, 0, t.n.size)

	return appendFlat(out, t.n)
}

func appendFlat(dst []float64, n *treeNode) []float64 {
	switch n.kind {
	case kindLeaf:
		return append(dst, n.leaf.data...)
	case kindList:
		for _, it := range n.items {
			dst = appendFlat(dst, it)
		}
	case kindObject:
		for _, f := range n.fields {
			dst = appendFlat(dst, f)
		}
	}

	return dst
}

// NewFromFlat rebuilds a tree with structure s from a flat vector, the
// inverse of Flatten. The flat data is copied, never aliased.
//
// Errors:
//   - ErrNilStructure when s is zero-valued;
//   - ErrSizeMismatch when len(flat) != s.Size().
//
// Complexity: O(size).
func NewFromFlat(s Structure, flat []float64) (Tree, error) {
	if s.n == nil {
		return Tree{}, fmt.Errorf("NewFromFlat: %w", ErrNilStructure)
	}
	if len(flat) != s.n.size {
		return Tree{}, fmt.Errorf("NewFromFlat: need %d elements, got %d: %w",
			s.n.size, len(flat), ErrSizeMismatch)
	}

	node, rest := buildFromFlat(s.n, flat)
	if len(rest) != 0 { // sizes are cached, so this cannot trigger
		return Tree{}, fmt.Errorf("NewFromFlat: %d elements left over: %w", len(rest), ErrSizeMismatch)
	}

	return Tree{n: node}, nil
}

func buildFromFlat(sn *structNode, flat []float64) (*treeNode, []float64) {
	node := &treeNode{kind: sn.kind, size: sn.size, leaves: sn.leaves}
	switch sn.kind {
	case kindLeaf:
		k := sn.shape.Size()
		data := make([]float64, k)
		copy(data, flat[:k])
		node.leaf = &Tensor{shape: sn.shape.Clone(), data: data}
		flat = flat[k:]
	case kindList:
		node.items = make([]*treeNode, len(sn.items))
		for i, it := range sn.items {
			node.items[i], flat = buildFromFlat(it, flat)
		}
	case kindObject:
		node.keys = make([]string, len(sn.keys))
		copy(node.keys, sn.keys)
		node.fields = make([]*treeNode, len(sn.fields))
		for i, f := range sn.fields {
			node.fields[i], flat = buildFromFlat(f, flat)
		}
	}

	return node, flat
}
