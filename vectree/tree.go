// Package vectree: the Tree value type.
// A Tree arranges immutable tensors into lists and string-keyed objects of
// arbitrary nesting. Trees are values: copying one is O(1) and shares the
// frozen internal nodes, which are never mutated after construction.

package vectree

import (
	"fmt"
	"sort"
	"strings"
)

// Tree is a structured vector: a leaf tensor, an ordered list of subtrees,
// or a string-keyed object of subtrees.
//
// The zero Tree is not a valid vector. Constructors fed invalid input (nil
// tensors, zero-valued children) propagate the zero Tree instead of
// panicking; every consumer reports ErrNilTree when it meets one, so
// malformed literals surface as ordinary errors at the first use.
type Tree struct {
	n *treeNode
}

// treeNode is the frozen internal representation shared by Tree copies.
type treeNode struct {
	kind   nodeKind
	leaf   *Tensor     // kindLeaf
	items  []*treeNode // kindList
	keys   []string    // kindObject, sorted ascending
	fields []*treeNode // kindObject, aligned with keys
	size   int         // total elements in this subtree
	leaves int         // total leaf count in this subtree
}

// Leaf wraps a tensor into a single-leaf tree. A nil tensor yields the zero
// Tree.
func Leaf(t *Tensor) Tree {
	if t == nil {
		return Tree{}
	}

	return Tree{n: &treeNode{kind: kindLeaf, leaf: t, size: t.Size(), leaves: 1}}
}

// List builds an ordered tree node from the given subtrees. Zero arguments
// produce a valid empty list (size 0). Any zero-valued item taints the
// result: the zero Tree is returned.
func List(items ...Tree) Tree {
	node := &treeNode{kind: kindList, items: make([]*treeNode, len(items))}
	for i, it := range items {
		if it.n == nil {
			return Tree{}
		}
		node.items[i] = it.n
		node.size += it.n.size
		node.leaves += it.n.leaves
	}

	return Tree{n: node}
}

// Object builds a string-keyed tree node. Keys are stored in ascending order
// so that flattening is deterministic regardless of map iteration order.
// A nil or empty map produces a valid empty object (size 0); any zero-valued
// field taints the result.
func Object(fields map[string]Tree) Tree {
	node := &treeNode{
		kind:   kindObject,
		keys:   make([]string, 0, len(fields)),
		fields: make([]*treeNode, 0, len(fields)),
	}
	for k := range fields {
		node.keys = append(node.keys, k)
	}
	sort.Strings(node.keys)

	for _, k := range node.keys {
		f := fields[k]
		if f.n == nil {
			return Tree{}
		}
		node.fields = append(node.fields, f.n)
		node.size += f.n.size
		node.leaves += f.n.leaves
	}

	return Tree{n: node}
}

// IsZero reports whether t is the zero (invalid) Tree.
func (t Tree) IsZero() bool { return t.n == nil }

// IsLeaf reports whether t is a leaf node.
func (t Tree) IsLeaf() bool { return t.n != nil && t.n.kind == kindLeaf }

// IsList reports whether t is a list node.
func (t Tree) IsList() bool { return t.n != nil && t.n.kind == kindList }

// IsObject reports whether t is an object node.
func (t Tree) IsObject() bool { return t.n != nil && t.n.kind == kindObject }

// Tensor returns the leaf tensor and true when t is a leaf, (nil, false)
// otherwise. The returned tensor is immutable and safe to share.
func (t Tree) Tensor() (*Tensor, bool) {
	if !t.IsLeaf() {
		return nil, false
	}

	return t.n.leaf, true
}

// Len returns the number of direct children: list items or object fields.
// Leaves and the zero Tree report 0.
func (t Tree) Len() int {
	switch {
	case t.IsList():
		return len(t.n.items)
	case t.IsObject():
		return len(t.n.fields)
	default:
		return 0
	}
}

// Item returns the i-th subtree of a list node.
//
// Errors:
//   - ErrNilTree      when t is zero-valued.
//   - ErrKindMismatch when t is not a list.
//   - ErrOutOfRange   when i is outside [0, Len()).
func (t Tree) Item(i int) (Tree, error) {
	if t.n == nil {
		return Tree{}, fmt.Errorf("Item: %w", ErrNilTree)
	}
	if t.n.kind != kindList {
		return Tree{}, fmt.Errorf("Item: %w", ErrKindMismatch)
	}
	if i < 0 || i >= len(t.n.items) {
		return Tree{}, fmt.Errorf("Item: index %d out of [0,%d): %w", i, len(t.n.items), ErrOutOfRange)
	}

	return Tree{n: t.n.items[i]}, nil
}

// Keys returns a copy of an object node's field names in ascending order,
// nil for any other kind.
func (t Tree) Keys() []string {
	if !t.IsObject() {
		return nil
	}
	out := make([]string, len(t.n.keys))
	copy(out, t.n.keys)

	return out
}

// Field returns the subtree stored under key and whether it exists.
// Non-object trees report (Tree{}, false).
func (t Tree) Field(key string) (Tree, bool) {
	if !t.IsObject() {
		return Tree{}, false
	}
	// keys are sorted; binary search keeps Field at O(log n).
	i := sort.SearchStrings(t.n.keys, key)
	if i >= len(t.n.keys) || t.n.keys[i] != key {
		return Tree{}, false
	}

	return Tree{n: t.n.fields[i]}, true
}

// Size returns the total number of elements across all leaves. The zero
// Tree reports 0.
func (t Tree) Size() int {
	if t.n == nil {
		return 0
	}

	return t.n.size
}

// NumLeaves returns the total leaf count. The zero Tree reports 0.
func (t Tree) NumLeaves() int {
	if t.n == nil {
		return 0
	}

	return t.n.leaves
}

// Leaves returns the leaf tensors in flattening order: depth first, lists by
// index, objects by ascending key. Tensors are immutable, so the returned
// pointers are safe to share; the slice itself is fresh.
//
// Complexity: O(leaves).
func (t Tree) Leaves() []*Tensor {
	if t.n == nil {
		return nil
	}
	out := make([]*Tensor, 0, t.n.leaves)

	return appendLeaves(out, t.n)
}

// appendLeaves walks n depth-first collecting leaf tensors.
func appendLeaves(dst []*Tensor, n *treeNode) []*Tensor {
	switch n.kind {
	case kindLeaf:
		return append(dst, n.leaf)
	case kindList:
		for _, it := range n.items {
			dst = appendLeaves(dst, it)
		}
	case kindObject:
		for _, f := range n.fields {
			dst = appendLeaves(dst, f)
		}
	}

	return dst
}

// Clone returns a deep copy of the tree: fresh nodes and fresh tensors.
// Because trees are immutable, Clone is only needed when a caller wants a
// value with no shared backing at all (e.g. to hand across an ownership
// boundary); ordinary copies of Tree share safely.
func (t Tree) Clone() Tree {
	if t.n == nil {
		return Tree{}
	}

	return Tree{n: cloneNode(t.n)}
}

func cloneNode(n *treeNode) *treeNode {
	out := &treeNode{kind: n.kind, size: n.size, leaves: n.leaves}
	switch n.kind {
	case kindLeaf:
		out.leaf = n.leaf.Clone()
	case kindList:
		out.items = make([]*treeNode, len(n.items))
		for i, it := range n.items {
			out.items[i] = cloneNode(it)
		}
	case kindObject:
		out.keys = make([]string, len(n.keys))
		copy(out.keys, n.keys)
		out.fields = make([]*treeNode, len(n.fields))
		for i, f := range n.fields {
			out.fields[i] = cloneNode(f)
		}
	}

	return out
}

// Equal reports deep equality: same nesting, same keys, same leaf shapes and
// bitwise-equal leaf data. Two zero Trees are equal.
func (t Tree) Equal(u Tree) bool {
	if t.n == nil || u.n == nil {
		return t.n == u.n
	}

	return nodesEqual(t.n, u.n)
}

func nodesEqual(a, b *treeNode) bool {
	if a.kind != b.kind || a.size != b.size || a.leaves != b.leaves {
		return false
	}
	switch a.kind {
	case kindLeaf:
		return a.leaf.Equal(b.leaf)
	case kindList:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !nodesEqual(a.items[i], b.items[i]) {
				return false
			}
		}
	case kindObject:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i := range a.keys {
			if a.keys[i] != b.keys[i] || !nodesEqual(a.fields[i], b.fields[i]) {
				return false
			}
		}
	}

	return true
}

// String renders the tree compactly: leaves as their tensor form, lists in
// brackets, objects in braces with sorted keys.
func (t Tree) String() string {
	if t.n == nil {
		return "<zero>"
	}
	var b strings.Builder
	writeTreeNode(&b, t.n)

	return b.String()
}

func writeTreeNode(b *strings.Builder, n *treeNode) {
	switch n.kind {
	case kindLeaf:
		b.WriteString(n.leaf.String())
	case kindList:
		b.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTreeNode(b, it)
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
			writeTreeNode(b, n.fields[i])
		}
		b.WriteByte('}')
	}
}
