// Package vectree: domain types shared by tensors, trees and structures.
// This file declares the Shape type and the internal node-kind tag. Tensor,
// Tree and Structure live in dedicated files per the package conventions.

package vectree

import "strings"

// Shape describes the dimensions of one tensor leaf.
//
// An empty Shape denotes a scalar (size 1). Dimensions may be zero — such
// leaves are legal and contribute no elements — but never negative.
type Shape []int

// Size returns the number of elements a tensor of this shape holds:
// the product of all dimensions, 1 for a scalar.
//
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Equal reports whether two shapes have identical rank and dimensions.
//
// Complexity: O(rank).
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the shape. A nil shape clones to nil,
// which still denotes a scalar.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders the shape as "()", "(3)" or "(2,3)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		writeInt(&b, d)
	}
	b.WriteByte(')')

	return b.String()
}

// validate reports ErrNegativeDim when any dimension is negative.
func (s Shape) validate() error {
	for _, d := range s {
		if d < 0 {
			return ErrNegativeDim
		}
	}

	return nil
}

// nodeKind tags the closed set of tree/structure node variants.
type nodeKind uint8

const (
	kindInvalid nodeKind = iota // zero value: no node
	kindLeaf                    // holds one tensor (Tree) or one shape (Structure)
	kindList                    // ordered children
	kindObject                  // string-keyed children, keys kept sorted
)

// writeInt appends the decimal form of v without allocating via fmt.
// Shapes are tiny; a manual itoa keeps String allocation-free beyond the
// builder itself.
func writeInt(b *strings.Builder, v int) {
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	if v >= 10 {
		writeInt(b, v/10)
	}
	b.WriteByte(byte('0' + v%10))
}
