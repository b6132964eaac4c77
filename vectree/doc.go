// Package vectree implements structured vectors: numeric values nested
// inside an arbitrary tree of containers, as opposed to one flat array.
//
// A structured vector (Tree) is built from three node kinds:
//
//   - leaf   — an immutable Tensor (row-major float64 data plus a Shape)
//   - list   — an ordered sequence of child trees
//   - object — a string-keyed collection of child trees
//
// Every Tree has a Structure: the same nesting with leaf shapes only, no
// data. Structures are what linear operators declare for their input and
// output spaces, and what the solver layer records to move between the
// structured world and dense linear algebra.
//
// Flattening and rebuilding:
//
//	flat := t.Flatten()              // leaves concatenated, DFS order
//	u, err := NewFromFlat(s, flat)   // exact inverse for s == StructureOf(t)
//
// The flattening order is total and deterministic: lists by index, objects
// by lexicographically sorted keys, depth first. Two trees with equal
// structures therefore always align element-for-element.
//
// Immutability: all exported values are frozen at construction. Constructors
// copy incoming slices and maps, accessors hand out copies, and no mutating
// method exists. Sharing a Tree, Tensor, or Structure across goroutines
// requires no locking.
//
// Errors (sentinel):
//
//	ErrNilTensor    — nil *Tensor where a value is required
//	ErrNilTree      — zero-value Tree used as a value
//	ErrNilStructure — zero-value Structure used as a value
//	ErrNegativeDim  — Shape contains a negative dimension
//	ErrSizeMismatch — data length disagrees with the declared shape/structure
//	ErrOutOfRange   — index outside valid bounds
//	ErrKindMismatch — node kind does not support the requested access
package vectree
