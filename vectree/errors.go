// Package vectree: sentinel error set.
// This file defines ONLY package-level sentinel errors used across vectree.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on user input; panics are reserved for impossible
// internal states.

package vectree

import "errors"

var (
	// ErrNilTensor indicates a nil *Tensor was used where a value is required.
	ErrNilTensor = errors.New("vectree: tensor is nil")

	// ErrNilTree indicates a zero-value Tree was used as a value.
	// Zero trees arise from the Tree{} literal or from constructors fed
	// invalid input (nil tensors, zero children); see Leaf, List, Object.
	ErrNilTree = errors.New("vectree: tree is zero-valued")

	// ErrNilStructure indicates a zero-value Structure was used as a value.
	ErrNilStructure = errors.New("vectree: structure is zero-valued")

	// ErrNegativeDim indicates a Shape carrying a negative dimension.
	// Dimensions of zero are legal and denote empty leaves.
	ErrNegativeDim = errors.New("vectree: negative dimension in shape")

	// ErrSizeMismatch indicates that a data length disagrees with the size
	// declared by a Shape or Structure.
	ErrSizeMismatch = errors.New("vectree: data length does not match declared size")

	// ErrOutOfRange indicates an index (leaf index, list position, tensor
	// coordinate) outside valid bounds.
	ErrOutOfRange = errors.New("vectree: index out of range")

	// ErrKindMismatch indicates a node access that its kind does not support,
	// e.g. Item on an object node or Field on a list node.
	ErrKindMismatch = errors.New("vectree: node kind mismatch")
)
