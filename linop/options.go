// SPDX-License-Identifier: MIT
// Package linop: functional configuration for operator constructors.
// This file defines:
//   - MatrixOption / MatrixOptions (functional options with internal state),
//   - WithX constructors,
//   - gatherMatrixOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, defaults derived from the
//     matrix itself (flat spaces), never from the environment.
//   - Safe by construction: invalid combinations surface as sentinel errors
//     from the constructor, not as panics.

package linop

import "github.com/katalvlaran/lvlinear/vectree"

// MatrixOption mutates internal options. Safe to apply repeatedly
// (last-writer-wins).
type MatrixOption func(*MatrixOptions)

// MatrixOptions stores the effective configuration after applying
// MatrixOption setters. Fields are unexported to prevent external mutation;
// NewMatrixOperator accepts `...MatrixOption` and resolves them via
// gatherMatrixOptions.
type MatrixOptions struct {
	// in/out override the structured description of the domain/codomain.
	// The zero Structure means "not set": the constructor derives the
	// default flat space from the matrix dimensions.
	in  vectree.Structure
	out vectree.Structure
}

// WithInStructure declares the operator's domain as a structured space
// instead of the default flat vector of InSize elements.
//
// Inputs:
//   - s: structure whose Size() must equal the matrix column count
//     (checked by NewMatrixOperator, ErrStructureSize on disagreement).
//
// Returns:
//   - MatrixOption: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1) (structures are shared immutable values).
func WithInStructure(s vectree.Structure) MatrixOption {
	return func(o *MatrixOptions) { o.in = s }
}

// WithOutStructure declares the operator's codomain as a structured space
// instead of the default flat vector of OutSize elements. Size must equal
// the matrix row count (checked by NewMatrixOperator).
func WithOutStructure(s vectree.Structure) MatrixOption {
	return func(o *MatrixOptions) { o.out = s }
}

// gatherMatrixOptions applies user setters on top of the zero defaults.
// Implementation:
//   - Stage 1: start from the zero MatrixOptions (both structures unset).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Default derivation (flat spaces from matrix dimensions) stays in
// NewMatrixOperator because it needs the matrix.
func gatherMatrixOptions(opts ...MatrixOption) MatrixOptions {
	var o MatrixOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
