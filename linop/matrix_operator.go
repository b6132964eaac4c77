// SPDX-License-Identifier: MIT
// Package linop: the dense-matrix operator.
// MatrixOperator is the workhorse concrete Operator: an explicit OutSize×
// InSize dense matrix plus the structured description of both spaces.

package linop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/vectree"
)

// compile-time contract check
var _ Operator = (*MatrixOperator)(nil)

// MatrixOperator wraps a dense matrix as an Operator.
//
// The matrix is deep-copied on construction and never exposed: AsMatrix
// returns a fresh copy per call. Structures default to flat vectors —
// (cols) for the domain, (rows) for the codomain — and may be overridden
// with WithInStructure / WithOutStructure for structured spaces.
type MatrixOperator struct {
	a   *mat.Dense // private copy; only ever read after construction
	in  vectree.Structure
	out vectree.Structure
}

// NewMatrixOperator builds an operator from a dense matrix.
// Implementation:
//   - Stage 1: reject nil and zero-dimension matrices.
//   - Stage 2: resolve options; unset structures default to flat vectors
//     matching the matrix dimensions.
//   - Stage 3: check structure sizes against the dimensions.
//   - Stage 4: deep-copy the matrix and freeze the value.
//
// Inputs:
//   - a: the OutSize×InSize matrix; copied, never aliased.
//   - opts: optional WithInStructure / WithOutStructure.
//
// Errors:
//   - ErrNilMatrix when a is nil;
//   - ErrEmptyMatrix when a has a zero dimension;
//   - ErrStructureSize when a declared structure's size disagrees with the
//     corresponding dimension.
//
// Complexity: O(rows·cols) for the defensive copy.
func NewMatrixOperator(a *mat.Dense, opts ...MatrixOption) (*MatrixOperator, error) {
	// Stage 1: matrix validity.
	if a == nil {
		return nil, fmt.Errorf("NewMatrixOperator: %w", ErrNilMatrix)
	}
	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("NewMatrixOperator: %dx%d: %w", rows, cols, ErrEmptyMatrix)
	}

	// Stage 2: resolve options and derive flat defaults.
	o := gatherMatrixOptions(opts...)
	if o.in.IsZero() {
		o.in = vectree.VectorStructure(cols)
	}
	if o.out.IsZero() {
		o.out = vectree.VectorStructure(rows)
	}

	// Stage 3: declared spaces must cover the matrix exactly.
	if got := o.in.Size(); got != cols {
		return nil, fmt.Errorf("NewMatrixOperator: in-structure holds %d elements, matrix has %d columns: %w",
			got, cols, ErrStructureSize)
	}
	if got := o.out.Size(); got != rows {
		return nil, fmt.Errorf("NewMatrixOperator: out-structure holds %d elements, matrix has %d rows: %w",
			got, rows, ErrStructureSize)
	}

	// Stage 4: freeze.
	return &MatrixOperator{a: mat.DenseCopyOf(a), in: o.in, out: o.out}, nil
}

// OutSize returns the matrix row count.
func (m *MatrixOperator) OutSize() int {
	r, _ := m.a.Dims()

	return r
}

// InSize returns the matrix column count.
func (m *MatrixOperator) InSize() int {
	_, c := m.a.Dims()

	return c
}

// OutStructure returns the codomain description (immutable, safe to share).
func (m *MatrixOperator) OutStructure() vectree.Structure { return m.out }

// InStructure returns the domain description (immutable, safe to share).
func (m *MatrixOperator) InStructure() vectree.Structure { return m.in }

// AsMatrix returns a fresh copy of the wrapped matrix. The caller owns the
// result exclusively and may factor it in place.
//
// Complexity: O(rows·cols) per call.
func (m *MatrixOperator) AsMatrix() *mat.Dense { return mat.DenseCopyOf(m.a) }
