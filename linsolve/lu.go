// SPDX-License-Identifier: MIT
// Package linsolve: the LU solver strategy.
// Square systems only. Init runs one partial-pivoting factorization
// (LAPACK dgetrf via gonum); Compute runs permuted triangular solves
// (dgetrs) against the shared factors; Transpose flips the dgetrs transpose
// flag and swaps the packed spaces, reusing the factorization as is.
//
// Singularity is NOT detected: dgetrf's singularity flag is deliberately
// ignored, matching the silent semantics of the underlying factorization.
// A singular operator factors fine and solves to non-finite values.

package linsolve

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/vectree"
)

// compile-time contract check
var _ Solver[LUState] = LU{}

// luFactors is the shared read-only factorization artifact: the combined
// unit-lower/upper factors in LAPACK layout plus the zero-indexed row
// pivots. Produced once by Init, then only ever read (dgetrs reads the
// factors and writes the right-hand side), so any number of states and
// goroutines may share one value.
type luFactors struct {
	lu   blas64.General
	ipiv []int
}

// LUState is the opaque state of the LU strategy: the factorization
// artifact, the packed spaces, and which of A / Aᵀ this state solves.
//
// States are immutable. Transpose derives a new value sharing the same
// factors; the zero LUState did not come from Init and every use of it
// reports ErrNotInitialized.
type LUState struct {
	fac        *luFactors
	packed     PackedStructures
	transposed bool
}

// LU solves square systems by dense LU factorization with partial pivoting.
//
// The strategy is a stateless value: use LU{} directly. All per-operator
// data lives in the LUState returned by Init.
//
// LU requires a square, non-singular operator but verifies only squareness;
// see the package doc on silent singularity.
type LU struct{}

// Init validates the operator and factors it once.
// Implementation:
//   - Stage 1: reject nil and non-square operators. Nothing is
//     materialized on the rejection paths.
//   - Stage 2: record the operator's spaces (PackStructures).
//   - Stage 3: materialize the dense matrix. AsMatrix hands the caller an
//     exclusive copy, so the factorization may overwrite it in place.
//   - Stage 4: dgetrf. The returned singularity flag is ignored on purpose.
//
// Inputs:
//   - op:   a square operator.
//   - opts: ignored; LU recognizes no options.
//
// Errors:
//   - linop.ErrNilOperator, linop.ErrNonSquare, linop.ErrStructureSize
//     (wrapped) from validation;
//   - ErrNilStructure / ErrEmptyStructure from packing;
//   - linop.ErrNilMatrix / ErrMatrixShape when AsMatrix misbehaves.
//
// Complexity: O(n³) time, O(n²) space; exactly one factorization per Init.
func (LU) Init(op linop.Operator, _ Options) (LUState, error) {
	// Stage 1: operator validity. Squareness is checked before anything is
	// materialized so a rejected operator costs nothing.
	if err := linop.ValidateNotNil(op); err != nil {
		return LUState{}, solveErrorf(opLUInit, err)
	}
	if err := linop.ValidateSquare(op); err != nil {
		return LUState{}, solveErrorf(opLUInit, err)
	}

	// Stage 2: record both spaces.
	packed, err := PackStructures(op)
	if err != nil {
		return LUState{}, solveErrorf(opLUInit, err)
	}

	// Stage 3: materialize; the copy is ours to overwrite.
	a := op.AsMatrix()
	if a == nil {
		return LUState{}, solveErrorf(opLUInit, linop.ErrNilMatrix)
	}
	rows, cols := a.Dims()
	if rows != op.OutSize() || cols != op.InSize() {
		return LUState{}, solveErrorf(opLUInit, ErrMatrixShape)
	}

	// Stage 4: factor in place, P·A = L·U.
	fac := &luFactors{lu: a.RawMatrix(), ipiv: make([]int, rows)}
	lapack64.Getrf(fac.lu, fac.ipiv) // singularity flag dropped, see package doc

	return LUState{fac: fac, packed: packed, transposed: false}, nil
}

// Compute solves one right-hand side against prepared state.
// Implementation:
//   - Stage 1: reject the zero state.
//   - Stage 2: ravel the right-hand side per the recorded codomain.
//   - Stage 3: dgetrs on the shared factors; the transpose flag selects
//     A·x = b or Aᵀ·x = b, so one factorization serves both.
//   - Stage 4: unravel the flat solution per the recorded domain.
//
// The state is never written: calls sharing a state may run concurrently.
// The Status result is always StatusSuccessful and Aux is always nil; a
// singular operator shows up as non-finite solution values, not as an
// error (see the package doc).
//
// Complexity: O(n²) per right-hand side.
func (LU) Compute(state LUState, vector vectree.Tree, _ Options) (vectree.Tree, Status, Aux, error) {
	// Stage 1: state must come from Init.
	if state.fac == nil {
		return vectree.Tree{}, 0, nil, solveErrorf(opLUCompute, ErrNotInitialized)
	}

	// Stage 2: flatten the right-hand side.
	flat, err := RavelVector(vector, state.packed)
	if err != nil {
		return vectree.Tree{}, 0, nil, solveErrorf(opLUCompute, err)
	}

	// Stage 3: permuted triangular solves, in place on the flat copy.
	trans := blas.NoTrans
	if state.transposed {
		trans = blas.Trans
	}
	rhs := blas64.General{Rows: flat.Len(), Cols: 1, Stride: 1, Data: flat.RawVector().Data}
	lapack64.Getrs(trans, state.fac.lu, rhs, state.fac.ipiv)

	// Stage 4: re-nest the solution.
	solution, err := UnravelSolution(flat, state.packed)
	if err != nil {
		return vectree.Tree{}, 0, nil, solveErrorf(opLUCompute, err)
	}

	return solution, StatusSuccessful, nil, nil
}

// Transpose derives the Aᵀ solver from existing state: same factors, packed
// spaces swapped, transpose flag flipped. The original state is untouched
// and remains fully usable; transposing twice restores its behavior.
//
// Returns fresh empty Options for the derived solver (LU recognizes none).
//
// Complexity: O(1); no numerical work at all.
func (LU) Transpose(state LUState, _ Options) (LUState, Options, error) {
	if state.fac == nil {
		return LUState{}, nil, solveErrorf(opLUTranspose, ErrNotInitialized)
	}

	transposed := LUState{
		fac:        state.fac, // shared read-only artifact
		packed:     TransposePackedStructures(state.packed),
		transposed: !state.transposed,
	}

	return transposed, NewOptions(), nil
}

// AllowDependentColumns reports false: LU requires linearly independent
// columns for a meaningful solution. The answer does not depend on the
// operator.
func (LU) AllowDependentColumns(linop.Operator) bool { return false }

// AllowDependentRows reports false: LU requires linearly independent rows
// for a meaningful solution.
func (LU) AllowDependentRows(linop.Operator) bool { return false }
