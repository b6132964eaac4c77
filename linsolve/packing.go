// SPDX-License-Identifier: MIT
// Package linsolve: the structure-packing layer.
// Solver states must remember how right-hand sides and solutions nest so
// that the numeric core can work on flat vectors. PackedStructures records
// the operator's two spaces at Init time; RavelVector and UnravelSolution
// convert between trees and flat vectors against that record; transposition
// is a pure role swap. The layer is exported because every direct strategy
// sharing the Solver contract packs the same way.

package linsolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/vectree"
)

// PackedStructures is the immutable pair of space descriptions a solver
// state carries: the codomain ("out", where right-hand sides live) and the
// domain ("in", where solutions live).
//
// It is a plain value: copying is O(1) and the underlying structures are
// immutable. The zero PackedStructures is invalid and rejected by the
// ravel/unravel operations (ErrNilStructure).
type PackedStructures struct {
	out vectree.Structure // codomain: right-hand sides
	in  vectree.Structure // domain: solutions
}

// PackStructures records the two spaces of an operator.
// Implementation:
//   - Stage 1: reject nil operators (linop.ErrNilOperator).
//   - Stage 2: reject zero-valued structures (ErrNilStructure) and declared
//     sizes that disagree with the structures (linop.ErrStructureSize).
//   - Stage 3: reject zero-size spaces (ErrEmptyStructure); a 0-element
//     system has no dense form downstream.
//
// Complexity: O(1); structure sizes are cached.
func PackStructures(op linop.Operator) (PackedStructures, error) {
	// Stage 1: operator present.
	if err := linop.ValidateNotNil(op); err != nil {
		return PackedStructures{}, solveErrorf(opPack, err)
	}

	// Stage 2: spaces well-formed and consistent with declared sizes.
	out, in := op.OutStructure(), op.InStructure()
	if out.IsZero() || in.IsZero() {
		return PackedStructures{}, solveErrorf(opPack, ErrNilStructure)
	}
	if err := linop.ValidateStructures(op); err != nil {
		return PackedStructures{}, solveErrorf(opPack, err)
	}

	// Stage 3: spaces non-degenerate.
	if out.Size() == 0 || in.Size() == 0 {
		return PackedStructures{}, solveErrorf(opPack, ErrEmptyStructure)
	}

	return PackedStructures{out: out, in: in}, nil
}

// OutStructure returns the recorded codomain (right-hand sides).
func (ps PackedStructures) OutStructure() vectree.Structure { return ps.out }

// InStructure returns the recorded domain (solutions).
func (ps PackedStructures) InStructure() vectree.Structure { return ps.in }

// IsZero reports whether ps is the zero (invalid) value.
func (ps PackedStructures) IsZero() bool { return ps.out.IsZero() || ps.in.IsZero() }

// TransposePackedStructures returns the packing for the transposed
// operator: the two roles swap. Pure; ps itself is untouched. Swapping
// twice restores the original value.
func TransposePackedStructures(ps PackedStructures) PackedStructures {
	return PackedStructures{out: ps.in, in: ps.out}
}

// RavelVector flattens a right-hand side after verifying it lives in the
// packed codomain: nesting, keys and leaf shapes must match exactly, not
// just the total element count.
//
// Inputs:
//   - v:  the structured right-hand side.
//   - ps: the packing recorded at Init.
//
// Returns a freshly allocated flat vector; v is never aliased.
//
// Errors:
//   - ErrNilVector when v is zero-valued;
//   - ErrNilStructure when ps is zero-valued;
//   - ErrStructureMismatch when v's structure differs from the codomain.
//
// Complexity: O(size).
func RavelVector(v vectree.Tree, ps PackedStructures) (*mat.VecDense, error) {
	// Stage 1: arguments present.
	if v.IsZero() {
		return nil, solveErrorf(opRavel, ErrNilVector)
	}
	if ps.IsZero() {
		return nil, solveErrorf(opRavel, ErrNilStructure)
	}

	// Stage 2: exact structural membership in the codomain.
	s, err := vectree.StructureOf(v)
	if err != nil {
		return nil, solveErrorf(opRavel, err)
	}
	if !s.Equal(ps.out) {
		return nil, fmt.Errorf("%s: vector structure %s, want %s: %w",
			opRavel, s, ps.out, ErrStructureMismatch)
	}

	// Stage 3: flatten. Flatten returns a fresh slice, safe to hand to
	// VecDense without copying again.
	return mat.NewVecDense(ps.out.Size(), v.Flatten()), nil
}

// UnravelSolution rebuilds a structured solution from a flat vector per the
// packed domain.
//
// Errors:
//   - ErrNilVector when flat is nil;
//   - ErrNilStructure when ps is zero-valued;
//   - ErrSizeMismatch when flat.Len() != domain size.
//
// Complexity: O(size).
func UnravelSolution(flat *mat.VecDense, ps PackedStructures) (vectree.Tree, error) {
	// Stage 1: arguments present.
	if flat == nil {
		return vectree.Tree{}, solveErrorf(opUnravel, ErrNilVector)
	}
	if ps.IsZero() {
		return vectree.Tree{}, solveErrorf(opUnravel, ErrNilStructure)
	}

	// Stage 2: exact length.
	n := ps.in.Size()
	if flat.Len() != n {
		return vectree.Tree{}, fmt.Errorf("%s: flat length %d, domain size %d: %w",
			opUnravel, flat.Len(), n, ErrSizeMismatch)
	}

	// Stage 3: copy out (AtVec tolerates any stride) and re-nest.
	data := make([]float64, n)
	for i := range data {
		data[i] = flat.AtVec(i)
	}
	tree, err := vectree.NewFromFlat(ps.in, data)
	if err != nil {
		return vectree.Tree{}, solveErrorf(opUnravel, err)
	}

	return tree, nil
}
