// SPDX-License-Identifier: MIT
// Package linsolve_test contains unit tests for the structure-packing layer.
package linsolve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/linsolve"
	"github.com/katalvlaran/lvlinear/vectree"
)

func TestPackStructures(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(space), linop.WithInStructure(vectree.VectorStructure(3)))

	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)
	require.False(t, ps.IsZero())
	require.True(t, ps.OutStructure().Equal(space))
	require.True(t, ps.InStructure().Equal(vectree.VectorStructure(3)))
}

func TestPackStructures_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   linop.Operator
		want error
	}{
		{"nil operator", nil, linop.ErrNilOperator},
		{"zero out-structure", &countingOperator{
			outSize: 2, inSize: 2,
			in:     vectree.VectorStructure(2),
			matrix: mat.NewDense(2, 2, nil),
		}, linsolve.ErrNilStructure},
		{"size disagreement", &countingOperator{
			outSize: 2, inSize: 2,
			out:    vectree.VectorStructure(3),
			in:     vectree.VectorStructure(2),
			matrix: mat.NewDense(2, 2, nil),
		}, linop.ErrStructureSize},
		{"zero-size space", &countingOperator{
			outSize: 0, inSize: 0,
			out:    vectree.VectorStructure(0),
			in:     vectree.VectorStructure(0),
			matrix: &mat.Dense{},
		}, linsolve.ErrEmptyStructure},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := linsolve.PackStructures(tc.op)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

func TestTransposePackedStructures(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(space), linop.WithInStructure(vectree.VectorStructure(3)))
	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)

	swapped := linsolve.TransposePackedStructures(ps)
	require.True(t, swapped.OutStructure().Equal(ps.InStructure()))
	require.True(t, swapped.InStructure().Equal(ps.OutStructure()))

	// The original value is untouched, and a second swap restores it.
	require.True(t, ps.OutStructure().Equal(space))
	back := linsolve.TransposePackedStructures(swapped)
	require.True(t, back.OutStructure().Equal(ps.OutStructure()))
	require.True(t, back.InStructure().Equal(ps.InStructure()))
}

func TestRavelVector(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(space), linop.WithInStructure(space))
	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)

	flat, err := linsolve.RavelVector(abTree(1, 2, 3), ps)
	require.NoError(t, err)
	require.Equal(t, 3, flat.Len())
	require.Equal(t, []float64{1, 2, 3}, flat.RawVector().Data)
}

func TestRavelVector_Mismatches(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(space), linop.WithInStructure(space))
	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)

	tests := []struct {
		name string
		v    vectree.Tree
		want error
	}{
		{"zero tree", vectree.Tree{}, linsolve.ErrNilVector},
		{"flat instead of nested", vectree.Leaf(vectree.Vector(1, 2, 3)), linsolve.ErrStructureMismatch},
		{"wrong leaf shape", vectree.Object(map[string]vectree.Tree{
			"a": vectree.Leaf(vectree.Vector(1)), // (1) instead of scalar ()
			"b": vectree.Leaf(vectree.Vector(2, 3)),
		}), linsolve.ErrStructureMismatch},
		{"extra field", vectree.Object(map[string]vectree.Tree{
			"a": vectree.Leaf(vectree.Scalar(1)),
			"b": vectree.Leaf(vectree.Vector(2, 3)),
			"c": vectree.Leaf(vectree.Scalar(4)),
		}), linsolve.ErrStructureMismatch},
		{"same size, different nesting", vectree.List(
			vectree.Leaf(vectree.Scalar(1)),
			vectree.Leaf(vectree.Vector(2, 3)),
		), linsolve.ErrStructureMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := linsolve.RavelVector(tc.v, ps)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}

	// Zero packing is rejected regardless of the vector.
	_, err = linsolve.RavelVector(abTree(1, 2, 3), linsolve.PackedStructures{})
	require.Truef(t, errors.Is(err, linsolve.ErrNilStructure), "got %v", err)
}

func TestUnravelSolution(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(vectree.VectorStructure(3)), linop.WithInStructure(space))
	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)

	tree, err := linsolve.UnravelSolution(mat.NewVecDense(3, []float64{1, 2, 3}), ps)
	require.NoError(t, err)
	require.True(t, tree.Equal(abTree(1, 2, 3)))

	_, err = linsolve.UnravelSolution(nil, ps)
	require.Truef(t, errors.Is(err, linsolve.ErrNilVector), "got %v", err)

	_, err = linsolve.UnravelSolution(mat.NewVecDense(2, nil), ps)
	require.Truef(t, errors.Is(err, linsolve.ErrSizeMismatch), "got %v", err)

	_, err = linsolve.UnravelSolution(mat.NewVecDense(3, nil), linsolve.PackedStructures{})
	require.Truef(t, errors.Is(err, linsolve.ErrNilStructure), "got %v", err)
}

// TestRavelUnravel_StridedVector pins that unraveling tolerates non-unit
// stride vectors (e.g. a column view of a wider matrix).
func TestRavelUnravel_StridedVector(t *testing.T) {
	t.Parallel()

	space := abSpace()
	op := mustOperator(t, mat.NewDense(3, 3, nil),
		linop.WithOutStructure(vectree.VectorStructure(3)), linop.WithInStructure(space))
	ps, err := linsolve.PackStructures(op)
	require.NoError(t, err)

	// Column 1 of a 3×2 matrix is a stride-2 view.
	m := mat.NewDense(3, 2, []float64{0, 1, 0, 2, 0, 3})
	col, ok := m.ColView(1).(*mat.VecDense)
	require.True(t, ok)

	tree, err := linsolve.UnravelSolution(col, ps)
	require.NoError(t, err)
	require.True(t, tree.Equal(abTree(1, 2, 3)))
}
