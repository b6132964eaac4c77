// SPDX-License-Identifier: MIT
// Package linsolve_test: shared fixtures for the solver tests.
package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/linsolve"
	"github.com/katalvlaran/lvlinear/vectree"
)

// mustOperator wraps NewMatrixOperator for fixtures that cannot fail.
func mustOperator(t *testing.T, a *mat.Dense, opts ...linop.MatrixOption) *linop.MatrixOperator {
	t.Helper()
	op, err := linop.NewMatrixOperator(a, opts...)
	require.NoError(t, err)

	return op
}

// abSpace is the structured 3-element space {a: scalar, b: 2-vector} used
// by the structured end-to-end tests.
func abSpace() vectree.Structure {
	return vectree.ObjectStructure(map[string]vectree.Structure{
		"a": vectree.ScalarStructure(),
		"b": vectree.VectorStructure(2),
	})
}

// abTree builds a vector in abSpace.
func abTree(a float64, b1, b2 float64) vectree.Tree {
	return vectree.Object(map[string]vectree.Tree{
		"a": vectree.Leaf(vectree.Scalar(a)),
		"b": vectree.Leaf(vectree.Vector(b1, b2)),
	})
}

// randomDominant builds an n×n strictly diagonally dominant matrix, hence
// nonsingular and well conditioned, with reproducible entries.
func randomDominant(n int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()
			if i == j {
				v += float64(n) // dominance margin
			}
			a.Set(i, j, v)
		}
	}

	return a
}

// randomVector builds a reproducible flat right-hand side of length n.
func randomVector(n int, seed int64) vectree.Tree {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return vectree.Leaf(vectree.Vector(data...))
}

// countingOperator wraps a well-formed fake and counts AsMatrix calls, so
// tests can assert that rejected operators are never materialized.
type countingOperator struct {
	outSize, inSize int
	out, in         vectree.Structure
	matrix          *mat.Dense
	asMatrixCalls   int
}

func (c *countingOperator) OutSize() int                    { return c.outSize }
func (c *countingOperator) InSize() int                     { return c.inSize }
func (c *countingOperator) OutStructure() vectree.Structure { return c.out }
func (c *countingOperator) InStructure() vectree.Structure  { return c.in }

func (c *countingOperator) AsMatrix() *mat.Dense {
	c.asMatrixCalls++

	return mat.DenseCopyOf(c.matrix)
}

// newCountingOperator builds a counting fake with flat structures derived
// from the declared sizes.
func newCountingOperator(out, in int, m *mat.Dense) *countingOperator {
	return &countingOperator{
		outSize: out,
		inSize:  in,
		out:     vectree.VectorStructure(out),
		in:      vectree.VectorStructure(in),
		matrix:  m,
	}
}

// applyOperator multiplies the operator's matrix with a raveled tree and
// returns the flat product, for residual checks.
func applyOperator(t *testing.T, op linop.Operator, x vectree.Tree) []float64 {
	t.Helper()
	var prod mat.VecDense
	prod.MulVec(op.AsMatrix(), mat.NewVecDense(x.Size(), x.Flatten()))

	out := make([]float64, prod.Len())
	for i := range out {
		out[i] = prod.AtVec(i)
	}

	return out
}

// stubStrategy is a minimal Solver implementation whose outcomes are fixed
// up front; the facade tests use it to exercise status mapping without
// numerics.
type stubStrategy struct {
	status linsolve.Status
	aux    linsolve.Aux
}

type stubState struct{ packed linsolve.PackedStructures }

func (s stubStrategy) Init(op linop.Operator, _ linsolve.Options) (stubState, error) {
	packed, err := linsolve.PackStructures(op)
	if err != nil {
		return stubState{}, err
	}

	return stubState{packed: packed}, nil
}

func (s stubStrategy) Compute(state stubState, vector vectree.Tree, _ linsolve.Options) (vectree.Tree, linsolve.Status, linsolve.Aux, error) {
	// Echo the right-hand side back as the "solution".
	flat, err := linsolve.RavelVector(vector, state.packed)
	if err != nil {
		return vectree.Tree{}, 0, nil, err
	}
	tree, err := linsolve.UnravelSolution(flat, state.packed)
	if err != nil {
		return vectree.Tree{}, 0, nil, err
	}

	return tree, s.status, s.aux, nil
}

func (s stubStrategy) Transpose(state stubState, _ linsolve.Options) (stubState, linsolve.Options, error) {
	return stubState{packed: linsolve.TransposePackedStructures(state.packed)}, linsolve.NewOptions(), nil
}

func (stubStrategy) AllowDependentColumns(linop.Operator) bool { return true }
func (stubStrategy) AllowDependentRows(linop.Operator) bool    { return true }
