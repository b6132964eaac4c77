// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/linsolve"
	"github.com/katalvlaran/lvlinear/vectree"
)

// ExampleSolve solves a small flat system in one call.
func ExampleSolve() {
	a := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	op, err := linop.NewMatrixOperator(a)
	if err != nil {
		fmt.Println("operator:", err)
		return
	}

	sol, err := linsolve.Solve[linsolve.LUState](linsolve.LU{}, op, vectree.Leaf(vectree.Vector(4, 9)), nil)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Println(sol.Status)
	fmt.Println(sol.Value)

	// Output:
	// successful
	// (2)[2 3]
}

// ExampleLU runs the explicit lifecycle over a structured space: factor
// once, then solve a right-hand side that nests like the codomain. The
// solution nests like the domain.
func ExampleLU() {
	space := vectree.ObjectStructure(map[string]vectree.Structure{
		"p": vectree.ScalarStructure(),
		"q": vectree.VectorStructure(2),
	})
	a := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		0, 4, 0,
		0, 0, 8,
	})
	op, err := linop.NewMatrixOperator(a,
		linop.WithInStructure(space), linop.WithOutStructure(space))
	if err != nil {
		fmt.Println("operator:", err)
		return
	}

	lu := linsolve.LU{}
	state, err := lu.Init(op, nil)
	if err != nil {
		fmt.Println("init:", err)
		return
	}

	rhs := vectree.Object(map[string]vectree.Tree{
		"p": vectree.Leaf(vectree.Scalar(2)),
		"q": vectree.Leaf(vectree.Vector(8, 16)),
	})
	x, status, _, err := lu.Compute(state, rhs, nil)
	if err != nil {
		fmt.Println("compute:", err)
		return
	}

	fmt.Println(status)
	fmt.Println(x)

	// Output:
	// successful
	// {p: ()[1], q: (2)[2 2]}
}

// ExampleLU_Transpose derives the transposed solver from existing state;
// the factorization is reused, no numerical work happens.
func ExampleLU_Transpose() {
	a := mat.NewDense(2, 2, []float64{1, 2, 0, 1})
	op, err := linop.NewMatrixOperator(a)
	if err != nil {
		fmt.Println("operator:", err)
		return
	}

	lu := linsolve.LU{}
	state, err := lu.Init(op, nil)
	if err != nil {
		fmt.Println("init:", err)
		return
	}
	tstate, _, err := lu.Transpose(state, nil)
	if err != nil {
		fmt.Println("transpose:", err)
		return
	}

	// Aᵀ = [[1,0],[2,1]]; Aᵀ·x = [1,4] has x = [1,2].
	x, _, _, err := lu.Compute(tstate, vectree.Leaf(vectree.Vector(1, 4)), nil)
	if err != nil {
		fmt.Println("compute:", err)
		return
	}
	fmt.Println(x)

	// Output:
	// (2)[1 2]
}
