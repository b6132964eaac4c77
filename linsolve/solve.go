// SPDX-License-Identifier: MIT
// Package linsolve: the one-shot facade.
// Solve runs the full strategy lifecycle for a single system. Callers with
// many right-hand sides against one operator should Init once and Compute
// per vector instead; the facade pays one Init per call.

package linsolve

import (
	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/vectree"
)

// Solve solves A·x = rhs in one call: Init, then a single Compute.
//
// A non-successful Status is returned both ways: inside the Solution (with
// whatever Aux the strategy attached) and as the matching sentinel error
// via Status.Err(), so `errors.Is(err, ErrSingular)` works while the
// diagnostic payload stays available.
//
// Inputs:
//   - solver: the strategy; LU{} for dense square systems.
//   - op:     the operator describing A.
//   - rhs:    the right-hand side, nested per op's codomain.
//   - opts:   per-call options; nil means defaults.
//
// Errors:
//   - ErrNilSolver, plus everything the strategy's Init and Compute return.
//
// Complexity: the strategy's Init plus one Compute (LU: O(n³) + O(n²)).
func Solve[S any](solver Solver[S], op linop.Operator, rhs vectree.Tree, opts Options) (Solution, error) {
	if solver == nil {
		return Solution{}, solveErrorf(opSolve, ErrNilSolver)
	}

	state, err := solver.Init(op, opts)
	if err != nil {
		return Solution{}, solveErrorf(opSolve, err)
	}

	value, status, aux, err := solver.Compute(state, rhs, opts)
	if err != nil {
		return Solution{}, solveErrorf(opSolve, err)
	}

	solution := Solution{Value: value, Status: status, Aux: aux}
	if serr := status.Err(); serr != nil {
		return solution, solveErrorf(opSolve, serr)
	}

	return solution, nil
}
