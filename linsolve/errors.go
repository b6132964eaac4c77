// SPDX-License-Identifier: MIT
// Package linsolve: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// linsolve package. All operations return these sentinels (or wrap the
// linop ones) and tests check them via errors.Is. No operation panics on
// user input; panics are reserved for impossible internal states.

package linsolve

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linsolve: ..." for consistency and to
// allow easy grepping across logs. Operator-level defects (nil operator,
// non-square, structure/size disagreement) reuse the linop sentinels and
// are wrapped, not duplicated here.

var (
	// ErrNilSolver indicates a nil Solver was passed to the Solve facade.
	ErrNilSolver = errors.New("linsolve: solver is nil")

	// ErrNilVector indicates a zero-valued tree (or nil flat vector) where a
	// right-hand side or solution vector is required.
	ErrNilVector = errors.New("linsolve: vector is nil or zero-valued")

	// ErrNilStructure indicates a zero-valued vectree.Structure reached the
	// packing layer, either from an ill-formed operator or from a zero
	// PackedStructures value.
	ErrNilStructure = errors.New("linsolve: structure is zero-valued")

	// ErrEmptyStructure rejects zero-size spaces at packing time; a system
	// with no unknowns or no equations has no dense representation here.
	ErrEmptyStructure = errors.New("linsolve: structure has zero total size")

	// ErrStructureMismatch indicates a right-hand side whose structure
	// (nesting, keys or leaf shapes) is not exactly the operator's declared
	// codomain.
	ErrStructureMismatch = errors.New("linsolve: vector structure does not match packed structure")

	// ErrSizeMismatch indicates a flat vector whose length disagrees with
	// the packed structure it should fill.
	ErrSizeMismatch = errors.New("linsolve: flat length does not match packed structure size")

	// ErrMatrixShape indicates an operator whose materialized matrix
	// disagrees with its declared sizes.
	ErrMatrixShape = errors.New("linsolve: materialized matrix shape does not match operator sizes")

	// ErrNotInitialized indicates a zero-valued solver state: the state did
	// not come from Init (or Transpose of an initialized state).
	ErrNotInitialized = errors.New("linsolve: state not initialized")

	// ErrSingular is Status.Err's mapping for StatusSingular: the operator
	// was detected to be singular. The LU strategy never reports it; see the
	// package doc on silent singularity.
	ErrSingular = errors.New("linsolve: operator is singular")

	// ErrBreakdown is Status.Err's mapping for StatusBreakdown: an iterative
	// strategy hit a numerical breakdown.
	ErrBreakdown = errors.New("linsolve: numerical breakdown")

	// ErrMaxSteps is Status.Err's mapping for StatusMaxSteps: an iterative
	// strategy ran out of steps before converging.
	ErrMaxSteps = errors.New("linsolve: maximum steps reached without convergence")

	// ErrUnknownStatus guards Status.Err against values outside the closed
	// enum (fabricated or corrupted Status).
	ErrUnknownStatus = errors.New("linsolve: unknown status value")
)
