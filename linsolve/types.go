// SPDX-License-Identifier: MIT
// Package linsolve: contract types shared by every solver strategy.
// This file defines the per-call configuration mapping, the auxiliary-info
// mapping, the Status outcome enum, the generic Solver contract and the
// Solution bundle. Strategy implementations live in their own files
// (lu.go); the packing layer lives in packing.go.

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/linop"
	"github.com/katalvlaran/lvlinear/vectree"
)

// operation tags used when wrapping sentinel errors at call sites.
const (
	opPack        = "PackStructures"
	opRavel       = "RavelVector"
	opUnravel     = "UnravelSolution"
	opLUInit      = "LU.Init"
	opLUCompute   = "LU.Compute"
	opLUTranspose = "LU.Transpose"
	opSolve       = "Solve"
)

// solveErrorf wraps an underlying error with the given operation tag.
// Keeps error labeling consistent across the package; callers still match
// the sentinel via errors.Is.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Options is the per-call strategy configuration: an open mapping whose
// keys each strategy interprets for itself. The same value flows through
// Init, Compute and Transpose uniformly, and Transpose returns the options
// the derived solver should be used with.
//
// The LU strategy recognizes no keys and ignores the value entirely; the
// mapping exists so every strategy behind Solver shares one call shape.
// A nil Options is always acceptable and means "defaults".
type Options map[string]any

// NewOptions returns an empty, non-nil Options mapping.
func NewOptions() Options { return Options{} }

// Aux carries strategy-specific auxiliary information about one solve
// (iteration counts, residual norms and the like). Strategies that have
// nothing to report return a nil Aux; LU always does.
type Aux map[string]any

// Status is the discriminated outcome of one Compute call. It is a closed
// enum: strategies report exactly one of the values below.
//
// Status is meaningful only when Compute's error is nil; on a non-nil error
// the Status return is the zero value and carries no information.
type Status int

const (
	// StatusSuccessful means the strategy completed its computation. For
	// direct strategies built on a silent factorization (LU) this does NOT
	// certify a finite solution; see the package doc.
	StatusSuccessful Status = iota

	// StatusSingular means the strategy detected a singular operator.
	StatusSingular

	// StatusBreakdown means an iterative strategy hit numerical breakdown.
	StatusBreakdown

	// StatusMaxSteps means an iterative strategy hit its step limit.
	StatusMaxSteps
)

// String renders the status for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusSuccessful:
		return "successful"
	case StatusSingular:
		return "singular"
	case StatusBreakdown:
		return "breakdown"
	case StatusMaxSteps:
		return "max-steps"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Successful reports whether s is StatusSuccessful.
func (s Status) Successful() bool { return s == StatusSuccessful }

// Err maps the status to its sentinel: nil for StatusSuccessful, the
// matching Err* otherwise, ErrUnknownStatus for values outside the enum.
// The Solve facade uses it to turn non-successful outcomes into errors.
func (s Status) Err() error {
	switch s {
	case StatusSuccessful:
		return nil
	case StatusSingular:
		return ErrSingular
	case StatusBreakdown:
		return ErrBreakdown
	case StatusMaxSteps:
		return ErrMaxSteps
	default:
		return ErrUnknownStatus
	}
}

// Solver is the uniform strategy contract. S is the strategy's opaque state
// type: whatever Init produces and Compute/Transpose consume. Strategies
// are stateless values; all per-operator data lives in S.
//
// Lifecycle:
//
//	state, err := solver.Init(op, opts)        // expensive part, once
//	x, status, aux, err := solver.Compute(state, b, opts)   // per RHS
//	tstate, topts, err := solver.Transpose(state, opts)     // Aᵀ solver
//
// Contract:
//   - Init performs all operator-level validation and every expensive
//     preparation (factorization); Compute does per-vector work only.
//   - States are immutable after Init. Compute must not write to state, so
//     concurrent Computes against one state need no locks.
//   - Transpose derives the Aᵀ state from S alone, without revisiting the
//     operator, and returns the options for the derived solver. It must
//     leave the original state usable and unchanged.
//   - The policy methods declare whether the strategy tolerates linearly
//     dependent columns/rows of the operator; front ends use them to pick
//     a strategy, so they must be cheap and operator-dependent only.
type Solver[S any] interface {
	// Init validates op and prepares the opaque state.
	Init(op linop.Operator, opts Options) (S, error)

	// Compute solves one right-hand side against prepared state.
	// The returned Status is meaningful only when the error is nil.
	Compute(state S, vector vectree.Tree, opts Options) (vectree.Tree, Status, Aux, error)

	// Transpose derives the transposed-system state plus the options the
	// derived solver should be used with.
	Transpose(state S, opts Options) (S, Options, error)

	// AllowDependentColumns reports whether the strategy accepts operators
	// with linearly dependent columns.
	AllowDependentColumns(op linop.Operator) bool

	// AllowDependentRows reports whether the strategy accepts operators
	// with linearly dependent rows.
	AllowDependentRows(op linop.Operator) bool
}

// Solution bundles the outcome of the one-shot Solve facade.
type Solution struct {
	// Value is the solution tree, nested per the operator's domain.
	Value vectree.Tree

	// Status is the strategy's reported outcome.
	Status Status

	// Aux is the strategy's auxiliary information, nil when none.
	Aux Aux
}
