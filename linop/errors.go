// SPDX-License-Identifier: MIT
// Package linop: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linop
// package. All constructors and validators return these sentinels and tests
// check them via errors.Is. No operation panics on user input.

package linop

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linop: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNilOperator indicates a nil Operator was passed where a value is
	// required (validators, solver front doors).
	ErrNilOperator = errors.New("linop: operator is nil")

	// ErrNilMatrix indicates a nil *mat.Dense was passed to a constructor.
	ErrNilMatrix = errors.New("linop: matrix is nil")

	// ErrEmptyMatrix indicates a matrix with a zero dimension; degenerate
	// 0×n / n×0 operators have no solvable dense form downstream.
	ErrEmptyMatrix = errors.New("linop: matrix has a zero dimension")

	// ErrNonSquare signals that a square operator was required but
	// InSize() != OutSize().
	ErrNonSquare = errors.New("linop: operator is not square")

	// ErrStructureSize indicates that a declared structure's total element
	// count disagrees with the corresponding operator dimension.
	ErrStructureSize = errors.New("linop: structure size does not match operator dimension")
)
