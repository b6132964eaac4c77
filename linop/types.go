// SPDX-License-Identifier: MIT
// Package linop: the Operator contract.
// This file defines the interface every solvable linear map implements.
// Concrete operators live in their own files (matrix_operator.go); solver
// strategies consume the interface only and never reach for concrete types.

package linop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinear/vectree"
)

// Operator is a linear map between two structured vector spaces.
//
// The domain (inputs x) and codomain (outputs b in A·x = b) each carry a
// vectree.Structure describing how structured vectors of that space nest;
// the flattened element counts are the operator's matrix dimensions:
// OutSize rows by InSize columns.
//
// Contract:
//   - All five methods are pure: same receiver, same answer, no mutation.
//   - OutStructure().Size() == OutSize() and InStructure().Size() == InSize()
//     for a well-formed operator (ValidateStructures enforces it at solver
//     front doors rather than trusting implementations).
//   - AsMatrix returns a dense materialization the CALLER owns exclusively:
//     a fresh allocation per call, never an internal alias. Callers may
//     overwrite or factor it in place. Implementations that cannot afford
//     the copy do not satisfy this interface.
//
// Implementations must be safe for concurrent use; immutability after
// construction is the intended way to get there.
type Operator interface {
	// OutSize returns the flattened codomain element count (matrix rows).
	OutSize() int

	// InSize returns the flattened domain element count (matrix columns).
	InSize() int

	// OutStructure returns the codomain's structured-space description.
	OutStructure() vectree.Structure

	// InStructure returns the domain's structured-space description.
	InStructure() vectree.Structure

	// AsMatrix materializes the operator as a caller-owned OutSize×InSize
	// dense matrix. Each call allocates anew.
	AsMatrix() *mat.Dense
}
