// SPDX-License-Identifier: MIT
// Package: linop
//
// Purpose:
//   - Provide a single, canonical source of truth for operator validation.
//   - Keep solver front doors minimal by delegating nil/shape/structure
//     checks here.
//   - Return wrapped sentinel errors so call sites match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing beyond the
//     error value on the failure path.
//
// Note:
//   - Composite callers follow a fixed sequence: NotNil → Structures →
//     Square. Each validator states what it assumes (e.g. no nil check).

package linop

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
// Keeps error labeling consistent across all validation failures.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – ensures the operator reference is non-nil.
//
// Inputs: Operator interface value.
// Returns: wrapped ErrNilOperator if op == nil.
// Complexity: O(1).
func ValidateNotNil(op Operator) error {
	if op == nil {
		return validatorErrorf("ValidateNotNil", ErrNilOperator)
	}

	return nil
}

// ValidateSquare – ensures the operator maps a space onto one of equal size.
//
// Implementation: assumes op is not nil (caller must ensure).
// Returns: wrapped ErrNonSquare when InSize() != OutSize().
// Complexity: O(1).
func ValidateSquare(op Operator) error {
	if op.InSize() != op.OutSize() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateStructures – ensures the declared structures cover the declared
// sizes exactly; guards against ill-formed Operator implementations before
// a solver records the structures for packing.
//
// Implementation: assumes op is not nil (caller must ensure).
// Returns: wrapped ErrStructureSize on either disagreement.
// Complexity: O(1) (structure sizes are cached).
func ValidateStructures(op Operator) error {
	if op.OutStructure().Size() != op.OutSize() {
		return validatorErrorf("ValidateStructures: out", ErrStructureSize)
	}
	if op.InStructure().Size() != op.InSize() {
		return validatorErrorf("ValidateStructures: in", ErrStructureSize)
	}

	return nil
}
