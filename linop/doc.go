// Package linop defines the abstract linear operator consumed by the solver
// strategies in linsolve.
//
// The linop package provides:
//
//   - Operator: the minimal contract a linear map must satisfy to be
//     solvable: flattened domain/codomain sizes, the structured description
//     of both spaces (vectree.Structure), and a dense materialization.
//   - MatrixOperator: the concrete dense-matrix operator. It deep-copies its
//     matrix on construction and hands out a fresh copy per AsMatrix call,
//     so downstream factorizations may work in place without aliasing.
//   - Validators shared by solver front doors (nil, squareness, structure
//     consistency).
//
// Operators are immutable once constructed: every accessor either returns a
// copy or an immutable value. That is what lets solver states share them
// across goroutines without locks.
//
// See linsolve for the strategies that consume this contract.
package linop
