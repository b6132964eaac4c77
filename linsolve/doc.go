// SPDX-License-Identifier: MIT

// Package linsolve solves square linear systems A·x = b over structured
// vectors through pluggable solver strategies.
//
// The linsolve package provides:
//
//   - Solver[S]: the uniform three-phase strategy contract. Init factors or
//     otherwise prepares an operator once into an opaque immutable state S;
//     Compute turns one right-hand side into one solution; Transpose derives
//     a solver for Aᵀ from existing state without touching the operator
//     again.
//   - LU: the dense LU-factorization strategy (partial pivoting, delegated
//     to LAPACK via gonum). One O(n³) factorization per Init; every Compute
//     and every Transpose reuses it. Transpose is O(1).
//   - PackedStructures with PackStructures / RavelVector / UnravelSolution /
//     TransposePackedStructures: the structure-packing layer that lets
//     right-hand sides and solutions keep arbitrary vectree nesting while
//     the numeric core sees flat vectors.
//   - Solve: the one-shot facade running the full lifecycle for a single
//     system.
//
// States are immutable: Compute never writes to a state, so any number of
// goroutines may solve against the same state concurrently, and Transpose
// neither blocks nor disturbs solves in flight.
//
// Singular operators are NOT detected. LU keeps the factorization's
// silent-failure semantics: Init and Compute succeed on a singular matrix
// and the solution simply carries non-finite values (±Inf, NaN). Callers
// who need a verdict must check the result (or the operator's condition
// number) themselves. The Status vocabulary exists for the strategy
// contract; the LU strategy only ever reports StatusSuccessful.
//
// See linop for the operator contract and vectree for structured vectors.
package linsolve
