// Package lvlinear is your in-memory toolkit for solving structured linear
// systems — interchangeable solver strategies over tree-shaped vectors,
// backed by dense LAPACK-grade kernels.
//
// 🚀 What is lvlinear?
//
//	A small, deterministic library that brings together:
//		• Structured vectors: scalars, tensors and arbitrarily nested trees
//		  that flatten to — and rebuild from — one dense 1-D vector
//		• Linear operators: declared input/output structure plus a dense
//		  materialization, consumed uniformly by every solver
//		• Solver strategies: one shared init → compute → transpose lifecycle;
//		  factor once, solve many right-hand sides, transpose for free
//		• LU: the direct strategy for square, full-rank systems
//
// ✨ Why choose lvlinear?
//
//   - Predictable – factorization happens exactly once per Init
//   - Immutable – solver state is never mutated; solves can run concurrently
//   - Transparent – sentinel errors everywhere, no panics on user input
//   - Grounded – dense kernels delegate to gonum's BLAS/LAPACK, not to
//     hand-rolled loops
//
// Under the hood, everything is organized under three subpackages:
//
//	vectree/  — Shape, Tensor, Tree and Structure: the structured-vector layer
//	linop/    — the Operator contract + a dense MatrixOperator implementation
//	linsolve/ — the Solver contract, structure packing, the LU strategy and
//	            a one-shot Solve facade
//
// Quick sketch of a solve:
//
//	    A · x = b        b: {"a": scalar, "b": 2-vector}
//	    └── Init(A) ──► state ──► Compute(state, b) ──► x (same tree shape)
//
// Transposing a solver reuses the factorization: Transpose derives a new
// state in O(1), and the original keeps working untouched.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
