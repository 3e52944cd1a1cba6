// Package cmat provides dense complex128 matrices and the handful of
// linear-algebra kernels that multi-antenna signal processing leans on:
// products with optional conjugate transposition, Gram matrices, column
// norms, and a pivoted linear solve.
//
// What:
//
//   - Dense — row-major complex128 matrix with a flat backing slice.
//   - Mul / MulVec — matrix and matrix-vector products via gonum's
//     complex BLAS (cblas128).
//   - Gram / GramOuter — aᴴ·a and a·aᴴ in one call, using blas.ConjTrans.
//   - Solve / SolveVec — square linear systems by Gauss–Jordan elimination
//     with partial pivoting; near-zero pivots surface as ErrSingular.
//   - Norm / Dot / ColNorm — Euclidean norms and conjugated dot products.
//
// Why:
//
//   - gonum's high-level mat package has no complex solver (CDense carries
//     no Solve/Inverse, lapack64 is float64-only), so the solve lives here,
//     on top of cblas128 storage.
//   - Beamforming, equalization and array-processing code all need exactly
//     this kernel set and nothing heavier.
//
// Complexity:
//
//   - Mul: O(r·c·k) time, O(r·c) memory.
//   - Solve: O(n³) time, O(n·(n+rhs)) memory.
//   - Norm/Dot/ColNorm: O(n) time, O(1) memory.
//
// Errors:
//
//   - ErrBadShape: non-positive or ragged construction dimensions.
//   - ErrDimensionMismatch: incompatible operand dimensions.
//   - ErrNonSquare: a square matrix was required.
//   - ErrSingular: pivot below tolerance during elimination.
//
// Indexers (At/Set/Row/Col) treat out-of-range indices as programmer error
// and panic via the underlying slice access; all shape conditions reachable
// from input data are reported through the sentinel errors above.
package cmat
