// Package linalg is the dense complex linear-algebra layer underneath
// the qubit and gate packages.
//
// The package provides:
//
//   - Vector: a dynamic-length complex amplitude vector with inner
//     products, norms, normalization, approximate equality and the
//     canonical tensor (Kronecker) product.
//   - Matrix: a dense complex matrix over gonum's mat.CDense with
//     products, block assignment, (conjugate) transposition, tensor
//     products and a unitarity check.
//   - Scalar helpers: the numeric policy (Eps, DefaultTolerance) and the
//     bit-level utilities Log2 and BitDot shared by the layers above.
//
// Matrix×matrix and matrix×vector products delegate to gonum's
// cblas128.Gemm on the mat.CDense storage; the remaining element-level
// operations are thin loops over the same storage. Values are immutable
// by convention: mutating operations return a new value, with
// Vector.Randomize and the Matrix assembly methods Set and SetBlock as
// the documented in-place exceptions.
//
// Dense storage is O(d²) per matrix; with d = 2ⁿ this package is meant
// for small wire counts, which is exactly the regime where exhaustive
// testing of gate identities is feasible.
package linalg
