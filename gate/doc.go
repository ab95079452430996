// Package gate builds and composes the unitary matrices that drive a
// state-vector simulation.
//
// The package provides:
//
//   - Named gates: I, X, Y, Z, H, the phase family R(k) with P = R(4)
//     and T = R(8), plus CNOT, SWAP, CCNOT (Toffoli) and CSWAP
//     (Fredkin).
//   - Combinators: Tensor and TensorPow (Kronecker products), ApplyTo
//     (position a gate on wires k … k+m−1 of an n-wire register), matrix
//     products for circuit composition, transposition and adjoints.
//   - Constructors: the wire-permutation gate Permute(σ) with the
//     two-wire convenience Swap(p, q, n), the controlled-gate
//     constructor Control(t, c, n, U), the classical-function oracle
//     Uf(f, m) with its factorized cross-check UfFactored, and the
//     quantum Fourier transform F(n).
//
// Wire numbering follows the module convention: wire 0 is the leftmost,
// most significant tensor factor, so ApplyTo(k, n) computes
// I_{2ᵏ} ⊗ U ⊗ I_{2ⁿ⁻ᵏ⁻ᵐ}.
//
// Every constructor output is unitary when its inputs are; the
// permutation and oracle constructors produce permutation matrices with
// exact 0/1 entries, and so does the controlled constructor whenever its
// payload is one, so the required gate identities hold exactly, not
// merely within tolerance.
package gate
