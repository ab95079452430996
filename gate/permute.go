package gate

import "github.com/fthomas/qucosi/linalg"

// Permute returns the 2ⁿ×2ⁿ wire-permutation gate S(σ) for a
// permutation σ of {0, …, n−1}. S(σ) acts on basis states as
//
//	S(σ)·|b₀ b₁ … b_{n−1}⟩ = |b_{σ(0)} b_{σ(1)} … b_{σ(n−1)}⟩
//
// so output wire i carries what input wire σ(i) carried. With wire 0
// the most significant bit, entry (r, c) is one exactly when bit i of r
// equals bit σ(i) of c for every wire i.
//
// The constructor walks every column, computes its unique row and sets a
// single one, yielding a permutation matrix: unitary with
// S(σ)⁻¹ = S(σ)ᵀ = S(σ⁻¹).
//
// Returns ErrBadPermutation unless σ is a permutation of 0…n−1.
//
// Complexity: O(2ⁿ·n) set operations on an O(4ⁿ) allocation.
func Permute(sigma []int) (Gate, error) {
	n := len(sigma)
	if n == 0 {
		return Gate{}, ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, s := range sigma {
		if s < 0 || s >= n || seen[s] {
			return Gate{}, ErrBadPermutation
		}
		seen[s] = true
	}

	d := 1 << n
	m, err := linalg.NewMatrix(d, d)
	if err != nil {
		return Gate{}, err
	}
	for c := 0; c < d; c++ {
		r := 0
		for i := 0; i < n; i++ {
			bit := (c >> (n - 1 - sigma[i])) & 1
			r |= bit << (n - 1 - i)
		}
		m.Set(r, c, 1)
	}

	return Gate{m: m}, nil
}

// Swap returns the transposition of wires p and q in an n-wire
// register: Permute with the identity permutation except σ(p) = q,
// σ(q) = p. Swap(p, p, n) is the identity and Swap(0, 1, 2) equals
// SWAP. Returns ErrWireOutOfRange unless 0 ≤ p, q < n.
func Swap(p, q, n int) (Gate, error) {
	if n < 1 || p < 0 || p >= n || q < 0 || q >= n {
		return Gate{}, ErrWireOutOfRange
	}
	sigma := make([]int, n)
	for i := range sigma {
		sigma[i] = i
	}
	sigma[p], sigma[q] = sigma[q], sigma[p]

	return Permute(sigma)
}
