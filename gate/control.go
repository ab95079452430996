package gate

import "github.com/fthomas/qucosi/linalg"

// Control returns the 2ⁿ×2ⁿ gate that applies the 2ᵐ×2ᵐ unitary u to
// the m wires starting at t exactly when control wire c is |1⟩, and
// acts as the identity otherwise.
//
// Construction:
//  1. Build the canonical controlled-u on m+1 wires — control at wire 0,
//     targets at 1…m — as the block matrix with I_{2ᵐ} top-left and u
//     bottom-right.
//  2. Embed it into n wires via ApplyTo(0, n) when n > m+1.
//  3. Build the permutation σ with σ(0) = c and σ(1+j) = t+j — it pulls
//     the requested control to position 0 and the target block to
//     positions 1…m, remaining wires keeping their relative order — and
//     conjugate: S(σ)ᵀ · canonical · S(σ).
//
// Each factor is unitary, so the result is unitary whenever u is.
//
// Preconditions (ErrWireOutOfRange / ErrControlOverlap otherwise):
// 0 ≤ t, c < n; t+m ≤ n; c outside [t, t+m) — which rules out t = c.
func Control(t, c, n int, u Gate) (Gate, error) {
	m, err := u.wires()
	if err != nil {
		return Gate{}, err
	}
	if t < 0 || c < 0 || t >= n || c >= n || t+m > n {
		return Gate{}, ErrWireOutOfRange
	}
	if c >= t && c < t+m {
		return Gate{}, ErrControlOverlap
	}

	du := 1 << m
	canon, err := linalg.NewMatrix(2*du, 2*du)
	if err != nil {
		return Gate{}, err
	}
	id := mustMatrix(linalg.Identity(du))
	if err := canon.SetBlock(0, 0, id); err != nil {
		return Gate{}, err
	}
	if err := canon.SetBlock(du, du, u.m); err != nil {
		return Gate{}, err
	}

	g := Gate{m: canon}
	if n > m+1 {
		g = mustGate(g.ApplyTo(0, n))
	}

	// σ(0) = c and σ(1+j) = t+j: after S(σ) the canonical layout sees
	// the requested control and target wires; the remaining wires fill
	// the remaining positions in ascending order.
	taken := make([]bool, n)
	taken[c] = true
	sigma := make([]int, n)
	sigma[0] = c
	for j := 0; j < m; j++ {
		sigma[1+j] = t + j
		taken[t+j] = true
	}
	next := m + 1
	for w := 0; w < n; w++ {
		if !taken[w] {
			sigma[next] = w
			next++
		}
	}
	s, err := Permute(sigma)
	if err != nil {
		return Gate{}, err
	}
	out := mustGate(s.Transpose().Mul(g))

	return mustGate(out.Mul(s)), nil
}
