package qubit

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/fthomas/qucosi/linalg"
)

// Measure performs a full measurement in the computational basis,
// collapsing the state and returning the observed basis index.
//
// Algorithm:
//  1. Compute pᵢ = |αᵢ|².
//  2. If some pᵢ is one within linalg.Eps the state is already collapsed
//     (up to a global phase); it is left unchanged and i is returned.
//  3. Otherwise draw u uniformly from [0, 1), pick the smallest j with
//     Σ_{i≤j} pᵢ ≥ u and replace the state with (α_j/|α_j|)·|j⟩ₙ — the
//     basis state carrying the unit phase of the selected amplitude.
//
// A state whose total probability deviates from one beyond
// linalg.DefaultTolerance is reported through the package logger and
// measured best-effort; renormalization is the caller's responsibility.
//
// Drawing uses rng, or the locked process generator when rng is nil.
// Measure is idempotent on collapsed states.
func (q *Qubit) Measure(rng *rand.Rand) int {
	probs := q.Probabilities()
	warnIfDenormalized(probs)

	for i, p := range probs {
		if linalg.IsOne(p) {
			return i
		}
	}

	u := uniform(rng)
	cum := 0.0
	for j, p := range probs {
		cum += p
		if cum >= u {
			q.collapseTo(j)

			return j
		}
	}

	// Total probability fell short of u (denormalized input): collapse to
	// the last basis index carrying any weight.
	for j := len(probs) - 1; j >= 0; j-- {
		if probs[j] > 0 {
			q.collapseTo(j)

			return j
		}
	}

	return 0
}

// MeasurePartial measures the leading p of n wires, 1 ≤ p < n,
// collapsing them and returning the observed p-wire basis index j₀.
//
// With K = 2ᵖ and M = 2ⁿ⁻ᵖ the marginal distribution is
// P_j = Σ_{r<M} |α_{j·M+r}|²; after sampling j₀ ~ P the state becomes
// |j₀⟩_p ⊗ ψ with ψ[r] = α_{j₀·M+r}/√P_{j₀}, so the trailing wires keep
// their conditional amplitudes exactly.
//
// Returns ErrWireOutOfRange for p outside (0, n) and ErrNotPowerOfTwo
// should the amplitude vector not describe a register.
func (q *Qubit) MeasurePartial(p int, rng *rand.Rand) (int, error) {
	if err := validDim(len(q.v)); err != nil {
		return 0, err
	}
	n := q.Wires()
	if p <= 0 || p >= n {
		return 0, ErrWireOutOfRange
	}

	k := 1 << p
	m := 1 << (n - p)
	marginal := make([]float64, k)
	for j := 0; j < k; j++ {
		for r := 0; r < m; r++ {
			c := q.v[j*m+r]
			marginal[j] += real(c)*real(c) + imag(c)*imag(c)
		}
	}
	warnIfDenormalized(marginal)

	// Already collapsed on the leading wires: leave the state alone.
	for j, pj := range marginal {
		if linalg.IsOne(pj) {
			return j, nil
		}
	}

	j0 := -1
	u := uniform(rng)
	cum := 0.0
	for j, pj := range marginal {
		cum += pj
		if cum >= u {
			j0 = j

			break
		}
	}
	if j0 < 0 {
		// Total probability fell short of u (denormalized input): take
		// the last block carrying any weight.
		for j := len(marginal) - 1; j >= 0; j-- {
			if marginal[j] > 0 {
				j0 = j

				break
			}
		}
		if j0 < 0 {
			j0 = 0
		}
	}

	w := make(linalg.Vector, len(q.v))
	scale := complex(1/math.Sqrt(marginal[j0]), 0)
	for r := 0; r < m; r++ {
		w[j0*m+r] = q.v[j0*m+r] * scale
	}
	q.v = w

	return j0, nil
}

// collapseTo replaces the state with |j⟩ₙ times the unit phase of the
// current amplitude at j.
func (q *Qubit) collapseTo(j int) {
	phase := complex(1, 0)
	if a := cmplx.Abs(q.v[j]); !linalg.IsZero(a) {
		phase = q.v[j] / complex(a, 0)
	}
	w := make(linalg.Vector, len(q.v))
	w[j] = phase
	q.v = w
}

// warnIfDenormalized reports a total probability that drifted beyond
// tolerance. Reported, not fatal: measurement continues best-effort.
func warnIfDenormalized(probs []float64) {
	if s := floats.Sum(probs); math.Abs(s-1) > linalg.DefaultTolerance {
		logger.Warn().
			Float64("total_probability", s).
			Msg("qubit: measuring a non-normalized state")
	}
}
