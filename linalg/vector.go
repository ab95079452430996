package linalg

import (
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/cmplxs"
)

// Vector is a dynamic-length dense vector of complex amplitudes. The
// zero-length vector is valid; all operations treat vectors as values
// and return new slices, with Randomize as the single in-place
// exception.
type Vector []complex128

// NewVector returns a zero-filled vector of the given length.
// Returns ErrBadShape for a negative length.
func NewVector(dim int) (Vector, error) {
	if dim < 0 {
		return nil, ErrBadShape
	}

	return make(Vector, dim), nil
}

// Pair returns the two-amplitude vector (c0, c1), the raw material of a
// single qubit.
func Pair(c0, c1 complex128) Vector {
	return Vector{c0, c1}
}

// Dim returns the number of amplitudes.
func (u Vector) Dim() int { return len(u) }

// Clone returns an independent deep copy of u.
func (u Vector) Clone() Vector {
	return append(Vector(nil), u...)
}

// Add returns u + v. Returns ErrDimensionMismatch unless both operands
// are non-empty and of equal length.
func (u Vector) Add(v Vector) (Vector, error) {
	if len(u) == 0 || len(u) != len(v) {
		return nil, ErrDimensionMismatch
	}
	w := u.Clone()
	cmplxs.Add(w, v)

	return w, nil
}

// Sub returns u − v under the same contract as Add.
func (u Vector) Sub(v Vector) (Vector, error) {
	if len(u) == 0 || len(u) != len(v) {
		return nil, ErrDimensionMismatch
	}
	w := u.Clone()
	for i, c := range v {
		w[i] -= c
	}

	return w, nil
}

// Scale returns c·u.
func (u Vector) Scale(c complex128) Vector {
	w := u.Clone()
	cmplxs.Scale(c, w)

	return w
}

// Inner returns the inner product ⟨u|v⟩ = ū·v, conjugating the
// receiver. Returns ErrDimensionMismatch for unequal lengths.
func (u Vector) Inner(v Vector) (complex128, error) {
	if len(u) != len(v) {
		return 0, ErrDimensionMismatch
	}
	var s complex128
	for i, c := range u {
		s += cmplx.Conj(c) * v[i]
	}

	return s, nil
}

// Norm returns the Euclidean norm of u.
func (u Vector) Norm() float64 {
	var s float64
	for _, c := range u {
		s += real(c)*real(c) + imag(c)*imag(c)
	}

	return math.Sqrt(s)
}

// Normalize returns u scaled to unit norm. A vector of zero norm is
// returned unchanged.
func (u Vector) Normalize() Vector {
	n := u.Norm()
	if IsZero(n) {
		return u.Clone()
	}

	return u.Scale(complex(1/n, 0))
}

// IsNormalized reports whether ‖u‖ is one within Eps.
func (u Vector) IsNormalized() bool {
	return IsOne(u.Norm())
}

// IsOrthogonal reports whether ⟨u|v⟩ vanishes within Eps.
// Returns ErrDimensionMismatch for unequal lengths.
func (u Vector) IsOrthogonal(v Vector) (bool, error) {
	p, err := u.Inner(v)
	if err != nil {
		return false, err
	}

	return IsZero(cmplx.Abs(p)), nil
}

// Tensor returns the canonical tensor product u ⊗ v of length
// len(u)·len(v), laid out as
//
//	w[i·len(v) + j] = u[i]·v[j]
//
// which fixes the ordering convention for every multi-wire operation in
// the packages above. Returns ErrDimensionMismatch if either operand is
// empty.
//
// Complexity: O(len(u)·len(v)).
func (u Vector) Tensor(v Vector) (Vector, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, ErrDimensionMismatch
	}
	w := make(Vector, len(u)*len(v))
	k := 0
	for _, a := range u {
		for _, b := range v {
			w[k] = a * b
			k++
		}
	}

	return w, nil
}

// Equal reports exact entrywise equality.
func (u Vector) Equal(v Vector) bool {
	if len(u) != len(v) {
		return false
	}
	for i, c := range u {
		if c != v[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether ‖u − v‖ ≤ tol·max(‖u‖, ‖v‖, 1). A
// non-positive tol selects DefaultTolerance. Vectors of different
// lengths are never approximately equal.
func (u Vector) EqualApprox(v Vector, tol float64) bool {
	if len(u) != len(v) {
		return false
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	d, err := u.Sub(v)
	if err != nil {
		// Equal lengths of zero: indistinguishable empty vectors.
		return true
	}
	scale := math.Max(math.Max(u.Norm(), v.Norm()), 1)

	return d.Norm() <= tol*scale
}

// Randomize overwrites u in place with amplitudes drawn i.i.d. from a
// circularly symmetric complex Gaussian and normalizes the result, so
// that the postcondition IsNormalized holds for non-empty u. The
// generator must not be nil. Returns u for chaining.
//
// Randomize exists for test scaffolding; library code never calls it.
func (u Vector) Randomize(rng *rand.Rand) Vector {
	if rng == nil {
		panic("linalg: Randomize requires a non-nil generator")
	}
	for i := range u {
		u[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	n := u.Norm()
	if !IsZero(n) {
		cmplxs.Scale(complex(1/n, 0), u)
	}

	return u
}
