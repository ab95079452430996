package qubit

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fthomas/qucosi/linalg"
)

// logger reports numeric warnings (non-fatal drift diagnostics). It
// defaults to a no-op logger; drivers install a real one via SetLogger.
var logger = zerolog.Nop()

// SetLogger installs the package logger used for numeric warnings.
func SetLogger(l zerolog.Logger) { logger = l }

// Qubit is a pure state over n ≥ 1 wires: a complex amplitude vector of
// length 2ⁿ that is unit-norm after every externally visible operation.
// The constructors establish the length invariant; Set re-validates it.
// Gate application and measurement mutate the receiver in place; all
// other operations return new values.
type Qubit struct {
	v linalg.Vector
}

// New returns the single-wire qubit c₀·|0⟩ + c₁·|1⟩. The amplitudes are
// stored as given; callers that need a unit state pass unit amplitudes
// (IsNormalized reports the truth either way).
func New(c0, c1 complex128) *Qubit {
	return &Qubit{v: linalg.Pair(c0, c1)}
}

// NewBasis returns the computational-basis state |x⟩ₙ of length 2ⁿ: a
// single 1 at index x, zeros elsewhere. Returns ErrWireCount for n < 1
// and ErrIndexOutOfRange unless 0 ≤ x < 2ⁿ.
func NewBasis(x, n int) (*Qubit, error) {
	if n < 1 {
		return nil, ErrWireCount
	}
	d := 1 << n
	if x < 0 || x >= d {
		return nil, ErrIndexOutOfRange
	}
	v := make(linalg.Vector, d)
	v[x] = 1

	return &Qubit{v: v}, nil
}

// FromVector adopts v as a register state. Returns ErrNotPowerOfTwo
// unless len(v) = 2ⁿ for some n ≥ 1. The slice is cloned; the caller
// keeps ownership of its copy.
func FromVector(v linalg.Vector) (*Qubit, error) {
	if err := validDim(len(v)); err != nil {
		return nil, err
	}

	return &Qubit{v: v.Clone()}, nil
}

// Random returns a randomized unit state over n wires, drawing from rng
// (nil selects the process generator). Test scaffolding, like
// linalg.Vector.Randomize underneath it.
func Random(n int, rng *rand.Rand) (*Qubit, error) {
	if n < 1 {
		return nil, ErrWireCount
	}
	v := make(linalg.Vector, 1<<n)
	withRNG(rng, func(r *rand.Rand) { v.Randomize(r) })

	return &Qubit{v: v}, nil
}

func validDim(d int) error {
	n := linalg.Log2(uint(d))
	if n < 1 || d != 1<<n {
		return ErrNotPowerOfTwo
	}

	return nil
}

// Wires returns the register width n.
func (q *Qubit) Wires() int { return linalg.Log2(uint(len(q.v))) }

// Dim returns the amplitude count 2ⁿ.
func (q *Qubit) Dim() int { return len(q.v) }

// At returns the amplitude of basis index i. Out-of-range indices are
// programmer errors and panic.
func (q *Qubit) At(i int) complex128 { return q.v[i] }

// Amplitudes returns the backing amplitude vector as a view. Callers
// must treat it as read-only; use Set to replace the state.
func (q *Qubit) Amplitudes() linalg.Vector { return q.v }

// Set replaces the state with v, re-validating the register invariant.
// The slice is cloned.
func (q *Qubit) Set(v linalg.Vector) error {
	if err := validDim(len(v)); err != nil {
		return err
	}
	q.v = v.Clone()

	return nil
}

// Clone returns an independent copy of q.
func (q *Qubit) Clone() *Qubit {
	return &Qubit{v: q.v.Clone()}
}

// Tensor returns the grown register q ⊗ o; the receiver's wires come
// first (most significant).
func (q *Qubit) Tensor(o *Qubit) *Qubit {
	w, err := q.v.Tensor(o.v)
	if err != nil {
		// Both operands satisfy the register invariant, so the tensor
		// product cannot be empty.
		panic("qubit: internal: " + err.Error())
	}

	return &Qubit{v: w}
}

// Neg returns −q, handy when comparing states up to a global sign.
func (q *Qubit) Neg() *Qubit {
	return &Qubit{v: q.v.Scale(-1)}
}

// IsNormalized reports whether ‖q‖ is one within linalg.Eps.
func (q *Qubit) IsNormalized() bool { return q.v.IsNormalized() }

// IsPureState reports whether some basis index holds squared amplitude
// one within linalg.Eps, i.e. the state is collapsed up to a global
// phase.
func (q *Qubit) IsPureState() bool {
	for _, c := range q.v {
		if linalg.IsOne(real(c)*real(c) + imag(c)*imag(c)) {
			return true
		}
	}

	return false
}

// Probabilities returns |αᵢ|² for every basis index.
func (q *Qubit) Probabilities() []float64 {
	probs := make([]float64, len(q.v))
	for i, c := range q.v {
		probs[i] = real(c)*real(c) + imag(c)*imag(c)
	}

	return probs
}

// Equal reports exact entrywise equality of the two states.
func (q *Qubit) Equal(o *Qubit) bool { return q.v.Equal(o.v) }

// EqualApprox reports approximate equality under linalg.Vector
// semantics; non-positive tol selects linalg.DefaultTolerance.
func (q *Qubit) EqualApprox(o *Qubit, tol float64) bool {
	return q.v.EqualApprox(o.v, tol)
}

// String renders the nonzero amplitudes in ket notation, e.g.
// "(0.7071+0i)|0⟩ + (-0.7071+0i)|1⟩".
func (q *Qubit) String() string {
	n := q.Wires()
	var parts []string
	for i, c := range q.v {
		if linalg.IsZero(real(c)) && linalg.IsZero(imag(c)) {
			continue
		}
		parts = append(parts, fmt.Sprintf("(%.4g%+.4gi)|%0*b⟩", real(c), imag(c), n, i))
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}
