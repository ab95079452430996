package gate

import (
	"github.com/rs/zerolog"

	"github.com/fthomas/qucosi/linalg"
	"github.com/fthomas/qucosi/qubit"
)

// logger reports numeric warnings such as failed unitarity assertions.
// It defaults to a no-op logger; drivers install a real one via
// SetLogger.
var logger = zerolog.Nop()

// SetLogger installs the package logger used for numeric warnings.
func SetLogger(l zerolog.Logger) { logger = l }

// Gate is a dense complex matrix intended to act on qubit registers by
// matrix–vector multiplication. Factories produce 2ⁿ×2ⁿ unitaries;
// FromMatrix admits arbitrary matrices so that intermediate algebra
// (sums, scaled gates) remains expressible. Gates are immutable by
// convention after construction.
type Gate struct {
	m linalg.Matrix
}

// FromMatrix wraps m as a Gate. The register-shaped constructors below
// validate wire structure themselves; FromMatrix performs no checks
// beyond those already enforced by linalg.Matrix construction.
func FromMatrix(m linalg.Matrix) Gate { return Gate{m: m} }

// Matrix returns the underlying matrix value.
func (g Gate) Matrix() linalg.Matrix { return g.m }

// Dims returns the row and column counts.
func (g Gate) Dims() (r, c int) { return g.m.Dims() }

// At returns the entry at (i, j).
func (g Gate) At(i, j int) complex128 { return g.m.At(i, j) }

// Wires returns n for a 2ⁿ×2ⁿ gate and −1 for a matrix without register
// shape.
func (g Gate) Wires() int {
	n, err := g.wires()
	if err != nil {
		return -1
	}

	return n
}

// wires validates register shape: square with 2ⁿ rows, n ≥ 1.
func (g Gate) wires() (int, error) {
	r, c := g.m.Dims()
	if r != c {
		return 0, ErrNotSquare
	}
	n := linalg.Log2(uint(r))
	if n < 1 || r != 1<<n {
		return 0, ErrNotPowerOfTwo
	}

	return n, nil
}

// mustGate unwraps a (Gate, error) pair whose error is excluded by an
// invariant already established by the caller. Programmer errors only.
func mustGate(g Gate, err error) Gate {
	if err != nil {
		panic("gate: internal invariant violated: " + err.Error())
	}

	return g
}

// Mul returns the circuit composition g·h (h acts first on a state).
// Returns linalg.ErrDimensionMismatch for incompatible shapes.
func (g Gate) Mul(h Gate) (Gate, error) {
	m, err := g.m.Mul(h.m)
	if err != nil {
		return Gate{}, err
	}

	return Gate{m: m}, nil
}

// Add returns the entrywise sum g + h, for intermediate algebra such as
// (X+Z)/√2. Returns linalg.ErrDimensionMismatch for unequal shapes.
func (g Gate) Add(h Gate) (Gate, error) {
	m, err := g.m.Add(h.m)
	if err != nil {
		return Gate{}, err
	}

	return Gate{m: m}, nil
}

// Scale returns c·g.
func (g Gate) Scale(c complex128) Gate {
	return Gate{m: g.m.Scale(c)}
}

// Tensor returns the Kronecker product g ⊗ h. Both operands are
// non-empty by construction, so the product always exists.
func (g Gate) Tensor(h Gate) Gate {
	return Gate{m: mustMatrix(g.m.Tensor(h.m))}
}

// TensorPow returns the n-fold tensor power g ⊗ g ⊗ … ⊗ g.
// Returns ErrBadPower for n < 1.
//
// Complexity: O(size of the result), dominated by the last product.
func (g Gate) TensorPow(n int) (Gate, error) {
	if n < 1 {
		return Gate{}, ErrBadPower
	}
	out := g
	for i := 1; i < n; i++ {
		out = out.Tensor(g)
	}

	return out, nil
}

// ApplyTo embeds a 2ᵐ×2ᵐ gate into an n-wire register with its target
// wires at positions k … k+m−1:
//
//	I_{2ᵏ} ⊗ U ⊗ I_{2ⁿ⁻ᵏ⁻ᵐ}
//
// Returns ErrWireOutOfRange unless 0 ≤ k and k+m ≤ n. The result is
// unitary iff the receiver is.
func (g Gate) ApplyTo(k, n int) (Gate, error) {
	m, err := g.wires()
	if err != nil {
		return Gate{}, err
	}
	if k < 0 || k+m > n {
		return Gate{}, ErrWireOutOfRange
	}
	out := g
	if k > 0 {
		out = identity(k).Tensor(out)
	}
	if rest := n - k - m; rest > 0 {
		out = out.Tensor(identity(rest))
	}

	return out, nil
}

// Transpose returns gᵀ. For permutation gates this is the inverse.
func (g Gate) Transpose() Gate {
	return Gate{m: g.m.Transpose()}
}

// Adjoint returns the conjugate transpose g*.
func (g Gate) Adjoint() Gate {
	return Gate{m: g.m.ConjTranspose()}
}

// Equal reports exact entrywise equality.
func (g Gate) Equal(h Gate) bool { return g.m.Equal(h.m) }

// EqualApprox reports entrywise equality within tol; non-positive tol
// selects linalg.DefaultTolerance.
func (g Gate) EqualApprox(h Gate, tol float64) bool {
	return g.m.EqualApprox(h.m, tol)
}

// IsUnitary reports whether g·g* is the identity within tol.
func (g Gate) IsUnitary(tol float64) bool { return g.m.IsUnitary(tol) }

// AssertUnitary checks unitarity like IsUnitary and reports a failure
// through the package logger. Reported, not fatal: callers may continue
// best-effort with the drifted gate.
func (g Gate) AssertUnitary(tol float64) bool {
	if g.m.IsUnitary(tol) {
		return true
	}
	r, c := g.m.Dims()
	logger.Warn().
		Int("rows", r).
		Int("cols", c).
		Msg("gate: asserted unitarity does not hold")

	return false
}

// Apply multiplies the state in place: q ← g·q.
// Returns linalg.ErrDimensionMismatch when the gate does not fit the
// register.
func (g Gate) Apply(q *qubit.Qubit) error {
	w, err := g.m.MulVec(q.Amplitudes())
	if err != nil {
		return err
	}

	return q.Set(w)
}

// Applied returns g·q as a new state, leaving q untouched.
func (g Gate) Applied(q *qubit.Qubit) (*qubit.Qubit, error) {
	out := q.Clone()
	if err := g.Apply(out); err != nil {
		return nil, err
	}

	return out, nil
}

// identity returns the identity gate on n wires.
func identity(n int) Gate {
	m, err := linalg.Identity(1 << n)

	return mustGate(Gate{m: m}, err)
}

// mustMatrix mirrors mustGate for bare matrices.
func mustMatrix(m linalg.Matrix, err error) linalg.Matrix {
	if err != nil {
		panic("gate: internal invariant violated: " + err.Error())
	}

	return m
}
