package gate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fthomas/qucosi/gate"
)

func mustControl(t *testing.T, tw, cw, n int, u gate.Gate) gate.Gate {
	t.Helper()
	g, err := gate.Control(tw, cw, n, u)
	require.NoError(t, err)

	return g
}

// TestControlCanonical pins the canonical layouts against the named
// multi-wire gates, exactly.
func TestControlCanonical(t *testing.T) {
	require.True(t, mustControl(t, 1, 0, 2, gate.X()).Equal(gate.CNOT()))
	require.True(t, mustControl(t, 1, 0, 3, gate.CNOT()).Equal(gate.CCNOT()))
	require.True(t, mustControl(t, 1, 0, 3, gate.SWAP()).Equal(gate.CSWAP()))

	// Nesting controls stacks them.
	inner := mustControl(t, 1, 0, 2, gate.X())
	require.True(t, mustControl(t, 1, 0, 3, inner).Equal(gate.CCNOT()))
}

// TestControlPlacement moves control and target to arbitrary wires.
func TestControlPlacement(t *testing.T) {
	// Control below the target on the last two of three wires.
	shifted, err := gate.CNOT().ApplyTo(1, 3)
	require.NoError(t, err)
	require.True(t, mustControl(t, 2, 1, 3, gate.X()).Equal(shifted))

	// Control on wire 1, target on wire 0: conjugation by SWAP.
	want := mustRows(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	})
	got := mustControl(t, 0, 1, 2, gate.X())
	require.True(t, got.Equal(want))

	swap := gate.SWAP()
	conj, err := swap.Mul(gate.CNOT())
	require.NoError(t, err)
	conj, err = conj.Mul(swap)
	require.NoError(t, err)
	require.True(t, got.Equal(conj))
}

// TestControlUnitary keeps every constructed gate unitary, including a
// non-permutation payload.
func TestControlUnitary(t *testing.T) {
	cases := []gate.Gate{
		mustControl(t, 1, 0, 2, gate.H()),
		mustControl(t, 0, 1, 2, gate.H()),
		mustControl(t, 2, 0, 4, gate.SWAP()),
		mustControl(t, 0, 3, 4, gate.CNOT()),
		mustControl(t, 3, 1, 5, gate.H()),
	}
	for i, g := range cases {
		require.True(t, g.IsUnitary(0), "case %d", i)
	}
}

// TestControlIdentities pins the circuit identities connecting
// controlled-Z, CNOT and Hadamard conjugation.
func TestControlIdentities(t *testing.T) {
	h1, err := gate.H().ApplyTo(1, 2)
	require.NoError(t, err)
	cz := mustControl(t, 1, 0, 2, gate.Z())

	conj, err := h1.Mul(cz)
	require.NoError(t, err)
	conj, err = conj.Mul(h1)
	require.NoError(t, err)
	require.True(t, conj.EqualApprox(gate.CNOT(), 0))

	// A controlled phase is symmetric in control and target.
	require.True(t, cz.EqualApprox(mustControl(t, 0, 1, 2, gate.Z()), 0))

	// (H⊗H)·CNOT·(H⊗H) flips control and target of the CNOT.
	hh, err := gate.H().TensorPow(2)
	require.NoError(t, err)
	flip, err := hh.Mul(gate.CNOT())
	require.NoError(t, err)
	flip, err = flip.Mul(hh)
	require.NoError(t, err)
	require.True(t, flip.EqualApprox(mustControl(t, 0, 1, 2, gate.X()), 0))
}

// TestControlErrors rejects overlapping, equal and out-of-range wires.
func TestControlErrors(t *testing.T) {
	_, err := gate.Control(1, 1, 2, gate.X())
	require.ErrorIs(t, err, gate.ErrControlOverlap)
	_, err = gate.Control(0, 1, 3, gate.CNOT()) // control inside the target span
	require.ErrorIs(t, err, gate.ErrControlOverlap)

	_, err = gate.Control(2, 0, 3, gate.CNOT()) // target spills off the register
	require.ErrorIs(t, err, gate.ErrWireOutOfRange)
	_, err = gate.Control(1, 3, 3, gate.X())
	require.ErrorIs(t, err, gate.ErrWireOutOfRange)
	_, err = gate.Control(-1, 0, 2, gate.X())
	require.ErrorIs(t, err, gate.ErrWireOutOfRange)

	badShape := mustRows(t, [][]complex128{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	_, err = gate.Control(1, 0, 4, badShape)
	require.ErrorIs(t, err, gate.ErrNotPowerOfTwo)
}
