package gate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fthomas/qucosi/gate"
	"github.com/fthomas/qucosi/linalg"
)

func mustRows(t *testing.T, rows [][]complex128) gate.Gate {
	t.Helper()
	m, err := linalg.FromRows(rows)
	require.NoError(t, err)

	return gate.FromMatrix(m)
}

// TestNamedUnitary asserts unitarity across the whole named surface.
func TestNamedUnitary(t *testing.T) {
	named := map[string]gate.Gate{
		"I":     gate.I(),
		"X":     gate.X(),
		"Y":     gate.Y(),
		"Z":     gate.Z(),
		"H":     gate.H(),
		"P":     gate.P(),
		"T":     gate.T(),
		"CNOT":  gate.CNOT(),
		"SWAP":  gate.SWAP(),
		"CCNOT": gate.CCNOT(),
		"CSWAP": gate.CSWAP(),
	}
	for k := 1; k <= 8; k++ {
		named["R"] = gate.R(k)
		for name, g := range named {
			require.True(t, g.IsUnitary(0), "%s must be unitary", name)
		}
	}
}

// TestHadamardDecomposition pins H = (X+Z)/√2.
func TestHadamardDecomposition(t *testing.T) {
	xz, err := gate.X().Add(gate.Z())
	require.NoError(t, err)
	h := xz.Scale(complex(1/math.Sqrt2, 0))
	require.True(t, h.EqualApprox(gate.H(), 0))
}

// TestPhaseFamily pins P and T as members of the R(k) family.
func TestPhaseFamily(t *testing.T) {
	require.True(t, gate.P().Equal(gate.R(4)))
	require.True(t, gate.T().Equal(gate.R(8)))

	// R(1) adds a full turn, R(2) is Z up to rounding of exp(iπ).
	require.True(t, gate.R(2).EqualApprox(gate.Z(), 0))
	require.True(t, gate.R(1).EqualApprox(gate.I(), 0))
}

// TestNamedLayouts pins the multi-wire permutation layouts entry by
// entry.
func TestNamedLayouts(t *testing.T) {
	require.True(t, gate.CNOT().Equal(mustRows(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})))
	require.True(t, gate.SWAP().Equal(mustRows(t, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})))

	// Toffoli flips wire 2 on the |11·⟩ block, Fredkin swaps wires 1 and
	// 2 on the |1··⟩ block.
	ccnot := gate.CCNOT()
	require.Equal(t, complex128(1), ccnot.At(6, 7))
	require.Equal(t, complex128(1), ccnot.At(7, 6))
	require.Equal(t, complex128(1), ccnot.At(0, 0))

	cswap := gate.CSWAP()
	require.Equal(t, complex128(1), cswap.At(5, 6))
	require.Equal(t, complex128(1), cswap.At(6, 5))
	require.Equal(t, complex128(1), cswap.At(4, 4))
}

// TestHadamardIdentities pins the conjugation identities used all over
// the algorithm walk-throughs.
func TestHadamardIdentities(t *testing.T) {
	h := gate.H()

	hh, err := h.Mul(h)
	require.NoError(t, err)
	require.True(t, hh.EqualApprox(gate.I(), 0))

	hxh, err := h.Mul(gate.X())
	require.NoError(t, err)
	hxh, err = hxh.Mul(h)
	require.NoError(t, err)
	require.True(t, hxh.EqualApprox(gate.Z(), 0))

	hzh, err := h.Mul(gate.Z())
	require.NoError(t, err)
	hzh, err = hzh.Mul(h)
	require.NoError(t, err)
	require.True(t, hzh.EqualApprox(gate.X(), 0))
}
