package gate

import (
	"math"
	"math/cmplx"

	"github.com/fthomas/qucosi/linalg"
)

// newGate builds a gate from a literal row layout. The layouts below are
// rectangular by inspection, so construction cannot fail.
func newGate(rows [][]complex128) Gate {
	m, err := linalg.FromRows(rows)

	return mustGate(Gate{m: m}, err)
}

// I returns the single-wire identity gate.
func I() Gate {
	return newGate([][]complex128{
		{1, 0},
		{0, 1},
	})
}

// X returns the Pauli-X (NOT) gate.
func X() Gate {
	return newGate([][]complex128{
		{0, 1},
		{1, 0},
	})
}

// Y returns the Pauli-Y gate.
func Y() Gate {
	return newGate([][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

// Z returns the Pauli-Z gate.
func Z() Gate {
	return newGate([][]complex128{
		{1, 0},
		{0, -1},
	})
}

// H returns the Hadamard gate, (X+Z)/√2.
func H() Gate {
	s := complex(1/math.Sqrt2, 0)

	return newGate([][]complex128{
		{s, s},
		{s, -s},
	})
}

// R returns the phase gate diag(1, exp(2πi/k)). The exponent divisor k
// must be at least one; smaller values are programmer errors and panic.
func R(k int) Gate {
	if k < 1 {
		panic("gate: R requires k >= 1")
	}

	return newGate([][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, 2*math.Pi/float64(k)))},
	})
}

// P returns the phase gate R(4), diag(1, i).
func P() Gate { return R(4) }

// T returns the π/8 gate R(8).
func T() Gate { return R(8) }

// CNOT returns the two-wire controlled-NOT with control on wire 0.
func CNOT() Gate {
	return newGate([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// SWAP returns the two-wire swap gate.
func SWAP() Gate {
	return newGate([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
}

// CCNOT returns the three-wire Toffoli gate: X on wire 2 controlled on
// wires 0 and 1.
func CCNOT() Gate {
	return newGate([][]complex128{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 1, 0},
	})
}

// CSWAP returns the three-wire Fredkin gate: wires 1 and 2 swapped when
// wire 0 is |1⟩.
func CSWAP() Gate {
	return newGate([][]complex128{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
	})
}
