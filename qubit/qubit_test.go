package qubit_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fthomas/qucosi/linalg"
	"github.com/fthomas/qucosi/qubit"
)

// TestNewBasis pins the one-hot layout and the index preconditions.
func TestNewBasis(t *testing.T) {
	q, err := qubit.NewBasis(2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, q.Wires())
	require.Equal(t, 4, q.Dim())
	require.True(t, q.Amplitudes().Equal(linalg.Vector{0, 0, 1, 0}))
	require.True(t, q.IsNormalized())

	_, err = qubit.NewBasis(4, 2)
	require.ErrorIs(t, err, qubit.ErrIndexOutOfRange)
	_, err = qubit.NewBasis(-1, 2)
	require.ErrorIs(t, err, qubit.ErrIndexOutOfRange)
	_, err = qubit.NewBasis(0, 0)
	require.ErrorIs(t, err, qubit.ErrWireCount)
}

// TestFromVector enforces the register length invariant.
func TestFromVector(t *testing.T) {
	_, err := qubit.FromVector(linalg.Vector{1, 0, 0})
	require.ErrorIs(t, err, qubit.ErrNotPowerOfTwo)
	_, err = qubit.FromVector(linalg.Vector{1})
	require.ErrorIs(t, err, qubit.ErrNotPowerOfTwo)
	_, err = qubit.FromVector(nil)
	require.ErrorIs(t, err, qubit.ErrNotPowerOfTwo)

	src := linalg.Vector{0, 1}
	q, err := qubit.FromVector(src)
	require.NoError(t, err)
	src[0] = 9 // the qubit owns an independent copy
	require.True(t, q.Amplitudes().Equal(linalg.Vector{0, 1}))

	require.ErrorIs(t, q.Set(linalg.Vector{1, 2, 3}), qubit.ErrNotPowerOfTwo)
	require.NoError(t, q.Set(linalg.Vector{1, 0, 0, 0}))
	require.Equal(t, 2, q.Wires())
}

// TestTensor grows registers with the receiver on the significant side.
func TestTensor(t *testing.T) {
	q0, err := qubit.NewBasis(0, 1)
	require.NoError(t, err)
	q1, err := qubit.NewBasis(1, 1)
	require.NoError(t, err)

	q01 := q0.Tensor(q1)
	require.Equal(t, 2, q01.Wires())
	want, err := qubit.NewBasis(1, 2)
	require.NoError(t, err)
	require.True(t, q01.Equal(want))

	q10 := q1.Tensor(q0)
	want, err = qubit.NewBasis(2, 2)
	require.NoError(t, err)
	require.True(t, q10.Equal(want))
}

// TestIsPureState accepts collapsed states up to a global phase and
// rejects genuine superpositions.
func TestIsPureState(t *testing.T) {
	q, err := qubit.NewBasis(3, 2)
	require.NoError(t, err)
	require.True(t, q.IsPureState())

	require.True(t, qubit.New(0, 1i).IsPureState())

	s := complex(1/math.Sqrt2, 0)
	require.False(t, qubit.New(s, s).IsPureState())
	require.False(t, qubit.New(s, -s).IsPureState())
}

// TestRandom checks normalization and seed determinism.
func TestRandom(t *testing.T) {
	_, err := qubit.Random(0, nil)
	require.ErrorIs(t, err, qubit.ErrWireCount)

	a, err := qubit.Random(3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Equal(t, 3, a.Wires())
	require.True(t, a.IsNormalized())

	b, err := qubit.Random(3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same seed, same state")

	c, err := qubit.Random(3, rand.New(rand.NewSource(6)))
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

// TestNegEqualApprox covers the sign helper and tolerance equality.
func TestNegEqualApprox(t *testing.T) {
	q := qubit.New(complex(math.Sqrt(0.5), 0), complex(-math.Sqrt(0.5), 0))
	n := q.Neg()
	require.False(t, q.Equal(n))
	require.True(t, q.EqualApprox(n.Neg(), 0))
}
