package gate

import (
	"math"
	"math/cmplx"

	"github.com/fthomas/qucosi/linalg"
)

// F returns the quantum Fourier transform on n wires: the N×N unitary
// with N = 2ⁿ and entries
//
//	F[x][y] = N^(−1/2) · exp(2πi·x·y/N)
//
// The matrix is symmetric, so the constructor fills the upper triangle
// (diagonal included) and mirrors it. The phase argument is reduced
// mod N before the exponential to keep large x·y products accurate.
// F·F* is the identity within linalg.DefaultTolerance.
//
// Returns ErrWireCount for n < 1.
func F(n int) (Gate, error) {
	if n < 1 {
		return Gate{}, ErrWireCount
	}
	d := 1 << n
	scale := 1 / math.Sqrt(float64(d))
	m, err := linalg.NewMatrix(d, d)
	if err != nil {
		return Gate{}, err
	}
	for x := 0; x < d; x++ {
		for y := x; y < d; y++ {
			v := cmplx.Rect(scale, 2*math.Pi*float64(x*y%d)/float64(d))
			m.Set(x, y, v)
			if x != y {
				m.Set(y, x, v)
			}
		}
	}

	return Gate{m: m}, nil
}
