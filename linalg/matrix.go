package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense complex matrix backed by gonum's mat.CDense.
// The zero value is not usable; construct through NewMatrix, Identity or
// an operation on an existing Matrix. Matrices are immutable by
// convention after construction: operations return new values and only
// Set/SetBlock mutate the receiver, during assembly.
type Matrix struct {
	m *mat.CDense
}

// NewMatrix returns a zero-filled r×c matrix.
// Returns ErrBadShape unless r > 0 and c > 0.
func NewMatrix(r, c int) (Matrix, error) {
	if r <= 0 || c <= 0 {
		return Matrix{}, ErrBadShape
	}

	return Matrix{m: mat.NewCDense(r, c, make([]complex128, r*c))}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape unless n > 0.
func Identity(n int) (Matrix, error) {
	a, err := NewMatrix(n, n)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < n; i++ {
		a.m.Set(i, i, 1)
	}

	return a, nil
}

// FromRows builds a matrix from a non-empty rectangular row slice.
// Returns ErrBadShape for empty input and ErrDimensionMismatch for
// ragged rows.
func FromRows(rows [][]complex128) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	data := make([]complex128, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			return Matrix{}, ErrDimensionMismatch
		}
		data = append(data, row...)
	}

	return Matrix{m: mat.NewCDense(r, c, data)}, nil
}

// Dims returns the row and column counts.
func (a Matrix) Dims() (r, c int) { return a.m.Dims() }

// At returns the element at (i, j). Out-of-range indices are programmer
// errors and panic, as in the underlying mat types.
func (a Matrix) At(i, j int) complex128 { return a.m.At(i, j) }

// Set assigns v at (i, j) in place. Out-of-range indices panic.
func (a Matrix) Set(i, j int, v complex128) { a.m.Set(i, j, v) }

// Clone returns an independent deep copy of a.
func (a Matrix) Clone() Matrix {
	r, c := a.m.Dims()
	out := mat.NewCDense(r, c, make([]complex128, r*c))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, a.m.At(i, j))
		}
	}

	return Matrix{m: out}
}

// Add returns a + b. Returns ErrDimensionMismatch unless shapes match.
func (a Matrix) Add(b Matrix) (Matrix, error) {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if ar != br || ac != bc {
		return Matrix{}, ErrDimensionMismatch
	}
	out := a.Clone()
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			out.m.Set(i, j, out.m.At(i, j)+b.m.At(i, j))
		}
	}

	return out, nil
}

// Scale returns c·a.
func (a Matrix) Scale(c complex128) Matrix {
	r, cols := a.m.Dims()
	out := a.Clone()
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			out.m.Set(i, j, c*out.m.At(i, j))
		}
	}

	return out
}

// Mul returns the matrix product a·b, delegating the multiplication to
// gonum's cblas128.Gemm on the CDense storage. Returns
// ErrDimensionMismatch unless a.Cols == b.Rows.
//
// Complexity: O(ar·ac·bc).
func (a Matrix) Mul(b Matrix) (Matrix, error) {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if ac != br {
		return Matrix{}, ErrDimensionMismatch
	}
	out := mat.NewCDense(ar, bc, make([]complex128, ar*bc))
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.m.RawCMatrix(), b.m.RawCMatrix(), 0, out.RawCMatrix())

	return Matrix{m: out}, nil
}

// MulVec returns the matrix–vector product a·v as a new vector.
// Returns ErrDimensionMismatch unless a.Cols == v.Dim().
func (a Matrix) MulVec(v Vector) (Vector, error) {
	r, c := a.m.Dims()
	if c != len(v) {
		return nil, ErrDimensionMismatch
	}
	x := mat.NewCDense(c, 1, v.Clone())
	y := mat.NewCDense(r, 1, make([]complex128, r))
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.m.RawCMatrix(), x.RawCMatrix(), 0, y.RawCMatrix())
	out := make(Vector, r)
	for i := range out {
		out[i] = y.At(i, 0)
	}

	return out, nil
}

// Transpose returns aᵀ.
func (a Matrix) Transpose() Matrix {
	r, c := a.m.Dims()
	out := mat.NewCDense(c, r, make([]complex128, r*c))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, a.m.At(i, j))
		}
	}

	return Matrix{m: out}
}

// ConjTranspose returns the conjugate transpose a*.
func (a Matrix) ConjTranspose() Matrix {
	r, c := a.m.Dims()
	out := mat.NewCDense(c, r, make([]complex128, r*c))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.m.At(i, j)))
		}
	}

	return Matrix{m: out}
}

// SetBlock assigns b into the receiver with b's (0,0) at (i, j),
// the tiling primitive behind tensor products and controlled-gate
// assembly. Returns ErrOutOfRange unless the block fits.
func (a Matrix) SetBlock(i, j int, b Matrix) error {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if i < 0 || j < 0 || i+br > ar || j+bc > ac {
		return ErrOutOfRange
	}
	for r := 0; r < br; r++ {
		for c := 0; c < bc; c++ {
			a.m.Set(i+r, j+c, b.m.At(r, c))
		}
	}

	return nil
}

// Tensor returns the Kronecker product a ⊗ b, laid out as
//
//	(a ⊗ b)[i·br + k][j·bc + l] = a[i][j]·b[k][l]
//
// consistent with Vector.Tensor. Unitarity of unitary factors is
// preserved.
//
// Complexity: O(ar·ac·br·bc), the size of the result.
func (a Matrix) Tensor(b Matrix) (Matrix, error) {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	out, err := NewMatrix(ar*br, ac*bc)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			s := a.m.At(i, j)
			if s == 0 {
				continue
			}
			if err := out.SetBlock(i*br, j*bc, b.Scale(s)); err != nil {
				return Matrix{}, err
			}
		}
	}

	return out, nil
}

// Equal reports exact entrywise equality.
func (a Matrix) Equal(b Matrix) bool {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a.m.At(i, j) != b.m.At(i, j) {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports entrywise equality within tol; a non-positive tol
// selects DefaultTolerance. Matrices of different shapes are never
// approximately equal.
func (a Matrix) EqualApprox(b Matrix, tol float64) bool {
	ar, ac := a.m.Dims()
	br, bc := b.m.Dims()
	if ar != br || ac != bc {
		return false
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.m.At(i, j)-b.m.At(i, j)) > tol {
				return false
			}
		}
	}

	return true
}

// IsUnitary reports whether a·a* is the identity within tol (entrywise;
// non-positive tol selects DefaultTolerance). Non-square matrices are
// never unitary.
func (a Matrix) IsUnitary(tol float64) bool {
	r, c := a.m.Dims()
	if r != c {
		return false
	}
	p, err := a.Mul(a.ConjTranspose())
	if err != nil {
		return false
	}
	id, err := Identity(r)
	if err != nil {
		return false
	}

	return p.EqualApprox(id, tol)
}
