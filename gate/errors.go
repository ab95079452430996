// SPDX-License-Identifier: MIT
// Package gate: sentinel error set. Constructors return these sentinels
// for violated preconditions and callers match them via errors.Is.
// Panics are reserved for programmer errors in private helpers.

package gate

import "errors"

var (
	// ErrWireCount is returned when a register size below one wire is
	// requested, e.g. F(0).
	ErrWireCount = errors.New("gate: wire count must be at least one")

	// ErrWireOutOfRange is returned when a wire position does not fit the
	// register, e.g. ApplyTo(k, n) with k + m > n or a control/target
	// outside [0, n).
	ErrWireOutOfRange = errors.New("gate: wire position out of range")

	// ErrControlOverlap is returned by Control when the control wire lies
	// inside the target range (which includes an equal control and
	// target).
	ErrControlOverlap = errors.New("gate: control wire overlaps the target range")

	// ErrBadPermutation is returned by Permute when σ is not a
	// permutation of 0…n−1.
	ErrBadPermutation = errors.New("gate: not a permutation of the wires")

	// ErrNotSquare signals a register operation on a non-square matrix.
	ErrNotSquare = errors.New("gate: matrix is not square")

	// ErrNotPowerOfTwo signals a dimension or table length that is not a
	// power of two (with at least one wire).
	ErrNotPowerOfTwo = errors.New("gate: dimension is not a power of two")

	// ErrBadPower is returned by TensorPow for exponents below one.
	ErrBadPower = errors.New("gate: tensor power must be at least one")

	// ErrBadFunctionTable is returned by the oracle constructors when an
	// output width below one is requested or a table value does not fit
	// in m bits.
	ErrBadFunctionTable = errors.New("gate: oracle table value out of range")
)
