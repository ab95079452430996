// SPDX-License-Identifier: MIT
// Package qubit: sentinel error set. All operations return these
// sentinels and callers match them via errors.Is; no operation panics on
// user-triggered error conditions.

package qubit

import "errors"

var (
	// ErrIndexOutOfRange is returned when a basis index does not fit the
	// requested register, e.g. NewBasis(x, n) with x ≥ 2ⁿ or x < 0.
	ErrIndexOutOfRange = errors.New("qubit: basis index out of range")

	// ErrWireCount is returned when a wire count below one is requested.
	ErrWireCount = errors.New("qubit: wire count must be at least one")

	// ErrWireOutOfRange is returned when a wire position is outside the
	// valid range of the register, e.g. MeasurePartial(p) with p ≤ 0 or
	// p ≥ n.
	ErrWireOutOfRange = errors.New("qubit: wire position out of range")

	// ErrNotPowerOfTwo is returned when an amplitude vector cannot
	// represent a register because its length is not 2ⁿ with n ≥ 1.
	ErrNotPowerOfTwo = errors.New("qubit: length is not a power of two")
)
