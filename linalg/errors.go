// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// linalg package. All operations return these sentinels and callers match
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private
// helpers.

package linalg

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (e.g. a matrix with r <= 0 or c <= 0, or a negative vector length).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: sums of different lengths, products where a.Cols != b.Rows,
	// or tensor products with an empty operand.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfRange indicates that a row, column or block index is outside
	// the valid bounds of the receiver.
	ErrOutOfRange = errors.New("linalg: index out of range")
)
