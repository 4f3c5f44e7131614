// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (empty shape, or a dimension ≤ 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a coordinate is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between the two
	// operands of an element-wise operation (including differing rank).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadSparse indicates CSC storage violating a structural invariant:
	// non-monotone column pointers, unsorted or duplicate row indices within
	// a column, an out-of-range row index, or an explicitly stored zero.
	ErrBadSparse = errors.New("matrix: malformed sparse storage")

	// ErrBadNesting indicates a nested sequence whose nesting depth or
	// per-level lengths do not describe a rectangular shape, or whose leaves
	// are not coercible into the scalar union.
	ErrBadNesting = errors.New("matrix: malformed nested sequence")
)

// matrixErrorf wraps an underlying error with a call-site tag, preserving
// errors.Is matching against the sentinels above.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeMismatchf wraps ErrDimensionMismatch with the two offending shapes so
// the error surface identifies the operation and both operand geometries.
func shapeMismatchf(tag string, a, b Shape) error {
	return fmt.Errorf("%s: shape %s vs %s: %w", tag, a, b, ErrDimensionMismatch)
}
