// SPDX-License-Identifier: MIT

// Package matrix: domain types shared across storage and combinators.
// Shape geometry, the Matrix capability interface and the Operator contract
// live here; errors and validators live in dedicated files per the package
// conventions.

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/numkit/scalar"
)

// Shape is an ordered sequence of positive dimensions. A rank-2 shape reads
// {rows, cols}.
type Shape []int

// Equal reports whether two shapes have identical rank and dimensions.
// Complexity: O(rank).
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Size returns the total element count (product of dimensions).
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// strides returns row-major strides for the shape.
// Complexity: O(rank).
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// validate checks that the shape is non-empty with all dimensions > 0.
func (s Shape) validate() error {
	if len(s) == 0 {
		return matrixErrorf("Shape", ErrBadShape)
	}
	for _, d := range s {
		if d <= 0 {
			return matrixErrorf("Shape", ErrBadShape)
		}
	}

	return nil
}

// String renders the shape as "r×c×…" for diagnostics.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}

	return strings.Join(parts, "×")
}

// Matrix is the capability interface shared by the two storage formats.
// Concrete types are *Dense and *Sparse; combinators and conversions accept
// and return these concretions, the interface exists for callers that only
// need geometry and cloning.
type Matrix interface {
	// Shape returns the matrix dimensions (copy; safe to retain).
	Shape() Shape

	// Datatype returns the element-kind hint: a scalar kind token when the
	// stored elements are uniform, "" when mixed or empty. Used to pick the
	// canonical implicit zero and fast paths; never load-bearing for
	// correctness of explicit entries.
	Datatype() string

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix
}

// Operator is the binary scalar capability consumed by the combinators.
// It must be pure and total over the element kinds it is given; the
// combinators never interpret its semantics, only its signature.
//
// Precondition (documented, unchecked): op(zero, zero) must return the
// canonical zero of the result kind. The sparse merge-join skips coordinates
// absent from both operands without invoking op, which is only sound under
// this assumption. Operators that violate it (equality: op(0,0) = true) must
// not be routed through CombineSparseSparse — densify first.
type Operator func(a, b scalar.Value) (scalar.Value, error)

// datatypeOf computes the uniform element-kind token of values, or "" when
// values is empty or holds mixed kinds.
// Complexity: O(len(values)).
func datatypeOf(values []scalar.Value) string {
	if len(values) == 0 {
		return ""
	}
	k := values[0].Kind()
	for _, v := range values[1:] {
		if v.Kind() != k {
			return ""
		}
	}

	return k.String()
}

// implicitZero maps a datatype tag to the canonical zero used for implicit
// sparse entries of that kind. Unknown or mixed tags fall back to Number(0),
// matching the numeric default of the library.
func implicitZero(dtype string) scalar.Value {
	switch dtype {
	case "Bool":
		return scalar.Bool(false)
	case "BigNumber":
		return scalar.Zero(scalar.KindBigNumber)
	case "Fraction":
		return scalar.Zero(scalar.KindFraction)
	case "Complex":
		return scalar.Complex(0)
	case "Unit":
		return scalar.Zero(scalar.KindUnit)
	default:
		return scalar.Number(0)
	}
}
