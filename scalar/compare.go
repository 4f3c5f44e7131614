// SPDX-License-Identifier: MIT
// Package scalar: comparison semantics.
//
// Purpose:
//   - Provide the per-kind comparison kernels consumed by the relational
//     operator definitions (larger, smaller, equal, compare, ...).
//   - Keep the numeric tolerance explicit: eps is always a parameter, threaded
//     in by the operator constructor, never read from package state.
//
// Semantics:
//   - Number/BigNumber comparison is epsilon-tolerant: values within a
//     relative tolerance of eps are considered equal.
//   - Fraction comparison is exact (rationals carry no rounding error).
//   - Unit comparison normalizes into the base unit and requires matching
//     base dimensions (ErrIncompatibleUnits otherwise).
//   - Complex has equality but no ordering (ErrNoOrdering from Compare).

package scalar

import (
	"fmt"
	"math"
	"math/big"
)

// dblEpsilon is the float64 machine epsilon; differences below it are noise.
const dblEpsilon = 2.220446049250313e-16

// NearlyEqual reports whether two float64 values are equal within the
// relative tolerance eps: |x−y| ≤ max(|x|,|y|)·eps, with sub-machine-epsilon
// differences always equal. NaN never compares equal; infinities compare
// equal only to themselves.
//
// Complexity: O(1).
func NearlyEqual(x, y, eps float64) bool {
	if x == y {
		return true // covers equal finites and same-signed infinities
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false // different infinities, or one finite operand
	}

	diff := math.Abs(x - y)
	if diff < dblEpsilon {
		return true
	}

	return diff <= math.Max(math.Abs(x), math.Abs(y))*eps
}

// nearlyEqualBig is NearlyEqual carried out in big.Float arithmetic:
// |x−y| ≤ max(|x|,|y|)·eps.
func nearlyEqualBig(x, y *big.Float, eps float64) bool {
	if x.Cmp(y) == 0 {
		return true
	}

	diff := new(big.Float).Sub(x, y)
	diff.Abs(diff)

	ax := new(big.Float).Abs(x)
	ay := new(big.Float).Abs(y)
	bound := ax
	if ay.Cmp(ax) > 0 {
		bound = ay
	}
	bound = new(big.Float).Mul(bound, big.NewFloat(eps))

	return diff.Cmp(bound) <= 0
}

// Compare orders x against y: −1, 0 or +1. Operands of different promotable
// kinds are lifted to their common kind first. Equality is epsilon-tolerant
// for Number and BigNumber, exact for Fraction, normalized for Unit.
//
// Errors: ErrNoOrdering (Complex), ErrIncompatibleUnits (mismatched bases),
// ErrKindMismatch (no common kind).
// Complexity: O(1) plus big-number arithmetic where applicable.
func Compare(x, y Value, eps float64) (int, error) {
	x, y, err := Promote(x, y)
	if err != nil {
		return 0, fmt.Errorf("Compare: %w", err)
	}

	switch a := x.(type) {
	case Number:
		return compareFloats(float64(a), float64(y.(Number)), eps), nil
	case Bool:
		// Same-kind booleans compare as 0/1 numbers.
		return compareFloats(float64(boolToNumber(a)), float64(boolToNumber(y.(Bool))), eps), nil
	case BigNumber:
		b := y.(BigNumber)
		if nearlyEqualBig(a.ref(), b.ref(), eps) {
			return 0, nil
		}

		return a.ref().Cmp(b.ref()), nil
	case Fraction:
		return a.ref().Cmp(y.(Fraction).ref()), nil
	case Unit:
		b := y.(Unit)
		if !a.compatible(b) {
			return 0, fmt.Errorf("Compare(%s,%s): %w", a, b, ErrIncompatibleUnits)
		}

		return compareFloats(a.normalized(), b.normalized(), eps), nil
	case Complex:
		return 0, fmt.Errorf("Compare(%s): %w", KindComplex, ErrNoOrdering)
	default:
		return 0, fmt.Errorf("Compare(%s): %w", x.Kind(), ErrKindMismatch)
	}
}

// compareFloats is the epsilon-tolerant three-way float comparison.
func compareFloats(a, b, eps float64) int {
	switch {
	case NearlyEqual(a, b, eps):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// EqualWithin reports epsilon-tolerant equality of x and y. Unlike Compare it
// supports Complex operands (component-wise tolerant equality). Units with
// mismatched bases still fail with ErrIncompatibleUnits.
//
// Complexity: O(1) plus big-number arithmetic where applicable.
func EqualWithin(x, y Value, eps float64) (bool, error) {
	// Complex equality is component-wise; handle it before Promote, which
	// would reject mixed pairs involving Complex.
	if cx, ok := x.(Complex); ok {
		if cy, ok2 := y.(Complex); ok2 {
			a, b := complex128(cx), complex128(cy)

			return NearlyEqual(real(a), real(b), eps) && NearlyEqual(imag(a), imag(b), eps), nil
		}
	}

	c, err := Compare(x, y, eps)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}

// Equal reports exact structural equality of two values of the same kind.
// Mixed kinds are unequal without error. Intended for tests and conversion
// round-trip checks, not for operator semantics (those are tolerance-aware).
func Equal(x, y Value) bool {
	if x.Kind() != y.Kind() {
		return false
	}
	switch a := x.(type) {
	case Number:
		return a == y.(Number)
	case Bool:
		return a == y.(Bool)
	case BigNumber:
		return a.ref().Cmp(y.(BigNumber).ref()) == 0
	case Fraction:
		return a.ref().Cmp(y.(Fraction).ref()) == 0
	case Complex:
		return a == y.(Complex)
	case Unit:
		b := y.(Unit)

		return a.name == b.name && a.mag == b.mag
	default:
		return false
	}
}
