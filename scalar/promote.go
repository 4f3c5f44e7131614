// SPDX-License-Identifier: MIT
// Package scalar: kind promotion.
//
// Mixed-kind operand pairs meet at the smallest lossless common kind along a
// fixed lattice: Bool < Number < Fraction < BigNumber. Every lift on the
// lattice is exact — bool to 0/1, float64 to its exact rational
// (big.Rat.SetFloat64), float64/rational to arbitrary precision. Complex and
// Unit sit outside the lattice: there is no safe lifting into or out of them.

package scalar

import (
	"fmt"
	"math/big"
)

// promotionRank orders the promotable kinds. Higher rank wins.
// Kinds outside the lattice report -1.
func promotionRank(k Kind) int {
	switch k {
	case KindBool:
		return 0
	case KindNumber:
		return 1
	case KindFraction:
		return 2
	case KindBigNumber:
		return 3
	default:
		return -1
	}
}

// Promote lifts a and b to their common kind along the promotion lattice.
// Same-kind pairs pass through untouched. Pairs involving a non-promotable
// kind (Complex, Unit) return ErrKindMismatch unless already same-kind.
//
// Complexity: O(1) plus the cost of one big.Rat/big.Float construction.
func Promote(a, b Value) (Value, Value, error) {
	if a.Kind() == b.Kind() {
		return a, b, nil
	}

	ra, rb := promotionRank(a.Kind()), promotionRank(b.Kind())
	if ra < 0 || rb < 0 {
		return nil, nil, fmt.Errorf("Promote(%s,%s): %w", a.Kind(), b.Kind(), ErrKindMismatch)
	}

	// Lift the lower-ranked operand to the higher-ranked kind.
	if ra < rb {
		lifted, err := lift(a, b.Kind())
		if err != nil {
			return nil, nil, err
		}

		return lifted, b, nil
	}
	lifted, err := lift(b, a.Kind())
	if err != nil {
		return nil, nil, err
	}

	return a, lifted, nil
}

// lift converts v upward to kind k. Callers guarantee rank(v) < rank(k).
func lift(v Value, k Kind) (Value, error) {
	// Normalize Bool to Number first; the remaining lifts start from there.
	if b, ok := v.(Bool); ok {
		v = boolToNumber(b)
		if k == KindNumber {
			return v, nil
		}
	}

	switch k {
	case KindFraction:
		// float64 → exact rational; fails only for NaN/±Inf.
		return FractionFromFloat(float64(v.(Number)))
	case KindBigNumber:
		switch x := v.(type) {
		case Number:
			return NewBigNumber(float64(x)), nil
		case Fraction:
			return BigNumber{f: new(big.Float).SetRat(x.ref())}, nil
		}
	}

	return nil, fmt.Errorf("lift(%s→%s): %w", v.Kind(), k, ErrKindMismatch)
}

// boolToNumber maps false→0 and true→1.
func boolToNumber(b Bool) Number {
	if b {
		return Number(1)
	}

	return Number(0)
}
