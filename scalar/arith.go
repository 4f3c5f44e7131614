// SPDX-License-Identifier: MIT
// Package scalar: exact arithmetic kernels.
//
// These are the per-kind scalar semantics behind the arithmetic operator
// definitions (add, subtract, dot-multiply). Mixed promotable kinds are
// lifted to their common kind first; results keep that kind. All kernels are
// pure and total over the kinds they accept.

package scalar

import (
	"fmt"
	"math/big"
)

// Add returns x + y at the operands' common kind.
// Units add only when they carry the same unit name (no conversion
// arithmetic); mismatched names fail with ErrIncompatibleUnits.
func Add(x, y Value) (Value, error) {
	return arith("Add", x, y,
		func(a, b float64) float64 { return a + b },
		(*big.Float).Add,
		(*big.Rat).Add,
		func(a, b complex128) complex128 { return a + b },
	)
}

// Subtract returns x − y at the operands' common kind. Unit policy matches Add.
func Subtract(x, y Value) (Value, error) {
	return arith("Subtract", x, y,
		func(a, b float64) float64 { return a - b },
		(*big.Float).Sub,
		(*big.Rat).Sub,
		func(a, b complex128) complex128 { return a - b },
	)
}

// Multiply returns x · y at the operands' common kind. Units do not
// multiply (that would create composite dimensions, which this library does
// not model) and fail with ErrUnsupportedOperand.
func Multiply(x, y Value) (Value, error) {
	if x.Kind() == KindUnit || y.Kind() == KindUnit {
		return nil, fmt.Errorf("Multiply: %s: %w", KindUnit, ErrUnsupportedOperand)
	}

	return arith("Multiply", x, y,
		func(a, b float64) float64 { return a * b },
		(*big.Float).Mul,
		(*big.Rat).Mul,
		func(a, b complex128) complex128 { return a * b },
	)
}

// arith promotes the operands and applies the kernel matching their common
// kind. Booleans are computed as 0/1 numbers (their sum is a Number).
func arith(
	tag string,
	x, y Value,
	numFn func(a, b float64) float64,
	bigFn func(z, a, b *big.Float) *big.Float,
	ratFn func(z, a, b *big.Rat) *big.Rat,
	cplxFn func(a, b complex128) complex128,
) (Value, error) {
	x, y, err := Promote(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	switch a := x.(type) {
	case Number:
		return Number(numFn(float64(a), float64(y.(Number)))), nil
	case Bool:
		return Number(numFn(float64(boolToNumber(a)), float64(boolToNumber(y.(Bool))))), nil
	case BigNumber:
		z := new(big.Float)

		return BigNumber{f: bigFn(z, a.ref(), y.(BigNumber).ref())}, nil
	case Fraction:
		z := new(big.Rat)

		return Fraction{r: ratFn(z, a.ref(), y.(Fraction).ref())}, nil
	case Complex:
		return Complex(cplxFn(complex128(a), complex128(y.(Complex)))), nil
	case Unit:
		b := y.(Unit)
		switch {
		case a.name == "": // canonical zero: adopt the other operand's unit
			return Unit{mag: numFn(0, b.mag), name: b.name}, nil
		case b.name == "":
			return Unit{mag: numFn(a.mag, 0), name: a.name}, nil
		case a.name != b.name:
			return nil, fmt.Errorf("%s(%s,%s): %w", tag, a, b, ErrIncompatibleUnits)
		default:
			return Unit{mag: numFn(a.mag, b.mag), name: a.name}, nil
		}
	default:
		return nil, fmt.Errorf("%s(%s): %w", tag, x.Kind(), ErrKindMismatch)
	}
}
