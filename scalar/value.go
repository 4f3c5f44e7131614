// SPDX-License-Identifier: MIT
// Package scalar: the sealed Value union and its concrete kinds.

package scalar

import (
	"fmt"
	"math/big"
)

// Kind is the runtime tag of a scalar value. Dispatch tables and matrix
// datatype hints are keyed by these tags, so the set is closed.
type Kind int

// The supported scalar kinds, in promotion-lattice order where applicable.
const (
	KindInvalid Kind = iota
	KindBool
	KindNumber
	KindFraction
	KindBigNumber
	KindComplex
	KindUnit
)

// String returns the canonical kind token used in dispatch patterns and
// datatype tags ("Number", "BigNumber", ...).
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindFraction:
		return "Fraction"
	case KindBigNumber:
		return "BigNumber"
	case KindComplex:
		return "Complex"
	case KindUnit:
		return "Unit"
	default:
		return "Invalid"
	}
}

// Value is the sealed scalar union. Only the concrete types in this package
// implement it; the unexported method keeps the set closed.
type Value interface {
	// Kind returns the runtime tag of the value.
	Kind() Kind
	// String renders the value for diagnostics.
	String() string

	sealed()
}

// Number is a plain float64 scalar.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// String implements Value.
func (n Number) String() string { return fmt.Sprintf("%g", float64(n)) }

func (Number) sealed() {}

// Bool is a boolean scalar. Its canonical zero is false.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// String implements Value.
func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }

func (Bool) sealed() {}

// BigNumber is an arbitrary-precision floating-point scalar backed by
// math/big. Values are treated as immutable: the wrapped *big.Float is never
// mutated after construction, and accessors hand out copies.
type BigNumber struct {
	f *big.Float
}

// NewBigNumber builds a BigNumber from a float64 (exact at 53 bits).
func NewBigNumber(v float64) BigNumber {
	return BigNumber{f: new(big.Float).SetFloat64(v)}
}

// ParseBigNumber builds a BigNumber from its decimal text representation.
// Returns ErrBadNumber when s is not a valid number.
func ParseBigNumber(s string) (BigNumber, error) {
	f, _, err := big.ParseFloat(s, 10, defaultBigPrecision, big.ToNearestEven)
	if err != nil {
		return BigNumber{}, fmt.Errorf("ParseBigNumber(%q): %w", s, ErrBadNumber)
	}

	return BigNumber{f: f}, nil
}

// defaultBigPrecision is the mantissa precision (bits) used when parsing
// BigNumber text. 128 bits comfortably exceeds float64 while staying cheap.
const defaultBigPrecision = 128

// Float returns a copy of the underlying big.Float.
func (b BigNumber) Float() *big.Float { return new(big.Float).Copy(b.ref()) }

// ref returns the internal big.Float, lazily treating the zero value of
// BigNumber as an exact 0 so uninitialized values stay well-behaved.
func (b BigNumber) ref() *big.Float {
	if b.f == nil {
		return new(big.Float)
	}

	return b.f
}

// Kind implements Value.
func (BigNumber) Kind() Kind { return KindBigNumber }

// String implements Value.
func (b BigNumber) String() string { return b.ref().Text('g', -1) }

func (BigNumber) sealed() {}

// Fraction is an exact rational scalar backed by math/big. Like BigNumber it
// is immutable by convention.
type Fraction struct {
	r *big.Rat
}

// NewFraction builds the rational num/den. den must be non-zero; a zero
// denominator returns ErrBadNumber.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("NewFraction(%d/0): %w", num, ErrBadNumber)
	}

	return Fraction{r: big.NewRat(num, den)}, nil
}

// FractionFromFloat builds the exact rational equal to v. NaN and ±Inf have
// no rational representation and return ErrBadNumber.
func FractionFromFloat(v float64) (Fraction, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return Fraction{}, fmt.Errorf("FractionFromFloat(%g): %w", v, ErrBadNumber)
	}

	return Fraction{r: r}, nil
}

// Rat returns a copy of the underlying big.Rat.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).Set(f.ref()) }

// ref returns the internal big.Rat, treating the zero value as 0/1.
func (f Fraction) ref() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// Kind implements Value.
func (Fraction) Kind() Kind { return KindFraction }

// String implements Value.
func (f Fraction) String() string { return f.ref().RatString() }

func (Fraction) sealed() {}

// Complex is a complex128 scalar. It supports equality but has no total
// ordering; ordering operators reject it with ErrNoOrdering.
type Complex complex128

// Kind implements Value.
func (Complex) Kind() Kind { return KindComplex }

// String implements Value.
func (c Complex) String() string { return fmt.Sprintf("%v", complex128(c)) }

func (Complex) sealed() {}

// FromGo coerces a raw Go value into the scalar union. Supported inputs:
// any Value (passed through), float64/float32, the signed integer types,
// bool and complex128. The second result reports success.
func FromGo(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, true
	case float64:
		return Number(x), true
	case float32:
		return Number(x), true
	case int:
		return Number(x), true
	case int32:
		return Number(x), true
	case int64:
		return Number(x), true
	case bool:
		return Bool(x), true
	case complex128:
		return Complex(x), true
	default:
		return nil, false
	}
}

// Zero returns the canonical zero of kind k — the value a sparse container
// treats as "absent". KindInvalid yields nil.
func Zero(k Kind) Value {
	switch k {
	case KindBool:
		return Bool(false)
	case KindNumber:
		return Number(0)
	case KindFraction:
		return Fraction{}
	case KindBigNumber:
		return BigNumber{}
	case KindComplex:
		return Complex(0)
	case KindUnit:
		return Unit{}
	default:
		return nil
	}
}

// IsZero reports whether v is the canonical zero of its own kind. The test
// is exact: numeric tolerance never participates in storage decisions.
func IsZero(v Value) bool {
	switch x := v.(type) {
	case Number:
		return x == 0
	case Bool:
		return !bool(x)
	case BigNumber:
		return x.ref().Sign() == 0
	case Fraction:
		return x.ref().Sign() == 0
	case Complex:
		return x == 0
	case Unit:
		return x.mag == 0
	default:
		return false
	}
}
