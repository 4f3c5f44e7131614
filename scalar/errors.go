// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All scalar-semantics failures surface as one of these sentinels, wrapped
// with call-site context via fmt.Errorf("Tag: %w", Err). Callers match with
// errors.Is. Panics are reserved for programmer errors elsewhere.

package scalar

import "errors"

var (
	// ErrBadNumber signals a value with no representation in the requested
	// kind (zero denominator, NaN/Inf rational, unparsable text).
	ErrBadNumber = errors.New("scalar: value not representable")

	// ErrNoOrdering signals an ordering comparison over a kind with no total
	// order (complex numbers).
	ErrNoOrdering = errors.New("scalar: kind has no ordering")

	// ErrIncompatibleUnits signals a comparison or addition of units whose
	// base dimensions differ (e.g. meters vs grams).
	ErrIncompatibleUnits = errors.New("scalar: incompatible unit base")

	// ErrUnknownUnit signals a unit name absent from the unit table.
	ErrUnknownUnit = errors.New("scalar: unknown unit")

	// ErrKindMismatch signals a pair of kinds with no common promoted kind
	// (e.g. Unit vs Number).
	ErrKindMismatch = errors.New("scalar: no common kind for operands")

	// ErrUnsupportedOperand signals an arithmetic operation a kind does not
	// support (e.g. multiplying units, adding complex to unit).
	ErrUnsupportedOperand = errors.New("scalar: unsupported operand kind")
)
