// SPDX-License-Identifier: MIT

package scalar_test

import (
	"testing"

	"github.com/katalvlaran/numkit/scalar"
	"github.com/stretchr/testify/require"
)

// TestAdd_SameKind verifies addition at each kind of the union.
func TestAdd_SameKind(t *testing.T) {
	v, err := scalar.Add(scalar.Number(2), scalar.Number(3))
	require.NoError(t, err)
	require.Equal(t, scalar.Number(5), v)

	v, err = scalar.Add(scalar.Bool(true), scalar.Bool(true))
	require.NoError(t, err)
	require.Equal(t, scalar.Number(2), v, "booleans add as 0/1 numbers")

	v, err = scalar.Add(scalar.NewBigNumber(1.5), scalar.NewBigNumber(2.5))
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, scalar.NewBigNumber(4)))

	half, err := scalar.NewFraction(1, 2)
	require.NoError(t, err)
	third, err := scalar.NewFraction(1, 3)
	require.NoError(t, err)
	fiveSixths, err := scalar.NewFraction(5, 6)
	require.NoError(t, err)
	v, err = scalar.Add(half, third)
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, fiveSixths), "rational addition is exact")

	v, err = scalar.Add(scalar.Complex(complex(1, 2)), scalar.Complex(complex(3, -1)))
	require.NoError(t, err)
	require.Equal(t, scalar.Complex(complex(4, 1)), v)
}

// TestAdd_Promotion verifies that mixed promotable kinds meet at the common
// kind and the result keeps it.
func TestAdd_Promotion(t *testing.T) {
	quarter, err := scalar.NewFraction(1, 4)
	require.NoError(t, err)
	threeQuarters, err := scalar.NewFraction(3, 4)
	require.NoError(t, err)

	v, err := scalar.Add(scalar.Number(0.5), quarter)
	require.NoError(t, err)
	require.Equal(t, scalar.KindFraction, v.Kind(), "Number lifts to Fraction")
	require.True(t, scalar.Equal(v, threeQuarters))

	v, err = scalar.Add(scalar.Number(1), scalar.NewBigNumber(2))
	require.NoError(t, err)
	require.Equal(t, scalar.KindBigNumber, v.Kind(), "Number lifts to BigNumber")
	require.True(t, scalar.Equal(v, scalar.NewBigNumber(3)))

	_, err = scalar.Add(scalar.Number(1), scalar.Complex(1i))
	require.ErrorIs(t, err, scalar.ErrKindMismatch, "Complex sits outside the lattice")
}

// TestAdd_Units verifies the same-name-only unit addition policy.
func TestAdd_Units(t *testing.T) {
	a, err := scalar.NewUnit(1, "m")
	require.NoError(t, err)
	b, err := scalar.NewUnit(2, "m")
	require.NoError(t, err)
	cm, err := scalar.NewUnit(5, "cm")
	require.NoError(t, err)

	v, err := scalar.Add(a, b)
	require.NoError(t, err)
	want, err := scalar.NewUnit(3, "m")
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, want))

	// Same base, different name: no conversion arithmetic.
	_, err = scalar.Add(a, cm)
	require.ErrorIs(t, err, scalar.ErrIncompatibleUnits)

	// The canonical zero adopts the other operand's unit.
	v, err = scalar.Add(scalar.Zero(scalar.KindUnit), b)
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, b))
}

// TestSubtract verifies ordering of the operands and kind preservation.
func TestSubtract(t *testing.T) {
	v, err := scalar.Subtract(scalar.Number(2), scalar.Number(5))
	require.NoError(t, err)
	require.Equal(t, scalar.Number(-3), v)

	a, err := scalar.NewUnit(3, "s")
	require.NoError(t, err)
	b, err := scalar.NewUnit(1, "s")
	require.NoError(t, err)
	v, err = scalar.Subtract(a, b)
	require.NoError(t, err)
	want, err := scalar.NewUnit(2, "s")
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, want))
}

// TestMultiply verifies multiplication and its unit rejection.
func TestMultiply(t *testing.T) {
	v, err := scalar.Multiply(scalar.Number(4), scalar.Number(2.5))
	require.NoError(t, err)
	require.Equal(t, scalar.Number(10), v)

	half, err := scalar.NewFraction(1, 2)
	require.NoError(t, err)
	third, err := scalar.NewFraction(1, 3)
	require.NoError(t, err)
	sixth, err := scalar.NewFraction(1, 6)
	require.NoError(t, err)
	v, err = scalar.Multiply(half, third)
	require.NoError(t, err)
	require.True(t, scalar.Equal(v, sixth))

	v, err = scalar.Multiply(scalar.Complex(1i), scalar.Complex(1i))
	require.NoError(t, err)
	require.Equal(t, scalar.Complex(-1), v)

	// Units would create composite dimensions; the library does not model them.
	u, err := scalar.NewUnit(2, "m")
	require.NoError(t, err)
	_, err = scalar.Multiply(u, u)
	require.ErrorIs(t, err, scalar.ErrUnsupportedOperand)
	_, err = scalar.Multiply(u, scalar.Number(2))
	require.ErrorIs(t, err, scalar.ErrUnsupportedOperand)
}

// TestPromote verifies the lattice directly: pass-through, lift direction and
// the non-promotable rejections.
func TestPromote(t *testing.T) {
	x, y, err := scalar.Promote(scalar.Number(1), scalar.Number(2))
	require.NoError(t, err)
	require.Equal(t, scalar.Number(1), x)
	require.Equal(t, scalar.Number(2), y)

	x, y, err = scalar.Promote(scalar.Bool(true), scalar.NewBigNumber(2))
	require.NoError(t, err)
	require.Equal(t, scalar.KindBigNumber, x.Kind(), "Bool lifts through Number to BigNumber")
	require.True(t, scalar.Equal(x, scalar.NewBigNumber(1)))
	require.Equal(t, scalar.KindBigNumber, y.Kind())

	half, err := scalar.NewFraction(1, 2)
	require.NoError(t, err)
	x, y, err = scalar.Promote(half, scalar.NewBigNumber(2))
	require.NoError(t, err)
	require.Equal(t, scalar.KindBigNumber, x.Kind(), "Fraction lifts to BigNumber")
	require.True(t, scalar.Equal(x, scalar.NewBigNumber(0.5)))
	require.Equal(t, scalar.KindBigNumber, y.Kind())

	_, _, err = scalar.Promote(scalar.Number(1), scalar.Complex(1i))
	require.ErrorIs(t, err, scalar.ErrKindMismatch)
	u, err := scalar.NewUnit(1, "m")
	require.NoError(t, err)
	_, _, err = scalar.Promote(scalar.Number(1), u)
	require.ErrorIs(t, err, scalar.ErrKindMismatch)

	// Same non-promotable kind passes through untouched.
	x, y, err = scalar.Promote(u, u)
	require.NoError(t, err)
	require.Equal(t, scalar.Value(u), x)
	require.Equal(t, scalar.Value(u), y)
}
