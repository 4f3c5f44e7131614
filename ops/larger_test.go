// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/ops"
	"github.com/katalvlaran/numkit/scalar"
	"github.com/stretchr/testify/require"
)

// tnum is shorthand for a Number triplet.
func tnum(r, c int, v float64) matrix.Triplet {
	return matrix.Triplet{Row: r, Col: c, Val: scalar.Number(v)}
}

// sparseOf builds a Sparse from coordinate entries.
func sparseOf(t *testing.T, rows, cols int, trips ...matrix.Triplet) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparseFromTriplets(rows, cols, trips)
	require.NoError(t, err)

	return s
}

// denseOf builds a rank-2 Dense from row-major float64 values.
func denseOf(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, rows*cols)
	data := make([]scalar.Value, len(vals))
	for i, v := range vals {
		data[i] = scalar.Number(v)
	}
	d, err := matrix.NewDenseOf(data, matrix.Shape{rows, cols})
	require.NoError(t, err)

	return d
}

// TestLarger_Scalars verifies the strict ordering on plain numbers, with raw
// Go primitives accepted at the boundary.
func TestLarger_Scalars(t *testing.T) {
	larger := ops.NewLarger()

	out, err := larger(5.0, 2.0)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(true), out)

	out, err = larger(2, 5)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(false), out)

	out, err = larger(scalar.Number(1), scalar.NewBigNumber(1))
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(false), out, "mixed kinds promote before comparing")
}

// TestLarger_DenseVectors verifies element-wise comparison of two nested
// sequences, with Array in ⇒ Array out.
func TestLarger_DenseVectors(t *testing.T) {
	larger := ops.NewLarger()

	out, err := larger([]any{2.0, 5.0}, []any{5.0, 4.0})
	require.NoError(t, err)
	require.Equal(t, []any{scalar.Bool(false), scalar.Bool(true)}, out)
}

// TestLarger_SparseAgainstZero verifies the sparsity-preserving path:
// larger(0, 0) is false, the canonical zero, so implicit entries stay
// implicit and only the winning cells are stored.
func TestLarger_SparseAgainstZero(t *testing.T) {
	larger := ops.NewLarger()
	s := sparseOf(t, 2, 2, tnum(1, 1, 5))

	out, err := larger(s, 0.0)
	require.NoError(t, err)
	sp, ok := out.(*matrix.Sparse)
	require.True(t, ok, "comparing against zero preserves sparsity")
	require.Equal(t, 1, sp.NNZ())
	require.NoError(t, matrix.ValidateSparseWellFormed(sp))

	v, err := sp.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(true), v)
	v, err = sp.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(false), v, "absence reads as the Bool zero")
}

// TestLarger_SparseAgainstNegative verifies the densifying path: every
// implicit zero is larger than a negative scalar, so the result must be
// Dense.
func TestLarger_SparseAgainstNegative(t *testing.T) {
	larger := ops.NewLarger()
	s := sparseOf(t, 2, 2, tnum(1, 1, 5))

	out, err := larger(s, -1.0)
	require.NoError(t, err)
	d, ok := out.(*matrix.Dense)
	require.True(t, ok, "0 > −1 everywhere: the result cannot stay sparse")
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, atErr := d.At(i, j)
			require.NoError(t, atErr)
			require.Equal(t, scalar.Bool(true), v)
		}
	}
}

// TestLarger_DisjointSparse verifies the merge-join on operands with disjoint
// support: every one-sided entry is compared against the implicit zero.
func TestLarger_DisjointSparse(t *testing.T) {
	larger := ops.NewLarger()
	a := sparseOf(t, 3, 3, tnum(0, 0, 1), tnum(1, 1, 2))
	b := sparseOf(t, 3, 3, tnum(0, 1, -4), tnum(2, 2, -3))

	out, err := larger(a, b)
	require.NoError(t, err)
	sp, ok := out.(*matrix.Sparse)
	require.True(t, ok)
	require.Equal(t, 4, sp.NNZ(), "positive-vs-0 and 0-vs-negative cells all win")
	require.NoError(t, matrix.ValidateSparseWellFormed(sp))

	// The sparse route agrees with the densified route cell for cell.
	da, err := matrix.ToDense(a)
	require.NoError(t, err)
	db, err := matrix.ToDense(b)
	require.NoError(t, err)
	denseOut, err := larger(da, db)
	require.NoError(t, err)
	eq, err := matrix.Equal(sp, denseOut.(*matrix.Dense))
	require.NoError(t, err)
	require.True(t, eq)
}

// TestLarger_MixedFormats verifies the sparse/dense pairings and their
// argument ordering.
func TestLarger_MixedFormats(t *testing.T) {
	larger := ops.NewLarger()
	s := sparseOf(t, 2, 2, tnum(0, 0, 10))
	d := denseOf(t, 2, 2, 1, -1, -1, 1)

	out, err := larger(s, d)
	require.NoError(t, err)
	dd, ok := out.(*matrix.Dense)
	require.True(t, ok, "mixed formats produce Dense")
	want := []scalar.Value{scalar.Bool(true), scalar.Bool(true), scalar.Bool(true), scalar.Bool(false)}
	for i, w := range want {
		v, atErr := dd.At(i/2, i%2)
		require.NoError(t, atErr)
		require.Equal(t, w, v, "cell (%d,%d)", i/2, i%2)
	}

	// Flipped operands flip the strict cells.
	out, err = larger(d, s)
	require.NoError(t, err)
	dd, ok = out.(*matrix.Dense)
	require.True(t, ok)
	v, err := dd.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(false), v, "1 > 10 is false")
}

// TestLarger_ShapeMismatch verifies that shape disagreement fails identically
// across every operand pairing.
func TestLarger_ShapeMismatch(t *testing.T) {
	larger := ops.NewLarger()
	d2 := denseOf(t, 2, 2, 0, 0, 0, 0)
	d3 := denseOf(t, 3, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	s2 := sparseOf(t, 2, 2, tnum(0, 0, 1))
	s3 := sparseOf(t, 3, 3, tnum(0, 0, 1))

	_, err := larger(d2, d3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = larger(s2, s3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = larger(s2, d3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = larger(d2, s3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLarger_Epsilon verifies the tolerance boundary: nearly equal values are
// not strictly larger, and eps = 0 restores exact comparison.
func TestLarger_Epsilon(t *testing.T) {
	larger := ops.NewLarger()

	out, err := larger(1.0+1e-12, 1.0)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(false), out, "within the default tolerance")

	exact := ops.NewLarger(ops.WithEpsilon(0))
	out, err = exact(1.0+1e-12, 1.0)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(true), out)
}

// TestLarger_Units verifies dimensional comparison through the operator.
func TestLarger_Units(t *testing.T) {
	larger := ops.NewLarger()

	cm, err := scalar.NewUnit(200, "cm")
	require.NoError(t, err)
	m, err := scalar.NewUnit(1, "m")
	require.NoError(t, err)
	kg, err := scalar.NewUnit(1, "kg")
	require.NoError(t, err)

	out, err := larger(cm, m)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(true), out, "200 cm > 1 m after normalization")

	_, err = larger(m, kg)
	require.ErrorIs(t, err, scalar.ErrIncompatibleUnits)
}

// TestLarger_UnsupportedOperands verifies the error surface for operands the
// rule table cannot serve.
func TestLarger_UnsupportedOperands(t *testing.T) {
	larger := ops.NewLarger()

	_, err := larger(scalar.Complex(1i), scalar.Complex(2i))
	require.ErrorIs(t, err, scalar.ErrNoOrdering, "complex numbers have no ordering")

	_, err = larger("nope", 1.0)
	require.ErrorIs(t, err, dispatch.ErrTypeMismatch)
}
