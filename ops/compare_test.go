// SPDX-License-Identifier: MIT

package ops_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/ops"
	"github.com/katalvlaran/numkit/scalar"
	"github.com/stretchr/testify/require"
)

// TestCompare_Scalars verifies the three-way sign result.
func TestCompare_Scalars(t *testing.T) {
	compare := ops.NewCompare()

	out, err := compare(2.0, 5.0)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(-1), out)

	out, err = compare(5.0, 2.0)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(1), out)

	out, err = compare(1.0, 1.0+1e-12)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(0), out, "nearly equal compares as 0")
}

// TestCompare_Sparse verifies that compare(0, 0) = 0 keeps the merge-join:
// only the ±1 cells of disjoint operands are stored.
func TestCompare_Sparse(t *testing.T) {
	compare := ops.NewCompare()
	a := sparseOf(t, 2, 2, tnum(0, 0, 3))
	b := sparseOf(t, 2, 2, tnum(1, 1, 4))

	out, err := compare(a, b)
	require.NoError(t, err)
	sp, ok := out.(*matrix.Sparse)
	require.True(t, ok)
	require.Equal(t, 2, sp.NNZ())
	require.NoError(t, matrix.ValidateSparseWellFormed(sp))

	v, err := sp.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(1), v, "3 vs implicit 0")
	v, err = sp.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(-1), v, "implicit 0 vs 4")
	v, err = sp.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, scalar.Number(0), v, "0 vs 0 stays implicit")
}

// TestOptions verifies the tolerance option's validation and default.
func TestOptions(t *testing.T) {
	require.Equal(t, 1e-9, ops.DefaultEpsilon)

	require.Panics(t, func() { ops.WithEpsilon(-1) })
	require.Panics(t, func() { ops.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { ops.WithEpsilon(math.Inf(1)) })

	// A wider tolerance folds a visibly different pair into equality.
	loose := ops.NewEqual(ops.WithEpsilon(0.5))
	out, err := loose(2.0, 2.9)
	require.NoError(t, err)
	require.Equal(t, scalar.Bool(true), out)
}
