// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
	"github.com/stretchr/testify/require"
)

// tag returns a handler that reports which rule fired.
func tag(name string) dispatch.Handler {
	return func(x, y any) (any, error) { return name, nil }
}

// probeTable is a small table covering exact, promoted and wildcard paths.
func probeTable() dispatch.Func {
	return dispatch.New("probe", []dispatch.Rule{
		{Pattern: "Number,Number", Handler: tag("num")},
		{Pattern: "BigNumber,BigNumber", Handler: tag("big")},
		{Pattern: "Fraction,Fraction", Handler: tag("frac")},
		{Pattern: "Dense,Dense", Handler: tag("dense")},
		{Pattern: "any,Number", Handler: tag("anyNum")},
		{Pattern: "Number,any", Handler: tag("numAny")},
	})
}

// TestDispatch_ExactMatch verifies that concrete kind pairs resolve by exact
// lookup and raw Go primitives normalize into the union first.
func TestDispatch_ExactMatch(t *testing.T) {
	probe := probeTable()

	out, err := probe(scalar.Number(1), scalar.Number(2))
	require.NoError(t, err)
	require.Equal(t, "num", out)

	out, err = probe(1.5, 2) // float64 and int coerce to Number
	require.NoError(t, err)
	require.Equal(t, "num", out)
}

// TestDispatch_PromotionRetry verifies the single promotion retry for mixed
// promotable scalar kinds.
func TestDispatch_PromotionRetry(t *testing.T) {
	probe := probeTable()

	out, err := probe(scalar.Number(1), scalar.NewBigNumber(2))
	require.NoError(t, err)
	require.Equal(t, "big", out, "Number lifts to BigNumber and hits the exact rule")

	half, err := scalar.NewFraction(1, 2)
	require.NoError(t, err)
	out, err = probe(half, scalar.Number(1))
	require.NoError(t, err)
	require.Equal(t, "frac", out, "Number lifts to Fraction")
}

// TestDispatch_WildcardOrder verifies that single-wildcard rules fire in
// registration order after exact and promoted lookups miss.
func TestDispatch_WildcardOrder(t *testing.T) {
	probe := probeTable()

	// (Complex, Number): no exact rule, promotion fails; "any,Number" is the
	// first registered wildcard that matches.
	out, err := probe(scalar.Complex(1i), scalar.Number(2))
	require.NoError(t, err)
	require.Equal(t, "anyNum", out)

	// (Number, Complex): only "Number,any" matches.
	out, err = probe(scalar.Number(2), scalar.Complex(1i))
	require.NoError(t, err)
	require.Equal(t, "numAny", out)

	// (Number, Number) prefers the exact rule over both wildcards.
	out, err = probe(scalar.Number(1), scalar.Number(1))
	require.NoError(t, err)
	require.Equal(t, "num", out)
}

// TestDispatch_TypeMismatch verifies the structured no-rule error.
func TestDispatch_TypeMismatch(t *testing.T) {
	probe := probeTable()

	_, err := probe(scalar.Complex(1i), scalar.Complex(2i))
	require.ErrorIs(t, err, dispatch.ErrTypeMismatch)

	var tm *dispatch.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	require.Equal(t, "probe", tm.Op)
	require.Equal(t, "Complex", tm.KindX)
	require.Equal(t, "Complex", tm.KindY)
}

// TestDispatch_ArrayNormalization verifies Array → Dense normalization on the
// way in and the Array-in ⇒ Array-out conversion on the way back.
func TestDispatch_ArrayNormalization(t *testing.T) {
	first := dispatch.New("first", []dispatch.Rule{
		{Pattern: "Dense,Dense", Handler: func(x, y any) (any, error) { return x, nil }},
	})

	// Both operands are plain nested sequences: the result converts back.
	out, err := first([]any{1.0, 2.0}, []any{3.0, 4.0})
	require.NoError(t, err)
	require.Equal(t, []any{scalar.Number(1), scalar.Number(2)}, out)

	// One operand is a real matrix container: the result stays Dense.
	d, err := matrix.FromNested([]any{3.0, 4.0})
	require.NoError(t, err)
	out, err = first([]any{1.0, 2.0}, d)
	require.NoError(t, err)
	_, ok := out.(*matrix.Dense)
	require.True(t, ok, "matrix operands pin the matrix result type")

	// Ragged input fails during normalization, before resolution.
	_, err = first([]any{[]any{1.0}, []any{1.0, 2.0}}, []any{1.0})
	require.ErrorIs(t, err, matrix.ErrBadNesting)
}

// TestDispatch_ConstructionPanics verifies that malformed rule tables are
// programmer errors.
func TestDispatch_ConstructionPanics(t *testing.T) {
	ok := tag("ok")

	require.Panics(t, func() { dispatch.New("", []dispatch.Rule{{Pattern: "Number,Number", Handler: ok}}) })
	require.Panics(t, func() { dispatch.New("op", nil) })
	require.Panics(t, func() { dispatch.New("op", []dispatch.Rule{{Pattern: "Number", Handler: ok}}) })
	require.Panics(t, func() { dispatch.New("op", []dispatch.Rule{{Pattern: "Number,Banana", Handler: ok}}) })
	require.Panics(t, func() { dispatch.New("op", []dispatch.Rule{{Pattern: "Array,Number", Handler: ok}}) },
		"Array operands normalize to Dense; an Array rule could never fire")
	require.Panics(t, func() { dispatch.New("op", []dispatch.Rule{{Pattern: "any,any", Handler: ok}}) })
	require.Panics(t, func() { dispatch.New("op", []dispatch.Rule{{Pattern: "Number,Number", Handler: nil}}) })
	require.Panics(t, func() {
		dispatch.New("op", []dispatch.Rule{
			{Pattern: "Number,Number", Handler: ok},
			{Pattern: "Number,Number", Handler: ok},
		})
	})
}

// TestDispatch_HandlerErrorsPropagate verifies that handler failures surface
// unmodified.
func TestDispatch_HandlerErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	f := dispatch.New("op", []dispatch.Rule{
		{Pattern: "Number,Number", Handler: func(x, y any) (any, error) { return nil, boom }},
	})

	_, err := f(1.0, 2.0)
	require.ErrorIs(t, err, boom)
}

// TestKindNameOf verifies the runtime kind tokens at the dispatch boundary.
func TestKindNameOf(t *testing.T) {
	require.Equal(t, "Number", dispatch.KindNameOf(1.5))
	require.Equal(t, "Number", dispatch.KindNameOf(scalar.Number(1)))
	require.Equal(t, "Bool", dispatch.KindNameOf(true))
	require.Equal(t, "Complex", dispatch.KindNameOf(scalar.Complex(1i)))
	require.Equal(t, "Array", dispatch.KindNameOf([]any{1.0}))

	d, err := matrix.NewDense(matrix.Shape{1, 1})
	require.NoError(t, err)
	require.Equal(t, "Dense", dispatch.KindNameOf(d))
	s, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)
	require.Equal(t, "Sparse", dispatch.KindNameOf(s))

	require.Equal(t, "string", dispatch.KindNameOf("nope"), "unrecognized operands report their Go type")
}
