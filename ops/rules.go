// SPDX-License-Identifier: MIT

// Package ops: shared rule-table scaffolding.
//
// Every operator's dispatch table has the same silhouette: six same-kind
// scalar rules calling the operator's scalar core directly, plus eight
// matrix rules routing through the element-wise combinators. The only
// degree of freedom is whether Sparse×Sparse may use the O(nnz) merge-join
// (legal iff the scalar core maps (zero, zero) to the canonical zero) or
// must densify first. buildRules captures that silhouette once; the
// per-operator files stay down to their scalar semantics.

package ops

import (
	"fmt"

	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// scalarKindTokens are the same-kind scalar patterns every operator
// registers. Mixed promotable pairs reach these through the dispatcher's
// promotion retry; unsupported semantics (ordering complex numbers,
// mismatched unit bases) surface from the scalar core itself.
var scalarKindTokens = []string{
	"Number", "BigNumber", "Fraction", "Bool", "Complex", "Unit",
}

// buildRules assembles the full rule table for an operator whose scalar
// semantics are fn. sparseSafe declares that fn(zero, zero) is the
// canonical zero, unlocking the Sparse×Sparse merge-join; operators that
// violate the precondition (equal) pass false and densify instead.
func buildRules(fn matrix.Operator, sparseSafe bool) []dispatch.Rule {
	rules := make([]dispatch.Rule, 0, len(scalarKindTokens)+8)

	// Scalar pairs: the core applies directly.
	for _, k := range scalarKindTokens {
		rules = append(rules, dispatch.Rule{
			Pattern: k + "," + k,
			Handler: scalarHandler(fn),
		})
	}

	// Matrix pairs: route through the combinators.
	sparseSparse := sparseSparseHandler(fn)
	if !sparseSafe {
		sparseSparse = sparseSparseDenseHandler(fn)
	}
	rules = append(rules,
		dispatch.Rule{Pattern: "Dense,Dense", Handler: denseDenseHandler(fn)},
		dispatch.Rule{Pattern: "Sparse,Sparse", Handler: sparseSparse},
		dispatch.Rule{Pattern: "Sparse,Dense", Handler: sparseDenseHandler(fn, false)},
		dispatch.Rule{Pattern: "Dense,Sparse", Handler: sparseDenseHandler(fn, true)},
		dispatch.Rule{Pattern: "Dense,any", Handler: denseScalarHandler(fn, false)},
		dispatch.Rule{Pattern: "any,Dense", Handler: denseScalarHandler(fn, true)},
		dispatch.Rule{Pattern: "Sparse,any", Handler: sparseScalarHandler(fn, false)},
		dispatch.Rule{Pattern: "any,Sparse", Handler: sparseScalarHandler(fn, true)},
	)

	return rules
}

// scalarHandler adapts the scalar core to the dispatch.Handler signature.
func scalarHandler(fn matrix.Operator) dispatch.Handler {
	return func(x, y any) (any, error) {
		a, err := asScalar(x)
		if err != nil {
			return nil, err
		}
		b, err := asScalar(y)
		if err != nil {
			return nil, err
		}

		return fn(a, b)
	}
}

// denseDenseHandler wires the Dense×Dense combinator.
func denseDenseHandler(fn matrix.Operator) dispatch.Handler {
	return func(x, y any) (any, error) {
		return matrix.CombineDenseDense(x.(*matrix.Dense), y.(*matrix.Dense), fn)
	}
}

// sparseSparseHandler wires the O(nnz) Sparse×Sparse merge-join.
func sparseSparseHandler(fn matrix.Operator) dispatch.Handler {
	return func(x, y any) (any, error) {
		return matrix.CombineSparseSparse(x.(*matrix.Sparse), y.(*matrix.Sparse), fn)
	}
}

// sparseSparseDenseHandler densifies both Sparse operands before combining —
// the route for operators whose core violates op(zero, zero) == zero.
func sparseSparseDenseHandler(fn matrix.Operator) dispatch.Handler {
	return func(x, y any) (any, error) {
		dx, err := matrix.ToDense(x.(*matrix.Sparse))
		if err != nil {
			return nil, err
		}
		dy, err := matrix.ToDense(y.(*matrix.Sparse))
		if err != nil {
			return nil, err
		}

		return matrix.CombineDenseDense(dx, dy, fn)
	}
}

// sparseDenseHandler wires the mixed-format combinator. mirrored=false
// serves the (Sparse, Dense) pattern, mirrored=true the (Dense, Sparse)
// pattern; in both cases op receives its arguments in caller order.
func sparseDenseHandler(fn matrix.Operator, mirrored bool) dispatch.Handler {
	return func(x, y any) (any, error) {
		if mirrored {
			return matrix.CombineSparseDense(y.(*matrix.Sparse), x.(*matrix.Dense), fn, true)
		}

		return matrix.CombineSparseDense(x.(*matrix.Sparse), y.(*matrix.Dense), fn, false)
	}
}

// denseScalarHandler wires the Dense×scalar combinator. scalarLeft=true
// serves the (any, Dense) pattern, i.e. the scalar is op's first argument.
func denseScalarHandler(fn matrix.Operator, scalarLeft bool) dispatch.Handler {
	return func(x, y any) (any, error) {
		if scalarLeft {
			v, err := asScalar(x)
			if err != nil {
				return nil, err
			}

			return matrix.CombineDenseScalar(y.(*matrix.Dense), v, fn, true)
		}
		v, err := asScalar(y)
		if err != nil {
			return nil, err
		}

		return matrix.CombineDenseScalar(x.(*matrix.Dense), v, fn, false)
	}
}

// sparseScalarHandler wires the Sparse×scalar combinator (the one that
// decides between staying Sparse and densifying). scalarLeft=true serves
// the (any, Sparse) pattern.
func sparseScalarHandler(fn matrix.Operator, scalarLeft bool) dispatch.Handler {
	return func(x, y any) (any, error) {
		if scalarLeft {
			v, err := asScalar(x)
			if err != nil {
				return nil, err
			}

			return matrix.CombineSparseScalar(y.(*matrix.Sparse), v, fn, true)
		}
		v, err := asScalar(y)
		if err != nil {
			return nil, err
		}

		return matrix.CombineSparseScalar(x.(*matrix.Sparse), v, fn, false)
	}
}

// asScalar narrows a dispatched operand to the scalar union. Wildcard
// patterns can capture operands of unrecognized kinds; reject those with
// the scalar sentinel instead of panicking.
func asScalar(v any) (scalar.Value, error) {
	s, ok := v.(scalar.Value)
	if !ok {
		return nil, fmt.Errorf("ops: operand %T is not a scalar: %w", v, scalar.ErrKindMismatch)
	}

	return s, nil
}
