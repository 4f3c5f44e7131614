// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewEqual builds the epsilon-tolerant equality operator. Unlike the
// ordering operators it supports Complex operands (component-wise tolerant
// equality); units still require matching base dimensions.
//
// equal(0, 0) is true — the canonical counter-example to the
// op(zero, zero) == zero precondition — so the Sparse×Sparse rule converts
// both operands to Dense before combining, and Sparse×scalar operands
// densify whenever the scalar itself is (nearly) zero.
func NewEqual(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("equal", buildRules(equalFn(o.eps), false))
}

// NewUnequal builds the negated equality operator. unequal(0, 0) is false —
// the canonical zero — so, unlike equal, its Sparse×Sparse rule may use the
// O(nnz) merge-join.
func NewUnequal(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("unequal", buildRules(unequalFn(o.eps), true))
}

// equalFn is the scalar core of NewEqual, closed over the tolerance.
func equalFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		eq, err := scalar.EqualWithin(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(eq), nil
	}
}

// unequalFn is the scalar core of NewUnequal.
func unequalFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		eq, err := scalar.EqualWithin(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(!eq), nil
	}
}
