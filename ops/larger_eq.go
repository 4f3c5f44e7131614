// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewLargerEq builds the "is larger than or equal" operator: true when x is
// greater than y or nearly equal to it within the configured epsilon.
//
// largerEq(0, 0) is true — NOT the canonical zero — so the merge-join
// shortcut is unsound for this operator: its Sparse×Sparse rule densifies
// both operands first, and its Sparse×scalar results densify whenever the
// test value op(0, scalar) comes out true.
func NewLargerEq(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("largerEq", buildRules(largerEqFn(o.eps), false))
}

// largerEqFn is the scalar core of NewLargerEq, closed over the tolerance.
func largerEqFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		c, err := scalar.Compare(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(c >= 0), nil
	}
}
