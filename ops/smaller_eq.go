// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewSmallerEq builds the "is smaller than or equal" operator: true when x
// is less than y or nearly equal to it within the configured epsilon.
// Like largerEq, smallerEq(0, 0) is true, so its Sparse×Sparse rule
// densifies instead of using the merge-join.
func NewSmallerEq(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("smallerEq", buildRules(smallerEqFn(o.eps), false))
}

// smallerEqFn is the scalar core of NewSmallerEq, closed over the tolerance.
func smallerEqFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		c, err := scalar.Compare(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(c <= 0), nil
	}
}
