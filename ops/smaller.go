// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewSmaller builds the strict "is smaller than" operator: true when x is
// strictly less than y and the two are not nearly equal within the
// configured epsilon. Kind semantics mirror NewLarger.
func NewSmaller(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("smaller", buildRules(smallerFn(o.eps), true))
}

// smallerFn is the scalar core of NewSmaller, closed over the tolerance.
func smallerFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		c, err := scalar.Compare(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(c < 0), nil
	}
}
