// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewCompare builds the three-way sign comparison: Number(−1) when x < y,
// Number(0) when nearly equal within epsilon, Number(+1) when x > y.
// compare(0, 0) is 0 — the canonical zero — so sparse structure survives
// the merge-join, and the result of comparing disjoint sparse operands
// stores only the ±1 cells.
func NewCompare(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("compare", buildRules(compareFn(o.eps), true))
}

// compareFn is the scalar core of NewCompare, closed over the tolerance.
func compareFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		c, err := scalar.Compare(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Number(c), nil
	}
}
