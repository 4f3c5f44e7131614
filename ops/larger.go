// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// NewLarger builds the strict "is larger than" operator: true when x is
// strictly greater than y and the two are not nearly equal within the
// configured epsilon.
//
// Semantics per kind: epsilon-tolerant for Number and BigNumber, exact for
// Fraction, base-checked for Unit (ErrIncompatibleUnits on mismatch),
// rejected for Complex (ErrNoOrdering). Matrix operands are combined
// element-wise; comparison results are Bool, whose canonical zero is false,
// so sparse results store only the true cells.
//
// larger(0, 0) is false — the canonical zero — so Sparse×Sparse operands
// run through the O(nnz) merge-join.
func NewLarger(opts ...Option) dispatch.Func {
	o := gatherOptions(opts...)

	return dispatch.New("larger", buildRules(largerFn(o.eps), true))
}

// largerFn is the scalar core of NewLarger, closed over the tolerance.
func largerFn(eps float64) matrix.Operator {
	return func(a, b scalar.Value) (scalar.Value, error) {
		c, err := scalar.Compare(a, b, eps)
		if err != nil {
			return nil, err
		}

		return scalar.Bool(c > 0), nil
	}
}
