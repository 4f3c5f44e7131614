// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/scalar"
)

// NewAdd builds the element-wise addition operator. Mixed promotable scalar
// kinds meet at their common kind; units add only under matching unit names
// (no conversion arithmetic). add(0, 0) is 0, so Sparse×Sparse addition is
// O(nnz) — and cancellation (x + (−x)) drops entries from the result rather
// than storing explicit zeros.
//
// Addition takes no tolerance; options are accepted for signature symmetry
// with the comparison operators.
func NewAdd(opts ...Option) dispatch.Func {
	gatherOptions(opts...) // resolved for validation; addition is exact

	return dispatch.New("add", buildRules(scalar.Add, true))
}
