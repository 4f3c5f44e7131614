// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/scalar"
)

// NewSubtract builds the element-wise subtraction operator. Kind semantics
// mirror NewAdd; subtract(0, 0) is 0, so sparse structure survives the
// merge-join.
func NewSubtract(opts ...Option) dispatch.Func {
	gatherOptions(opts...) // resolved for validation; subtraction is exact

	return dispatch.New("subtract", buildRules(scalar.Subtract, true))
}
