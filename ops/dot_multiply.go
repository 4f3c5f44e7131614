// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/numkit/dispatch"
	"github.com/katalvlaran/numkit/scalar"
)

// NewDotMultiply builds the element-wise (Hadamard) multiplication
// operator. multiply(0, 0) is 0, so Sparse×Sparse operands use the
// merge-join; entries explicit in only one operand multiply against the
// implicit zero and vanish from the result, making the output's non-zero
// set the intersection of the operands' non-zero sets. Units do not
// multiply (ErrUnsupportedOperand).
func NewDotMultiply(opts ...Option) dispatch.Func {
	gatherOptions(opts...) // resolved for validation; multiplication is exact

	return dispatch.New("dotMultiply", buildRules(scalar.Multiply, true))
}
