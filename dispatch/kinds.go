// SPDX-License-Identifier: MIT
// Package dispatch: runtime kind inspection and operand normalization.

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// Kind tokens for the matrix-shaped operands; scalar tokens come from
// scalar.Kind.String().
const (
	kindDense  = "Dense"
	kindSparse = "Sparse"
	kindArray  = "Array"
	kindAny    = "any"
)

// KindNameOf returns the runtime kind token of an operand: a scalar kind
// token for members of the scalar union (and coercible Go primitives),
// "Dense"/"Sparse" for the matrix containers, "Array" for plain nested
// sequences. Unrecognized operands report their Go type so TypeMismatch
// errors stay readable.
func KindNameOf(v any) string {
	switch x := v.(type) {
	case *matrix.Dense:
		return kindDense
	case *matrix.Sparse:
		return kindSparse
	case []any:
		return kindArray
	default:
		if sv, ok := scalar.FromGo(x); ok {
			return sv.Kind().String()
		}

		return fmt.Sprintf("%T", v)
	}
}

// validKindTokens is the closed set of tokens accepted in rule patterns.
// "Array" is deliberately absent: Array operands are normalized to Dense
// before resolution, so an Array rule could never fire.
var validKindTokens = map[string]struct{}{
	kindAny:                           {},
	kindDense:                         {},
	kindSparse:                        {},
	scalar.KindBool.String():          {},
	scalar.KindNumber.String():        {},
	scalar.KindFraction.String():      {},
	scalar.KindBigNumber.String():     {},
	scalar.KindComplex.String():       {},
	scalar.KindUnit.String():          {},
}

// normalizeOperand coerces a raw operand for resolution: Go primitives join
// the scalar union, nested sequences become Dense. wasArray reports the
// latter so the caller can convert matrix results back to nested form.
func normalizeOperand(v any) (out any, wasArray bool, err error) {
	switch x := v.(type) {
	case []any:
		d, convErr := matrix.FromNested(x)
		if convErr != nil {
			return nil, false, convErr
		}

		return d, true, nil
	default:
		if sv, ok := scalar.FromGo(x); ok {
			return sv, false, nil
		}

		return v, false, nil // matrices and unknowns pass through
	}
}
