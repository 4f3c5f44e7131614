// SPDX-License-Identifier: MIT
// Package matrix: dense combinator kernels (dense×dense, dense×scalar).
// Both kernels run a single deterministic pass over the flat row-major
// buffer; the facades in combine.go have already validated the operands.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// cbDenseDense computes out[i] = op(a[i], b[i]) over the flat buffers.
// Time: O(size). Space: O(size) for the output.
func cbDenseDense(a, b *Dense, op Operator) (*Dense, error) {
	out := make([]scalar.Value, len(a.data))
	for i := range a.data { // flat 0..n-1, fixed order
		r, err := op(a.data[i], b.data[i])
		if err != nil {
			return nil, err // no partial result escapes
		}
		out[i] = r
	}

	return &Dense{
		shape:  a.shape.Clone(),
		stride: a.shape.strides(),
		data:   out,
		dtype:  datatypeOf(out),
	}, nil
}

// cbDenseScalar computes out[i] = op(a[i], v) (or op(v, a[i]) when inverse).
// Time: O(size). Space: O(size) for the output.
func cbDenseScalar(d *Dense, v scalar.Value, op Operator, inverse bool) (*Dense, error) {
	out := make([]scalar.Value, len(d.data))
	for i := range d.data { // flat 0..n-1, fixed order
		r, err := applyOrdered(op, d.data[i], v, inverse)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return &Dense{
		shape:  d.shape.Clone(),
		stride: d.shape.strides(),
		data:   out,
		dtype:  datatypeOf(out),
	}, nil
}

// applyOrdered invokes op with the matrix element and the fixed operand in
// the order selected by inverse: false ⇒ op(elem, fixed), true ⇒
// op(fixed, elem). Storage handling never depends on this order; only the
// operator's argument positions do.
func applyOrdered(op Operator, elem, fixed scalar.Value, inverse bool) (scalar.Value, error) {
	if inverse {
		return op(fixed, elem)
	}

	return op(elem, fixed)
}
