// SPDX-License-Identifier: MIT
// Package matrix: the mixed-format kernel (sparse×dense and its mirror).
// The dense operand has no implicit entries, so every coordinate of the
// result must be produced; the sparse operand is consumed through a
// per-column cursor that rides its sorted row run, keeping lookups O(1)
// amortized while visiting coordinates in the same column-major order the
// CSC layout stores them in.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// cbSparseDense computes op over one Sparse and one Dense operand.
// inverse=false ⇒ op(sparse_ij, dense_ij); inverse=true ⇒ op(dense_ij, sparse_ij).
// Output is always Dense.
// Time: O(rows·cols). Space: O(rows·cols) for the output.
func cbSparseDense(s *Sparse, d *Dense, op Operator, inverse bool) (*Dense, error) {
	rows, cols := s.rows, s.cols
	zero := implicitZero(s.dtype) // stands in for the sparse operand's absences

	out := make([]scalar.Value, rows*cols)
	for j := 0; j < cols; j++ {
		k, kEnd := s.colPtr[j], s.colPtr[j+1] // cursor over column j's run
		for i := 0; i < rows; i++ {
			sv := zero
			if k < kEnd && s.rowIndex[k] == i {
				sv = s.values[k] // explicit sparse entry at (i, j)
				k++
			}
			r, err := applyOrdered(op, sv, d.data[i*cols+j], inverse)
			if err != nil {
				return nil, err // abort; no partial result escapes
			}
			out[i*cols+j] = r
		}
	}

	shape := Shape{rows, cols}

	return &Dense{
		shape:  shape,
		stride: shape.strides(),
		data:   out,
		dtype:  datatypeOf(out),
	}, nil
}
