// SPDX-License-Identifier: MIT
// Package matrix: sparse combinator kernels (sparse×sparse, sparse×scalar).
//
// These two kernels carry the asymptotic contract of the package: work is
// proportional to the number of explicit entries whenever sparsity can be
// preserved, and the decision to densify is made once per call, never per
// element.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// cbSparseSparse merges the sorted row runs of each column (akin to merging
// two sorted lists). A row present in both operands yields op(va, vb); a row
// present in one yields op(v, zero) or op(zero, v) — still required, because
// op need not treat zero as absorbing (is-larger-than against a negative
// value is true even for an implicit zero). Rows absent from both operands
// are never visited, relying on the op(zero, zero) == zero precondition.
// Zero results are dropped, preserving the storage invariant.
// Time: O(nnz(a) + nnz(b)). Space: O(nnz(out) + cols).
func cbSparseSparse(a, b *Sparse, op Operator) (*Sparse, error) {
	za := implicitZero(a.dtype) // canonical zero standing in for a's absences
	zb := implicitZero(b.dtype) // canonical zero standing in for b's absences

	out := &Sparse{
		rows:   a.rows,
		cols:   a.cols,
		colPtr: make([]int, a.cols+1),
	}
	for j := 0; j < a.cols; j++ {
		ka, kaEnd := a.colPtr[j], a.colPtr[j+1]
		kb, kbEnd := b.colPtr[j], b.colPtr[j+1]
		// Merge-join the two sorted runs for column j.
		for ka < kaEnd || kb < kbEnd {
			var (
				row int
				r   scalar.Value
				err error
			)
			onlyA := kb >= kbEnd || (ka < kaEnd && a.rowIndex[ka] < b.rowIndex[kb])
			onlyB := ka >= kaEnd || (kb < kbEnd && b.rowIndex[kb] < a.rowIndex[ka])
			switch {
			case onlyA: // row explicit in a only
				row = a.rowIndex[ka]
				r, err = op(a.values[ka], zb)
				ka++
			case onlyB: // row explicit in b only
				row = b.rowIndex[kb]
				r, err = op(za, b.values[kb])
				kb++
			default: // row explicit in both
				row = a.rowIndex[ka]
				r, err = op(a.values[ka], b.values[kb])
				ka++
				kb++
			}
			if err != nil {
				return nil, err // abort; no partial result escapes
			}
			if scalar.IsZero(r) {
				continue // canonical zeros are represented by absence
			}
			out.values = append(out.values, r)
			out.rowIndex = append(out.rowIndex, row)
		}
		out.colPtr[j+1] = len(out.values)
	}
	out.dtype = datatypeOf(out.values)

	return out, nil
}

// cbSparseScalar decides the output format once via
// testValue = op(zero, v) (argument order per inverse), then takes either
// the sparsity-preserving path (recompute explicit entries only, drop zero
// results) or the densifying path (fill with testValue, overwrite explicit
// coordinates).
// Time: O(nnz) preserving, O(rows·cols) densifying. Space: same as time.
func cbSparseScalar(s *Sparse, v scalar.Value, op Operator, inverse bool) (Matrix, error) {
	zero := implicitZero(s.dtype)
	testValue, err := applyOrdered(op, zero, v, inverse)
	if err != nil {
		return nil, err
	}

	if scalar.IsZero(testValue) {
		// Implicit zeros stay implicit: the result remains Sparse.
		out := &Sparse{
			rows:   s.rows,
			cols:   s.cols,
			colPtr: make([]int, s.cols+1),
		}
		for j := 0; j < s.cols; j++ {
			for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
				r, opErr := applyOrdered(op, s.values[k], v, inverse)
				if opErr != nil {
					return nil, opErr
				}
				if scalar.IsZero(r) {
					continue // result fell back to zero: drop it
				}
				out.values = append(out.values, r)
				out.rowIndex = append(out.rowIndex, s.rowIndex[k])
			}
			out.colPtr[j+1] = len(out.values)
		}
		out.dtype = datatypeOf(out.values)

		return out, nil
	}

	// Every implicit zero becomes testValue: the result must be Dense.
	out, err := NewDenseFilled(Shape{s.rows, s.cols}, testValue)
	if err != nil {
		return nil, err
	}
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			r, opErr := applyOrdered(op, s.values[k], v, inverse)
			if opErr != nil {
				return nil, opErr
			}
			out.data[s.rowIndex[k]*s.cols+j] = r
		}
	}
	out.dtype = datatypeOf(out.data)

	return out, nil
}
