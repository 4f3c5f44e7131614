// SPDX-License-Identifier: MIT

// Package matrix: exact, lossless conversions between the storage formats
// and the plain nested-sequence ("Array") form used at the dispatch
// boundary. All conversions preserve shape and values; ToSparse additionally
// drops canonical zeros (they become implicit), which is what makes the
// round-trip ToSparse(ToDense(S)) == S hold for well-formed S.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// ToSparse converts a rank-2 Dense into CSC form, dropping canonical zeros.
// Complexity: O(rows·cols).
func ToSparse(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, matrixErrorf("ToSparse", ErrNilMatrix)
	}
	if err := ValidateRank2(d); err != nil {
		return nil, matrixErrorf("ToSparse", err)
	}

	rows, cols := d.shape[0], d.shape[1]
	out := &Sparse{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
	}
	// Column-major scan so output arrives already in CSC order.
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := d.data[i*cols+j]
			if scalar.IsZero(v) {
				continue // absence ⇒ zero
			}
			out.values = append(out.values, v)
			out.rowIndex = append(out.rowIndex, i)
		}
		out.colPtr[j+1] = len(out.values)
	}
	out.dtype = datatypeOf(out.values)
	if out.dtype == "" && d.dtype != "" {
		out.dtype = d.dtype // empty sparse inherits the dense element hint
	}

	return out, nil
}

// ToDense materializes a Sparse into explicit storage: every implicit
// coordinate becomes the canonical zero of the element kind.
// Complexity: O(rows·cols).
func ToDense(s *Sparse) (*Dense, error) {
	if s == nil {
		return nil, matrixErrorf("ToDense", ErrNilMatrix)
	}

	zero := implicitZero(s.dtype)
	out, err := NewDenseFilled(Shape{s.rows, s.cols}, zero)
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			out.data[s.rowIndex[k]*s.cols+j] = s.values[k]
		}
	}
	out.dtype = datatypeOf(out.data)

	return out, nil
}

// FromNested builds a Dense from a plain nested sequence ([]any whose leaves
// are scalar values or coercible Go primitives). The nesting must be
// rectangular; ragged or non-coercible input fails with ErrBadNesting.
// Complexity: O(size).
func FromNested(v []any) (*Dense, error) {
	shape, err := nestedShape(v)
	if err != nil {
		return nil, err
	}

	flat := make([]scalar.Value, 0, shape.Size())
	flat, err = flattenNested(v, shape, 0, flat)
	if err != nil {
		return nil, err
	}

	return NewDenseOf(flat, shape)
}

// ToNested converts a Dense back into the plain nested-sequence form. Leaves
// are scalar.Value; FromNested(ToNested(d)) reproduces d exactly.
// Complexity: O(size).
func ToNested(d *Dense) []any {
	return buildNested(d, 0, 0)
}

// nestedShape walks the first spine of the nesting to propose a shape; the
// flatten pass then enforces it on every sibling.
func nestedShape(v []any) (Shape, error) {
	if len(v) == 0 {
		return nil, matrixErrorf("FromNested", ErrBadNesting)
	}
	shape := Shape{len(v)}
	if child, ok := v[0].([]any); ok {
		sub, err := nestedShape(child)
		if err != nil {
			return nil, err
		}

		return append(shape, sub...), nil
	}

	return shape, nil
}

// flattenNested appends the elements of v (at nesting depth dim) to flat in
// row-major order, enforcing rectangularity and leaf coercibility.
func flattenNested(v []any, shape Shape, dim int, flat []scalar.Value) ([]scalar.Value, error) {
	if len(v) != shape[dim] {
		return nil, matrixErrorf("FromNested", ErrBadNesting) // ragged level
	}
	leaf := dim == len(shape)-1
	for _, e := range v {
		child, nested := e.([]any)
		if leaf {
			if nested {
				return nil, matrixErrorf("FromNested", ErrBadNesting) // deeper than shape
			}
			sv, ok := scalar.FromGo(e)
			if !ok {
				return nil, matrixErrorf("FromNested", ErrBadNesting) // non-coercible leaf
			}
			flat = append(flat, sv)
			continue
		}
		if !nested {
			return nil, matrixErrorf("FromNested", ErrBadNesting) // shallower than shape
		}
		var err error
		flat, err = flattenNested(child, shape, dim+1, flat)
		if err != nil {
			return nil, err
		}
	}

	return flat, nil
}

// buildNested materializes dimension dim of d starting at flat offset off.
func buildNested(d *Dense, dim, off int) []any {
	n := d.shape[dim]
	out := make([]any, n)
	if dim == len(d.shape)-1 {
		for i := 0; i < n; i++ {
			out[i] = d.data[off+i*d.stride[dim]]
		}

		return out
	}
	for i := 0; i < n; i++ {
		out[i] = buildNested(d, dim+1, off+i*d.stride[dim])
	}

	return out
}

// Equal reports exact element-wise equality of two matrices: identical
// shapes and scalar.Equal at every coordinate. Storage format does not
// participate — a Sparse and a Dense holding the same values are equal.
// Complexity: O(size).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if !a.Shape().Equal(b.Shape()) {
		return false, nil
	}

	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("Equal", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("Equal", err)
	}
	for i := range da.data {
		if !scalar.Equal(da.data[i], db.data[i]) {
			return false, nil
		}
	}

	return true, nil
}

// asDense views any Matrix as Dense, materializing sparse operands.
func asDense(m Matrix) (*Dense, error) {
	switch x := m.(type) {
	case *Dense:
		return x, nil
	case *Sparse:
		return ToDense(x)
	default:
		return nil, ErrNilMatrix
	}
}
