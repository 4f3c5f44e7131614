// SPDX-License-Identifier: MIT

// Package matrix: Dense is the explicit-storage representation.
// Elements of any rank live in a flat row-major slice for cache friendliness;
// every coordinate holds an explicit value (a zero-equivalent of the element
// kind where nothing meaningful is stored).

package matrix

import (
	"strings"

	"github.com/katalvlaran/numkit/scalar"
)

// Dense is a matrix of arbitrary rank with explicit storage.
// shape holds the dimensions, stride the row-major strides, data the
// len(shape)-nested elements flattened into shape.Size() slots.
type Dense struct {
	shape  Shape
	stride []int
	data   []scalar.Value
	dtype  string
}

// NewDense creates a Dense of the given shape with every element initialized
// to Number(0).
// Stage 1 (Validate): shape must be non-empty with positive dimensions.
// Stage 2 (Prepare): allocate and zero-fill the flat backing slice.
// Complexity: O(size) time and memory.
func NewDense(shape Shape) (*Dense, error) {
	return NewDenseFilled(shape, scalar.Number(0))
}

// NewDenseFilled creates a Dense of the given shape with every element set
// to fill.
// Complexity: O(size) time and memory.
func NewDenseFilled(shape Shape, fill scalar.Value) (*Dense, error) {
	if err := shape.validate(); err != nil {
		return nil, matrixErrorf("NewDenseFilled", err)
	}
	if fill == nil {
		return nil, matrixErrorf("NewDenseFilled", ErrNilMatrix)
	}

	data := make([]scalar.Value, shape.Size())
	for i := range data {
		data[i] = fill
	}

	return &Dense{
		shape:  shape.Clone(),
		stride: shape.strides(),
		data:   data,
		dtype:  fill.Kind().String(),
	}, nil
}

// NewDenseOf creates a Dense from a flat row-major slice of elements.
// The slice is copied; its length must equal shape.Size() and every element
// must be non-nil.
// Complexity: O(size) time and memory.
func NewDenseOf(data []scalar.Value, shape Shape) (*Dense, error) {
	if err := shape.validate(); err != nil {
		return nil, matrixErrorf("NewDenseOf", err)
	}
	if len(data) != shape.Size() {
		return nil, shapeMismatchf("NewDenseOf", Shape{len(data)}, shape)
	}
	for _, v := range data {
		if v == nil {
			return nil, matrixErrorf("NewDenseOf", ErrNilMatrix)
		}
	}

	cp := make([]scalar.Value, len(data))
	copy(cp, data)

	return &Dense{
		shape:  shape.Clone(),
		stride: shape.strides(),
		data:   cp,
		dtype:  datatypeOf(cp),
	}, nil
}

// Shape implements Matrix.
func (d *Dense) Shape() Shape { return d.shape.Clone() }

// Datatype implements Matrix.
func (d *Dense) Datatype() string { return d.dtype }

// Size returns the total element count.
func (d *Dense) Size() int { return len(d.data) }

// offsetOf computes the flat index for the coordinate idx, or ErrOutOfRange.
// Complexity: O(rank).
func (d *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, matrixErrorf("Dense.offsetOf", ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= d.shape[k] {
			return 0, matrixErrorf("Dense.offsetOf", ErrOutOfRange)
		}
		off += i * d.stride[k]
	}

	return off, nil
}

// At retrieves the element at the given coordinate (one index per dimension).
// Complexity: O(rank).
func (d *Dense) At(idx ...int) (scalar.Value, error) {
	off, err := d.offsetOf(idx)
	if err != nil {
		return nil, err
	}

	return d.data[off], nil
}

// Set assigns v at the given coordinate (one index per dimension).
// The datatype hint degrades to "" when the write breaks uniformity.
// Complexity: O(rank).
func (d *Dense) Set(v scalar.Value, idx ...int) error {
	if v == nil {
		return matrixErrorf("Dense.Set", ErrNilMatrix)
	}
	off, err := d.offsetOf(idx)
	if err != nil {
		return err
	}
	d.data[off] = v
	if d.dtype != "" && d.dtype != v.Kind().String() {
		d.dtype = ""
	}

	return nil
}

// Clone implements Matrix: a deep structural copy.
// Complexity: O(size).
func (d *Dense) Clone() Matrix {
	cp := make([]scalar.Value, len(d.data))
	copy(cp, d.data)

	return &Dense{
		shape:  d.shape.Clone(),
		stride: d.shape.strides(),
		data:   cp,
		dtype:  d.dtype,
	}
}

// String implements fmt.Stringer for rank-2 matrices; higher ranks render
// the flat form with the shape prefix.
func (d *Dense) String() string {
	var sb strings.Builder
	if len(d.shape) != 2 {
		sb.WriteString(d.shape.String())
		sb.WriteString(" ")
		for i, v := range d.data {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(v.String())
		}

		return sb.String()
	}
	rows, cols := d.shape[0], d.shape[1]
	for i := 0; i < rows; i++ {
		sb.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.data[i*cols+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
