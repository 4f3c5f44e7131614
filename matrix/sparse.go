// SPDX-License-Identifier: MIT

// Package matrix: Sparse is the compressed-sparse-column (CSC) representation.
//
// Storage invariants (enforced by constructors and by every combinator's
// output path, validated by ValidateSparseWellFormed):
//   - values holds only non-zero entries, column-major;
//   - rowIndex is parallel to values; within each column the rows are
//     strictly increasing (sorted, no duplicates);
//   - colPtr has length cols+1, is non-decreasing, colPtr[0] == 0 and
//     colPtr[cols] == len(values);
//   - no stored value is the canonical zero of its kind. Storing one is a
//     correctness bug, not a missed optimization: consumers assume
//     absence ⇒ zero.

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/numkit/scalar"
)

// Sparse is a 2-D matrix storing only its non-zero entries in CSC layout.
type Sparse struct {
	rows, cols int
	values     []scalar.Value
	rowIndex   []int
	colPtr     []int
	dtype      string
}

// NewSparse creates an empty rows×cols Sparse (every entry implicit zero).
// Complexity: O(cols) for the column-pointer table.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewSparse", ErrBadShape)
	}

	return &Sparse{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
	}, nil
}

// NewSparseCSC creates a Sparse from raw CSC arrays. All slices are copied.
// Stage 1 (Validate): shape, then full structural validation of the arrays
// (monotone colPtr, sorted strict rows, bounds, no stored canonical zero).
// Stage 2 (Finalize): copy storage and derive the datatype hint.
// Complexity: O(nnz + cols).
func NewSparseCSC(rows, cols int, values []scalar.Value, rowIndex, colPtr []int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewSparseCSC", ErrBadShape)
	}
	s := &Sparse{
		rows:     rows,
		cols:     cols,
		values:   append([]scalar.Value(nil), values...),
		rowIndex: append([]int(nil), rowIndex...),
		colPtr:   append([]int(nil), colPtr...),
	}
	if err := ValidateSparseWellFormed(s); err != nil {
		return nil, matrixErrorf("NewSparseCSC", err)
	}
	s.dtype = datatypeOf(s.values)

	return s, nil
}

// Triplet is a single explicit entry for NewSparseFromTriplets.
type Triplet struct {
	Row, Col int
	Val      scalar.Value
}

// NewSparseFromTriplets creates a Sparse from coordinate-form entries.
// Entries may arrive in any order; canonical zeros are dropped silently;
// duplicate coordinates are rejected (ErrBadSparse).
// Complexity: O(nnz·log nnz) for the column-major sort.
func NewSparseFromTriplets(rows, cols int, entries []Triplet) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewSparseFromTriplets", ErrBadShape)
	}

	// Keep only explicit non-zeros; bounds-check while filtering.
	kept := make([]Triplet, 0, len(entries))
	for _, t := range entries {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, matrixErrorf("NewSparseFromTriplets", ErrOutOfRange)
		}
		if t.Val == nil {
			return nil, matrixErrorf("NewSparseFromTriplets", ErrNilMatrix)
		}
		if scalar.IsZero(t.Val) {
			continue // canonical zeros are represented by absence
		}
		kept = append(kept, t)
	}

	// Column-major order with rows ascending inside each column.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Col != kept[j].Col {
			return kept[i].Col < kept[j].Col
		}

		return kept[i].Row < kept[j].Row
	})

	s := &Sparse{
		rows:     rows,
		cols:     cols,
		values:   make([]scalar.Value, 0, len(kept)),
		rowIndex: make([]int, 0, len(kept)),
		colPtr:   make([]int, cols+1),
	}
	col := 0
	for i, t := range kept {
		if i > 0 && kept[i-1].Col == t.Col && kept[i-1].Row == t.Row {
			return nil, matrixErrorf("NewSparseFromTriplets", ErrBadSparse) // duplicate coordinate
		}
		for col < t.Col { // close out preceding columns
			col++
			s.colPtr[col] = len(s.values)
		}
		s.values = append(s.values, t.Val)
		s.rowIndex = append(s.rowIndex, t.Row)
	}
	for col < cols { // close out trailing columns
		col++
		s.colPtr[col] = len(s.values)
	}
	s.dtype = datatypeOf(s.values)

	return s, nil
}

// Shape implements Matrix: {rows, cols}.
func (s *Sparse) Shape() Shape { return Shape{s.rows, s.cols} }

// Datatype implements Matrix.
func (s *Sparse) Datatype() string { return s.dtype }

// NNZ returns the count of explicitly stored (non-zero) entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// At retrieves the element at (i, j): the stored value when present, the
// canonical zero of the element kind otherwise.
// Complexity: O(log nnz(column j)) via binary search over the sorted run.
func (s *Sparse) At(i, j int) (scalar.Value, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return nil, matrixErrorf("Sparse.At", ErrOutOfRange)
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	k := lo + sort.SearchInts(s.rowIndex[lo:hi], i)
	if k < hi && s.rowIndex[k] == i {
		return s.values[k], nil
	}

	return implicitZero(s.dtype), nil
}

// Clone implements Matrix: a deep structural copy.
// Complexity: O(nnz + cols).
func (s *Sparse) Clone() Matrix {
	return &Sparse{
		rows:     s.rows,
		cols:     s.cols,
		values:   append([]scalar.Value(nil), s.values...),
		rowIndex: append([]int(nil), s.rowIndex...),
		colPtr:   append([]int(nil), s.colPtr...),
		dtype:    s.dtype,
	}
}

// String implements fmt.Stringer: shape, nnz and the explicit entries in
// column-major order.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %d×%d nnz=%d", s.rows, s.cols, s.NNZ())
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			fmt.Fprintf(&sb, " (%d,%d)=%s", s.rowIndex[k], j, s.values[k].String())
		}
	}

	return sb.String()
}
