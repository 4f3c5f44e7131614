// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for the guard checks the
//     combinators and constructors share.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can wrap uniformly and tests match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only the sparse structural
//     validation is more than O(1) (it is O(nnz + cols)).
//
// AI-Hints:
//   - Use ValidateBinarySameShape before every two-operand combinator.
//   - Use ValidateSparseWellFormed in tests asserting the no-explicit-zero
//     invariant on combinator outputs.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical rank and dimensions.
// Assumes both are non-nil (compose with ValidateNotNil).
// Complexity: O(rank).
func ValidateSameShape(a, b Matrix) error {
	sa, sb := a.Shape(), b.Shape()
	if !sa.Equal(sb) {
		return shapeMismatchf("ValidateSameShape", sa, sb)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(rank).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateRank2 ensures m is a two-dimensional matrix. The mixed
// sparse/dense combinators require rank-2 dense operands, since sparse
// storage exists only for 2-D.
// Complexity: O(1).
func ValidateRank2(m Matrix) error {
	if len(m.Shape()) != 2 {
		return matrixErrorf("ValidateRank2", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSparseWellFormed checks every structural invariant of the CSC
// storage: column-pointer monotonicity and bounds, strictly increasing row
// indices per column, row bounds, parallel array lengths, and the
// no-explicit-zero rule.
// Complexity: O(nnz + cols).
func ValidateSparseWellFormed(s *Sparse) error {
	if s == nil {
		return matrixErrorf("ValidateSparseWellFormed", ErrNilMatrix)
	}
	if s.rows <= 0 || s.cols <= 0 {
		return matrixErrorf("ValidateSparseWellFormed", ErrBadShape)
	}
	if len(s.values) != len(s.rowIndex) || len(s.colPtr) != s.cols+1 {
		return matrixErrorf("ValidateSparseWellFormed", ErrBadSparse)
	}
	if s.colPtr[0] != 0 || s.colPtr[s.cols] != len(s.values) {
		return matrixErrorf("ValidateSparseWellFormed", ErrBadSparse)
	}
	for j := 0; j < s.cols; j++ {
		lo, hi := s.colPtr[j], s.colPtr[j+1]
		if lo > hi {
			return matrixErrorf("ValidateSparseWellFormed", ErrBadSparse) // non-monotone colPtr
		}
		prev := -1
		for k := lo; k < hi; k++ {
			r := s.rowIndex[k]
			if r < 0 || r >= s.rows {
				return matrixErrorf("ValidateSparseWellFormed", ErrOutOfRange)
			}
			if r <= prev {
				return matrixErrorf("ValidateSparseWellFormed", ErrBadSparse) // unsorted or duplicate row
			}
			prev = r
			if s.values[k] == nil || scalar.IsZero(s.values[k]) {
				return matrixErrorf("ValidateSparseWellFormed", ErrBadSparse) // stored canonical zero
			}
		}
	}

	return nil
}
