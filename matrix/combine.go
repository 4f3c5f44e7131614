// SPDX-License-Identifier: MIT

// Package matrix — element-wise combinator facades.
//
// Purpose:
//   - Provide the five public entry points that apply a binary Operator to
//     two matrix operands (or a matrix and a scalar) while tracking and
//     minimizing sparsity.
//   - Keep facades thin: validation here, tight loops in the impl_combine_*
//     kernels (one file per storage pairing), mirroring the package layout
//     of the rest of the library.
//
// Determinism & Policy:
//   - Fixed loop orders everywhere; results are reproducible bit for bit.
//   - Operands are read-only; every call returns a freshly allocated matrix
//     sharing no storage with its inputs.
//   - Operator errors abort the call immediately: no partial result escapes.
//
// AI-Hints:
//   - CombineSparseSparse assumes op(zero, zero) == zero (see Operator);
//     for operators violating it, densify via ToDense and use
//     CombineDenseDense instead.
//   - The inverse flag on the asymmetric variants flips which operand lands
//     in which argument position of op — storage handling is unaffected.

package matrix

import (
	"github.com/katalvlaran/numkit/scalar"
)

// CombineDenseDense applies op coordinate-wise over two Dense operands of
// identical shape (any rank): out[i] = op(a[i], b[i]).
// Errors: ErrDimensionMismatch when shapes differ (including rank);
// operator errors propagate unmodified.
// Complexity: O(size).
func CombineDenseDense(a, b *Dense, op Operator) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("CombineDenseDense", ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("CombineDenseDense", err)
	}

	return cbDenseDense(a, b, op)
}

// CombineSparseSparse applies op over two Sparse operands of identical shape
// via a per-column merge-join of the sorted row runs. Coordinates absent
// from both operands are never visited and never materialized (this is the
// central optimization — sound under the op(zero, zero) == zero
// precondition). Results equal to the canonical zero are dropped.
// Errors: ErrDimensionMismatch when shapes differ; operator errors propagate.
// Complexity: O(nnz(a) + nnz(b)) — never proportional to rows·cols.
func CombineSparseSparse(a, b *Sparse, op Operator) (*Sparse, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf("CombineSparseSparse", ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("CombineSparseSparse", err)
	}

	return cbSparseSparse(a, b, op)
}

// CombineSparseDense applies op over one Sparse and one Dense operand of
// identical shape. The result is Dense: once one operand is fully explicit,
// any coordinate may be non-zero, so preserving sparsity would cost more to
// test for than it saves. inverse=false computes op(sparse, dense);
// inverse=true computes op(dense, sparse).
// Errors: ErrDimensionMismatch when shapes differ or the dense operand is
// not rank-2; operator errors propagate.
// Complexity: O(rows·cols).
func CombineSparseDense(s *Sparse, d *Dense, op Operator, inverse bool) (*Dense, error) {
	if s == nil || d == nil {
		return nil, matrixErrorf("CombineSparseDense", ErrNilMatrix)
	}
	if err := ValidateRank2(d); err != nil {
		return nil, matrixErrorf("CombineSparseDense", err)
	}
	if err := ValidateSameShape(s, d); err != nil {
		return nil, matrixErrorf("CombineSparseDense", err)
	}

	return cbSparseDense(s, d, op, inverse)
}

// CombineDenseScalar applies op between every element of a Dense operand and
// a fixed scalar. inverse=false computes op(element, v); inverse=true
// computes op(v, element). Output stays Dense.
// Complexity: O(size).
func CombineDenseScalar(d *Dense, v scalar.Value, op Operator, inverse bool) (*Dense, error) {
	if d == nil {
		return nil, matrixErrorf("CombineDenseScalar", ErrNilMatrix)
	}
	if v == nil {
		return nil, matrixErrorf("CombineDenseScalar", ErrNilMatrix)
	}

	return cbDenseScalar(d, v, op, inverse)
}

// CombineSparseScalar applies op between a Sparse operand and a fixed
// scalar. inverse=false computes op(element, v); inverse=true computes
// op(v, element).
//
// The storage format of the result is decided once, in O(1): the kernel
// first computes testValue = op(zero, v) (argument order per inverse). When
// testValue is the canonical zero, implicit entries stay implicit and the
// result remains Sparse (only explicit values are recomputed, with zero
// results dropped). Otherwise every implicit zero becomes non-zero under op
// and the result must be Dense: a full matrix is filled with testValue and
// the explicit coordinates are overwritten.
// Complexity: O(nnz) in the sparsity-preserving case, O(rows·cols) when
// densification is forced.
func CombineSparseScalar(s *Sparse, v scalar.Value, op Operator, inverse bool) (Matrix, error) {
	if s == nil {
		return nil, matrixErrorf("CombineSparseScalar", ErrNilMatrix)
	}
	if v == nil {
		return nil, matrixErrorf("CombineSparseScalar", ErrNilMatrix)
	}

	return cbSparseScalar(s, v, op, inverse)
}
