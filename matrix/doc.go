// SPDX-License-Identifier: MIT

// Package matrix provides the two storage representations of numkit —
// Dense and Sparse — together with the element-wise combinator kernels that
// apply an arbitrary binary operator to matrix operands while tracking and
// minimizing sparsity.
//
// Storage model:
//
//   - Dense holds a matrix of any rank in a flat, row-major backing slice.
//     Every coordinate holds an explicit value; there are no implicit
//     entries.
//   - Sparse is a 2-D compressed-sparse-column (CSC) container. Only
//     non-zero entries are stored; absence of an entry means the canonical
//     zero of the element kind. This is an enforced invariant, not an
//     emergent property: storing an explicit zero is a correctness bug,
//     because every consumer assumes absence ⇒ zero.
//
// Combinators:
//
//	CombineDenseDense    — op over two Dense operands, any rank
//	CombineSparseSparse  — per-column merge-join, O(nnz(a)+nnz(b))
//	CombineSparseDense   — one Sparse, one Dense operand; Dense result
//	CombineDenseScalar   — Dense against a scalar
//	CombineSparseScalar  — Sparse against a scalar; stays Sparse when the
//	                       operation maps the implicit zero back to zero,
//	                       densifies otherwise (decided once, in O(1))
//
// All combinators are pure: operands are never mutated, every call
// constructs and returns a fresh matrix, and no partially built output is
// ever exposed — the first operator error aborts the whole call.
//
// Determinism & Policy:
//   - Fixed loop orders (column-major over sparse runs, flat over dense).
//   - Zero-dropping uses the exact canonical-zero test (scalar.IsZero);
//     numeric tolerance belongs to operator semantics, never to storage.
//
// AI-Hints:
//   - Pass the operator's promoting scalar core as the Operator so that
//     heterogeneous element kinds meet correctly inside the kernels.
//   - Respect the documented op(zero, zero) == zero precondition; route
//     violating operators (e.g. equality) through ToDense instead of
//     CombineSparseSparse.
package matrix
