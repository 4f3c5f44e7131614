// Package numkit is a small numeric-computation toolkit for evaluating
// binary operators — ordering comparisons, equality, element-wise
// arithmetic — over a heterogeneous set of scalar kinds and over matrices
// stored either densely or sparsely.
//
// 🚀 What is numkit?
//
//	A deterministic, dependency-light library that brings together:
//		• Scalar kinds: float64 numbers, arbitrary-precision numbers,
//		  exact rationals, booleans, complex numbers and physical units
//		• Matrix storage: Dense (any rank, explicit cells) and Sparse
//		  (2-D CSC, absence means zero — enforced, not emergent)
//		• Element-wise combinators: five kernels covering every
//		  (storage-format × storage-format) and (matrix × scalar) pairing,
//		  with work proportional to non-zero counts wherever sparsity allows
//		• Multiple dispatch: a rule-table builder that turns per-kind
//		  implementations into one callable operator
//		• Ready-made operators: larger, smaller, equal, compare, add,
//		  subtract, dot-multiply and friends
//
// ✨ Why choose numkit?
//
//   - Predictable – fixed loop orders, no global state, no hidden tolerance
//   - Sparse-honest – explicit zeros are never stored; densification happens
//     only when an operation makes it unavoidable, and is decided in O(1)
//   - Extensible – register your own kind-pair rules against the same core
//
// Everything is organized under four subpackages:
//
//	scalar/   — the closed union of scalar kinds, promotion and comparison
//	matrix/   — Dense & Sparse containers, conversions, combinator kernels
//	dispatch/ — the kind-pair rule registry producing operator callables
//	ops/      — operator definitions composed from the pieces above
//
// Quick example:
//
//	larger := ops.NewLarger()            // epsilon = 1e-9 by default
//	out, err := larger(a, b)             // a, b: scalars, matrices or arrays
//
// See the package documentation of each subpackage for details.
package numkit
