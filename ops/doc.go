// SPDX-License-Identifier: MIT

// Package ops defines the ready-made numkit operators: ordering comparisons
// (larger, largerEq, smaller, smallerEq, compare), equality (equal,
// unequal) and element-wise arithmetic (add, subtract, dotMultiply).
//
// Every operator follows the same recipe:
//
//  1. the constructor resolves its functional options (numeric tolerance via
//     WithEpsilon; DefaultEpsilon = 1e-9) and closes the operator's scalar
//     semantics over the resolved epsilon — tolerance is threaded in at
//     construction time, never read from ambient state;
//  2. a rule table wires that scalar core to every operand-kind pair: scalar
//     pairs call it directly, matrix pairs route through the element-wise
//     combinators in package matrix, which recursively apply the same
//     scalar core to matrix elements;
//  3. dispatch.New turns the table into one callable (dispatch.Func) that
//     accepts scalars, Dense/Sparse matrices and plain nested sequences.
//
// Sparsity: operators whose scalar core maps (zero, zero) to the canonical
// zero (all of them except equal) run Sparse×Sparse operands through the
// O(nnz) merge-join. equal(0,0) is true, so its Sparse×Sparse rule densifies
// first — the documented precondition of matrix.Operator in action.
//
// AI-Hints:
//   - Operators return Bool results for comparisons; the canonical zero of
//     Bool is false, so sparse comparison results store only true cells.
//   - Pass WithEpsilon(0) for exact float comparison semantics.
package ops
