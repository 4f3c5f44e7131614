// SPDX-License-Identifier: MIT

// Package dispatch resolves a pair of runtime operand kinds to one concrete
// implementation function — the multiple-dispatch mechanism behind every
// numkit operator.
//
// An operator author hands New an operator name and an ordered list of
// rules, each mapping a pattern of two comma-separated kind tokens
// ("Number,Number", "Sparse,any", ...) to a handler. New returns a single
// callable that, per invocation:
//
//  1. normalizes raw Go operands into the scalar union, and plain nested
//     sequences (Array operands) into Dense matrices — so Array semantics
//     are identical to Dense semantics without duplicating combinator
//     logic (results are converted back to nested form when all
//     matrix-ness came from the normalization);
//  2. resolves the operand kind pair: an exact concrete-kind match on both
//     positions wins; failing that, scalar operands of different promotable
//     kinds are lifted to their common kind and the exact lookup is
//     retried; failing that, rules with the wildcard in exactly one
//     position are scanned in registration order;
//  3. invokes the selected handler, or fails with a TypeMismatchError
//     naming the operator and both runtime kinds.
//
// Resolution happens once per call and costs O(number of rules) — bounded
// and small (operators register at most sixteen rules). "any,any" is
// intentionally unsupported: every pair must be enumerated or reduced via
// the Array normalization.
//
// Malformed patterns are programmer errors and panic at construction time;
// no user input reaches pattern parsing.
package dispatch
