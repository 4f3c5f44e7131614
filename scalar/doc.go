// SPDX-License-Identifier: MIT

// Package scalar defines the closed union of scalar kinds that the numkit
// operators and matrix combinators work over, together with the small set of
// semantics every consumer needs: canonical zeros, kind promotion,
// epsilon-tolerant comparison and exact arithmetic.
//
// The package models heterogeneous runtime values as a sealed interface
// (Value) implemented by a fixed set of concrete types:
//
//	Number    — float64
//	Bool      — bool (canonical zero: false)
//	BigNumber — arbitrary-precision floating point (math/big)
//	Fraction  — exact rational (math/big)
//	Complex   — complex128 (equality only; no ordering)
//	Unit      — magnitude with a physical base dimension
//
// Design:
//   - The union is closed on purpose: dispatch tables are keyed by Kind tags,
//     so an open set would silently break resolution. New kinds are a
//     deliberate, package-level change.
//   - The canonical zero of a kind is the value a sparse container treats as
//     "absent" (numeric 0, boolean false, zero magnitude). IsZero is the
//     exact test — numeric tolerance never participates in storage decisions.
//   - Promotion follows a fixed lattice (Bool < Number < Fraction <
//     BigNumber) so mixed-kind operands meet at the smallest lossless
//     common kind. Complex and Unit never promote.
//
// Determinism & Policy:
//   - All functions are pure; no global state, no ambient configuration.
//   - The comparison tolerance (epsilon) is always an explicit parameter,
//     threaded in by operator constructors — never read from package state.
//
// AI-Hints:
//   - Use FromGo to coerce raw Go values (float64, int, bool, complex128)
//     at API boundaries; internal code should traffic in Value only.
//   - Compare/Equal promote internally; hand them any two promotable kinds.
package scalar
