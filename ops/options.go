// SPDX-License-Identifier: MIT

// Package ops: functional configuration for operator constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit tolerance.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); public APIs consume ...Option.

package ops

import "math"

// Numeric policy.
const (
	// DefaultEpsilon is the non-negative relative tolerance used by the
	// epsilon-aware comparison operators (larger, equal, ...). Values whose
	// relative difference is within epsilon compare as equal.
	DefaultEpsilon = 1e-9
)

// Internal panic messages (no magic strings).
const (
	panicEpsilonInvalid = "ops: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps float64 // ≥ 0; DefaultEpsilon
}

// WithEpsilon sets the relative tolerance used by comparison semantics.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g. 1e-9) for double-precision data;
//     eps = 0 gives exact comparison (machine-epsilon noise still folds).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; stable for a given sequence of setters.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}

	return o
}
