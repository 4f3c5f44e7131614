// SPDX-License-Identifier: MIT
// Package dispatch: the rule table and its resolver.
//
// Construction parses and validates the rule list once; each call then pays
// a map lookup for the exact match and, only on miss, a short ordered scan
// of the wildcard rules. No state is shared between calls.

package dispatch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
)

// Handler is one concrete implementation for a resolved kind pair. Operands
// arrive normalized: scalar union members, *matrix.Dense or *matrix.Sparse.
type Handler func(x, y any) (any, error)

// Func is the callable an operator exposes publicly.
type Func func(x, y any) (any, error)

// Rule binds a kind-pair pattern to a handler. A pattern is two
// comma-separated kind tokens; each token is a concrete kind name or the
// wildcard "any" (in at most one position).
type Rule struct {
	Pattern string
	Handler Handler
}

// Internal panic messages (programmer errors at construction time).
const (
	panicBadPattern   = "dispatch: New: pattern must be two valid kind tokens"
	panicDoubleAny    = "dispatch: New: pattern \"any,any\" is not supported"
	panicDupPattern   = "dispatch: New: duplicate pattern"
	panicNilHandler   = "dispatch: New: nil handler"
	panicEmptyName    = "dispatch: New: empty operator name"
	panicNoRules      = "dispatch: New: empty rule list"
)

// kindPair is the exact-lookup key.
type kindPair struct{ x, y string }

// wildcardRule is a parsed single-wildcard rule kept in registration order.
type wildcardRule struct {
	x, y    string // one of the two is kindAny
	handler Handler
}

// table is the immutable dispatch state built by New.
type table struct {
	name      string
	exact     map[kindPair]Handler
	wildcards []wildcardRule
}

// New builds the dispatcher for an operator from its ordered rule list and
// returns the public callable. Malformed input (bad token, "any,any",
// duplicate pattern, nil handler) panics: rule tables are authored in code,
// so these are programmer errors, not runtime conditions.
//
// Complexity: O(rules) to build; per call O(1) exact lookup plus O(rules)
// wildcard scan on miss.
func New(name string, rules []Rule) Func {
	if name == "" {
		panic(panicEmptyName)
	}
	if len(rules) == 0 {
		panic(panicNoRules)
	}

	t := &table{
		name:  name,
		exact: make(map[kindPair]Handler, len(rules)),
	}
	for _, r := range rules {
		kx, ky := parsePattern(r.Pattern)
		if r.Handler == nil {
			panic(panicNilHandler)
		}
		if kx == kindAny && ky == kindAny {
			panic(panicDoubleAny)
		}
		if kx == kindAny || ky == kindAny {
			t.wildcards = append(t.wildcards, wildcardRule{x: kx, y: ky, handler: r.Handler})
			continue
		}
		p := kindPair{x: kx, y: ky}
		if _, dup := t.exact[p]; dup {
			panic(panicDupPattern)
		}
		t.exact[p] = r.Handler
	}

	return t.call
}

// parsePattern splits and validates a two-token pattern.
func parsePattern(p string) (string, string) {
	parts := strings.Split(p, ",")
	if len(parts) != 2 {
		panic(panicBadPattern)
	}
	kx, ky := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if _, ok := validKindTokens[kx]; !ok {
		panic(panicBadPattern)
	}
	if _, ok := validKindTokens[ky]; !ok {
		panic(panicBadPattern)
	}

	return kx, ky
}

// call is the per-invocation path: normalize, resolve, invoke.
func (t *table) call(x, y any) (any, error) {
	// Stage 1: normalize operands (Go primitives → scalar union,
	// Array → Dense). Array-ness is remembered for the result conversion.
	nx, xArr, err := normalizeOperand(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	ny, yArr, err := normalizeOperand(y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}

	// Stage 2: resolve and invoke.
	out, err := t.resolve(nx, ny)
	if err != nil {
		return nil, err
	}

	// Stage 3: when every matrix operand came from Array normalization,
	// hand back a plain nested sequence so Array in ⇒ Array out.
	onlyArrays := (xArr || yArr) && !isMatrixOperand(x) && !isMatrixOperand(y)
	if onlyArrays {
		if d, ok := out.(*matrix.Dense); ok {
			return matrix.ToNested(d), nil
		}
	}

	return out, nil
}

// resolve selects the handler for the normalized operand pair and runs it.
func (t *table) resolve(x, y any) (any, error) {
	kx, ky := KindNameOf(x), KindNameOf(y)

	// Exact concrete-kind match on both positions wins outright.
	if h, ok := t.exact[kindPair{x: kx, y: ky}]; ok {
		return h(x, y)
	}

	// Mixed promotable scalar kinds: lift to the common kind and retry the
	// exact lookup once.
	if sx, ok := x.(scalar.Value); ok {
		if sy, ok2 := y.(scalar.Value); ok2 && sx.Kind() != sy.Kind() {
			if px, py, err := scalar.Promote(sx, sy); err == nil {
				pk := kindPair{x: px.Kind().String(), y: py.Kind().String()}
				if h, ok3 := t.exact[pk]; ok3 {
					return h(px, py)
				}
			}
		}
	}

	// Single-wildcard rules, scanned in registration order.
	for _, w := range t.wildcards {
		if (w.x == kindAny || w.x == kx) && (w.y == kindAny || w.y == ky) {
			return w.handler(x, y)
		}
	}

	return nil, &TypeMismatchError{Op: t.name, KindX: kx, KindY: ky}
}

// isMatrixOperand reports whether the caller passed a real matrix container
// (as opposed to a plain nested sequence).
func isMatrixOperand(v any) bool {
	switch v.(type) {
	case *matrix.Dense, *matrix.Sparse:
		return true
	default:
		return false
	}
}
