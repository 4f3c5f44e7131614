// SPDX-License-Identifier: MIT
// Package dispatch: error surface.
// TypeMismatchError is the only error kind this package raises on its own;
// handler errors propagate unmodified.

package dispatch

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel behind every TypeMismatchError; callers
// match with errors.Is and inspect details with errors.As.
var ErrTypeMismatch = errors.New("dispatch: no matching rule")

// TypeMismatchError reports that no rule of an operator matched the runtime
// kinds of the two operands.
type TypeMismatchError struct {
	Op    string // operator name as given to New
	KindX string // runtime kind token of the first operand
	KindY string // runtime kind token of the second operand
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("dispatch: %s: no rule for operands (%s, %s)", e.Op, e.KindX, e.KindY)
}

// Unwrap ties the structured error to the ErrTypeMismatch sentinel.
func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
