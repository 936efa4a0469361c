package pointer

import (
	"errors"
	"fmt"
)

// ErrUninitialized is returned by every action attempted before a successful Init.
var ErrUninitialized = errors.New("pointer: driver is not initialized")

// ErrFailSafe is returned when the cursor sits on a fail-safe point.
var ErrFailSafe = errors.New("pointer: fail-safe triggered by the cursor reaching a fail-safe point")

// InvalidArgumentError reports a rejected action argument.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("pointer: invalid %s: %s", e.Arg, e.Reason)
}

// invalidArg builds an InvalidArgumentError.
func invalidArg(arg, format string, args ...any) error {
	return &InvalidArgumentError{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}
