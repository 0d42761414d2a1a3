package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by panics raised for nil arguments and
	// absent payloads.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is wrapped by panics raised when a Result is read
	// through the wrong accessor or was never constructed.
	ErrInvalidState = errors.New("invalid state")
)

// ArgumentError returns the error a contract check panics with when the
// argument called name is absent.
func ArgumentError(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}

// StateError returns an ErrInvalidState error with a formatted detail.
func StateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Require panics with ArgumentError(name) when v is absent, see IsNil.
func Require[T any](v T, name string) {
	if IsNil(v) {
		panic(ArgumentError(name))
	}
}
