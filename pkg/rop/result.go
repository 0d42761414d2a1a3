package rop

import "fmt"

type variant uint8

const (
	uninitialized variant = iota
	success
	failure
)

// Result holds either a success value S or a failure value F.
//
// The zero Result is uninitialized: neither IsSuccess nor IsFailure reports
// true and every accessor or combinator panics with ErrInvalidState.
type Result[S, F any] struct {
	value   S
	err     F
	variant variant
}

// Succeed returns a Success holding value. The failure type comes first so
// it can be spelled alone: rop.Succeed[MyError]("ok").
func Succeed[F, S any](value S) Result[S, F] {
	Require(value, "value")
	return Result[S, F]{value: value, variant: success}
}

// Fail returns a Failure holding err: rop.Fail[string](myErr).
func Fail[S, F any](err F) Result[S, F] {
	Require(err, "error")
	return Result[S, F]{err: err, variant: failure}
}

func (r Result[S, F]) IsSuccess() bool {
	return r.variant == success
}

func (r Result[S, F]) IsFailure() bool {
	return r.variant == failure
}

// Value returns the success payload. It panics on a Failure.
func (r Result[S, F]) Value() S {
	if r.variant != success {
		panic(StateError("Value called on %s", r.variant))
	}
	return r.value
}

// Error returns the failure payload. It panics on a Success.
func (r Result[S, F]) Error() F {
	if r.variant != failure {
		panic(StateError("Error called on %s", r.variant))
	}
	return r.err
}

func (r Result[S, F]) String() string {
	switch r.variant {
	case success:
		return fmt.Sprintf("Success(%v)", r.value)
	case failure:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Result(<uninitialized>)"
	}
}

// Format keeps fmt from treating Result as an error when F is string.
func (r Result[S, F]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = fmt.Fprint(s, r.String())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, r.String())
	}
}

func (r Result[S, F]) mustBeInitialized() {
	if r.variant == uninitialized {
		panic(StateError("result is not initialized"))
	}
}

func rebindFailure[S2, S, F any](r Result[S, F]) Result[S2, F] {
	return Result[S2, F]{err: r.err, variant: failure}
}

func (v variant) String() string {
	switch v {
	case success:
		return "success"
	case failure:
		return "failure"
	default:
		return "uninitialized result"
	}
}
