// Package roptest holds testify-based assertions for rop.Result values.
package roptest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropnet/pkg/rop"
)

// AssertSuccess checks that r is a Success holding want.
func AssertSuccess[S, F any](t testing.TB, r rop.Result[S, F], want S) {
	t.Helper()
	require.True(t, r.IsSuccess(), "expected success, got %v", r)
	assert.Equal(t, want, r.Value())
}

// AssertFailure checks that r is a Failure holding want.
func AssertFailure[S, F any](t testing.TB, r rop.Result[S, F], want F) {
	t.Helper()
	require.True(t, r.IsFailure(), "expected failure, got %v", r)
	assert.Equal(t, want, r.Error())
}

// AssertSuccessInvariants also checks that the failure side is unreachable.
func AssertSuccessInvariants[S, F any](t testing.TB, r rop.Result[S, F], want S) {
	t.Helper()
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, want, r.Value())
	PanicsWithErrorIs(t, rop.ErrInvalidState, func() { r.Error() })
}

// AssertFailureInvariants also checks that the success side is unreachable.
func AssertFailureInvariants[S, F any](t testing.TB, r rop.Result[S, F], want F) {
	t.Helper()
	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, want, r.Error())
	PanicsWithErrorIs(t, rop.ErrInvalidState, func() { r.Value() })
}

// PanicsWithErrorIs checks that fn panics with an error matching target.
func PanicsWithErrorIs(t testing.TB, target error, fn func()) {
	t.Helper()

	p := recovered(fn)
	require.NotNil(t, p, "expected a panic wrapping %v", target)

	err, ok := p.(error)
	require.True(t, ok, "expected an error panic, got %#v", p)
	assert.True(t, errors.Is(err, target), "expected %v to wrap %v", err, target)
}

func recovered(fn func()) (p any) {
	defer func() {
		p = recover()
	}()
	fn()
	return nil
}
