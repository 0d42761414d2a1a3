package rop_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropnet/pkg/rop"
	"github.com/ib-77/ropnet/pkg/rop/failure"
	"github.com/ib-77/ropnet/pkg/rop/roptest"
	"github.com/ib-77/ropnet/pkg/rop/unitresult"
)

func TestMap_RejectsNilFunction(t *testing.T) {
	t.Parallel()

	sut := unitresult.Succeed[failure.Error]()
	var mapFunction func(rop.Unit) string

	roptest.PanicsWithErrorIs(t, rop.ErrInvalidArgument, func() {
		rop.Map(sut, mapFunction)
	})
}

func TestMap_RejectsNilFunctionOnFailureToo(t *testing.T) {
	t.Parallel()

	sut := unitresult.Fail(defaultError)
	var mapFunction func(rop.Unit) string

	roptest.PanicsWithErrorIs(t, rop.ErrInvalidArgument, func() {
		rop.Map(sut, mapFunction)
	})
}

func TestMap_RethrowsFunctionPanic(t *testing.T) {
	t.Parallel()

	exception := errors.New("invalid operation")
	sut := unitresult.Succeed[failure.Error]()

	assert.PanicsWithValue(t, exception, func() {
		rop.Map(sut, func(rop.Unit) string { panic(exception) })
	})
}

func TestMap_SuccessToNewSuccess(t *testing.T) {
	t.Parallel()

	sut := unitresult.Succeed[failure.Error]()

	result := rop.Map(sut, func(rop.Unit) string { return successValue })

	roptest.AssertSuccess(t, result, successValue)
}

func TestMap_Composition(t *testing.T) {
	t.Parallel()

	f := strings.ToUpper
	for _, v := range []string{"a", "ok", "railway"} {
		assert.Equal(t, rop.Succeed[failure.Error](f(v)), rop.Map(rop.Succeed[failure.Error](v), f))
	}
}

func TestMap_ReturnsInitialFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	sut := unitresult.Fail(unexpectedError)

	result := rop.Map(sut, func(rop.Unit) string {
		calls++
		return successValue
	})

	roptest.AssertFailure(t, result, unexpectedError)
	assert.Zero(t, calls)
}

func TestMap_RejectsAbsentOutput(t *testing.T) {
	t.Parallel()

	sut := unitresult.Succeed[failure.Error]()

	roptest.PanicsWithErrorIs(t, rop.ErrInvalidArgument, func() {
		rop.Map(sut, func(rop.Unit) *string { return nil })
	})
}
