package async

import (
	"github.com/ib-77/ropnet/pkg/rop"
	"github.com/ib-77/ropnet/pkg/rop/future"
)

func Map[S, F, S2 any](pending *future.Future[rop.Result[S, F]],
	mapFunction func(S) S2) *future.Future[rop.Result[S2, F]] {

	rop.Require(pending, "pending")
	rop.Require(mapFunction, "mapFunction")

	return future.Then(pending, func(r rop.Result[S, F]) rop.Result[S2, F] {
		return rop.Map(r, mapFunction)
	})
}

func Bind[S, F, S2 any](pending *future.Future[rop.Result[S, F]],
	bindFunction func(S) rop.Result[S2, F]) *future.Future[rop.Result[S2, F]] {

	rop.Require(pending, "pending")
	rop.Require(bindFunction, "bindFunction")

	return future.Then(pending, func(r rop.Result[S, F]) rop.Result[S2, F] {
		return rop.Bind(r, bindFunction)
	})
}

func BindAsync[S, F, S2 any](pending *future.Future[rop.Result[S, F]],
	bindFunctionAsync func(S) *future.Future[rop.Result[S2, F]]) *future.Future[rop.Result[S2, F]] {

	rop.Require(pending, "pending")
	rop.Require(bindFunctionAsync, "bindFunctionAsync")

	return future.FlatThen(pending, func(r rop.Result[S, F]) *future.Future[rop.Result[S2, F]] {
		return rop.BindAsync(r, bindFunctionAsync)
	})
}

// FromValue returns a future already resolved with value.
// It panics when value is absent.
func FromValue[T any](value T) *future.Future[T] {
	rop.Require(value, "value")
	return future.Resolved(value)
}
