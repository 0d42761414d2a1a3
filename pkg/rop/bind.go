package rop

import "github.com/ib-77/ropnet/pkg/rop/future"

// Bind hands the success value to bindFunction and returns its Result as is.
// A Failure short-circuits: bindFunction is not called.
func Bind[S, F, S2 any](r Result[S, F], bindFunction func(S) Result[S2, F]) Result[S2, F] {
	Require(bindFunction, "bindFunction")
	r.mustBeInitialized()

	if r.IsFailure() {
		return rebindFailure[S2](r)
	}
	return bindFunction(r.value)
}

// BindAsync is Bind for a continuation that returns a pending Result.
//
// On a Failure the returned future is already resolved and
// bindFunctionAsync is never called. On a Success the continuation runs on
// its own goroutine; a panic there, or a nil future returned from it,
// faults the returned future and is raised again by Await.
func BindAsync[S, F, S2 any](r Result[S, F],
	bindFunctionAsync func(S) *future.Future[Result[S2, F]]) *future.Future[Result[S2, F]] {

	Require(bindFunctionAsync, "bindFunctionAsync")
	r.mustBeInitialized()

	if r.IsFailure() {
		return future.Resolved(rebindFailure[S2](r))
	}

	value := r.value
	return future.Go(func() Result[S2, F] {
		pending := bindFunctionAsync(value)
		if pending == nil {
			panic(StateError("bindFunctionAsync returned a nil future"))
		}
		return pending.Await()
	})
}
