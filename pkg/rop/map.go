package rop

// Map applies mapFunction to the success value and wraps its output in a new
// Success. A Failure is returned rebound to S2 without calling mapFunction.
//
// Panics raised by mapFunction are not recovered. An absent output panics
// the way Succeed does.
func Map[S, F, S2 any](r Result[S, F], mapFunction func(S) S2) Result[S2, F] {
	Require(mapFunction, "mapFunction")
	r.mustBeInitialized()

	if r.IsFailure() {
		return rebindFailure[S2](r)
	}
	return Succeed[F](mapFunction(r.value))
}
