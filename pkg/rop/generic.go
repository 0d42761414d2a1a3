package rop

// GenericSuccess carries a validated success value until the failure type
// is known. Convert it with FromSuccess.
type GenericSuccess[S any] struct {
	value S
}

// GenericFailure carries a validated failure value until the success type
// is known. Convert it with FromFailure.
type GenericFailure[F any] struct {
	err F
}

func Success[S any](value S) GenericSuccess[S] {
	Require(value, "value")
	return GenericSuccess[S]{value: value}
}

func Failure[F any](err F) GenericFailure[F] {
	Require(err, "error")
	return GenericFailure[F]{err: err}
}

// FromSuccess binds the failure type: rop.FromSuccess[MyError](rop.Success(1)).
func FromSuccess[F, S any](s GenericSuccess[S]) Result[S, F] {
	return Succeed[F](s.value)
}

// FromFailure binds the success type: rop.FromFailure[int](rop.Failure(err)).
func FromFailure[S, F any](f GenericFailure[F]) Result[S, F] {
	return Fail[S](f.err)
}

// FromError promotes a bare failure payload, same as Fail.
func FromError[S, F any](err F) Result[S, F] {
	return Fail[S](err)
}
