package solo

import (
	"context"

	"github.com/ib-77/ropnet/pkg/rop"
)

func Succeed[F, S any](input S) rop.Result[S, F] {
	return rop.Succeed[F](input)
}

func Fail[S, F any](err F) rop.Result[S, F] {
	return rop.Fail[S](err)
}

func Validate[F, S any](ctx context.Context, input S,
	validate func(ctx context.Context, in S) (valid bool, reason F)) rop.Result[S, F] {
	return AndValidate(ctx, Succeed[F](input), validate)
}

func AndValidate[S, F any](ctx context.Context, input rop.Result[S, F],
	validate func(ctx context.Context, in S) (valid bool, reason F)) rop.Result[S, F] {

	rop.Require(validate, "validate")

	return rop.Bind(input, func(in S) rop.Result[S, F] {
		if valid, reason := validate(ctx, in); !valid {
			return rop.Fail[S](reason)
		}
		return input
	})
}

func Switch[In, F, Out any](ctx context.Context,
	input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, F]) rop.Result[Out, F] {

	rop.Require(onSuccess, "onSuccess")

	return rop.Bind(input, func(in In) rop.Result[Out, F] {
		return onSuccess(ctx, in)
	})
}

func Map[In, F, Out any](ctx context.Context,
	input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, F] {

	rop.Require(onSuccess, "onSuccess")

	return rop.Map(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

// Try runs a Go-style (Out, error) call on the success value. A non-nil
// error becomes a Failure through toFailure.
func Try[In, F, Out any](ctx context.Context, input rop.Result[In, F],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	toFailure func(err error) F) rop.Result[Out, F] {

	rop.Require(onTryExecute, "onTryExecute")
	rop.Require(toFailure, "toFailure")

	return rop.Bind(input, func(in In) rop.Result[Out, F] {
		out, err := onTryExecute(ctx, in)
		if err != nil {
			return rop.Fail[Out](toFailure(err))
		}
		return rop.Succeed[F](out)
	})
}

func FailOnError[S, F any](ctx context.Context, input rop.Result[S, F],
	maybeErr func(ctx context.Context, in S) error,
	toFailure func(err error) F) rop.Result[S, F] {

	rop.Require(maybeErr, "maybeErr")
	rop.Require(toFailure, "toFailure")

	return rop.Bind(input, func(in S) rop.Result[S, F] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[S](toFailure(err))
		}
		return input
	})
}

func Tee[S, F any](ctx context.Context,
	input rop.Result[S, F],
	onSuccess func(ctx context.Context, r S)) rop.Result[S, F] {

	rop.Require(onSuccess, "onSuccess")

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func DoubleTee[S, F any](ctx context.Context, input rop.Result[S, F],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, err F)) rop.Result[S, F] {

	rop.Require(onSuccess, "onSuccess")
	rop.Require(onFailure, "onFailure")

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		onFailure(ctx, input.Error())
	}
	return input
}

func Finally[In, F, Out any](ctx context.Context, input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err F) Out) Out {

	rop.Require(onSuccess, "onSuccess")
	rop.Require(onFailure, "onFailure")

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Error())
}
