package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/ropnet/pkg/rop"
	"github.com/ib-77/ropnet/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[S, F any] struct {
	ctx    context.Context
	id     uuid.UUID
	result rop.Result[S, F]
}

// Start creates a new chain from a rop.Result
func Start[S, F any](ctx context.Context, result rop.Result[S, F]) *Chain[S, F] {
	c := &Chain[S, F]{
		ctx:    ctx,
		id:     uuid.New(),
		result: result,
	}
	c.trace("start")
	return c
}

// FromValue creates a new chain from a successful value
func FromValue[F, S any](ctx context.Context, value S) *Chain[S, F] {
	return Start(ctx, rop.Succeed[F](value))
}

// Result returns the underlying rop.Result
func (c *Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

// ID identifies the chain in log events. It is kept across steps.
func (c *Chain[S, F]) ID() uuid.UUID {
	return c.id
}

// Then chains a function that keeps the success type
func (c *Chain[S, F]) Then(onSuccess func(context.Context, S) rop.Result[S, F]) *Chain[S, F] {
	return Then(c, onSuccess)
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, F]) Ensure(onSuccess func(context.Context, S)) *Chain[S, F] {
	return next(c, "ensure", solo.Tee(c.ctx, c.result, onSuccess))
}

// Then chains a function that returns rop.Result[U, F]
func Then[S, F, U any](c *Chain[S, F], onSuccess func(context.Context, S) rop.Result[U, F]) *Chain[U, F] {
	return next(c, "then", solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[S, F, U any](c *Chain[S, F], tryOnSuccess func(context.Context, S) (U, error),
	toFailure func(error) F) *Chain[U, F] {
	return next(c, "then_try", solo.Try(c.ctx, c.result, tryOnSuccess, toFailure))
}

// Map chains a pure transformation function
func Map[S, F, U any](c *Chain[S, F], onSuccess func(context.Context, S) U) *Chain[U, F] {
	return next(c, "map", solo.Map(c.ctx, c.result, onSuccess))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[S, F, U any](c *Chain[S, F], onSuccess func(context.Context, S) U,
	onFailure func(context.Context, F) U) U {
	c.trace("finally")
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}

func next[S, F, U any](c *Chain[S, F], step string, result rop.Result[U, F]) *Chain[U, F] {
	n := &Chain[U, F]{
		ctx:    c.ctx,
		id:     c.id,
		result: result,
	}
	n.trace(step)
	return n
}

func (c *Chain[S, F]) trace(step string) {
	e := zerolog.Ctx(c.ctx).Debug()
	if !e.Enabled() {
		return
	}

	e = e.Stringer("chain", c.id).Str("step", step).Bool("success", c.result.IsSuccess())
	if c.result.IsFailure() {
		e = e.Interface("failure", c.result.Error())
	}
	e.Msg("chain step")
}
