// Package rop implements the Railway-Oriented Result type: a value that is
// either a Success carrying S or a Failure carrying F, never both.
//
// Highlights:
// - Succeed/Fail: construct a fully typed Result[S, F]
// - Success/Failure + FromSuccess/FromFailure: one-sided construction when
//   the other type parameter is only known at the use site
// - Map: transform the success value, pass failures through
// - Bind/BindAsync: chain failure-capable steps, short-circuit on failure
// - Unit/UnitValue: payload for successes that carry nothing
//
// Misuse (nil arguments, absent payloads, reading Value of a Failure) panics
// with an error wrapping ErrInvalidArgument or ErrInvalidState. Domain
// failures never panic; they travel in the Failure variant.
//
// Go methods cannot declare type parameters, so combinators that change the
// success type are package-level functions: rop.Map(r, f), rop.Bind(r, f).
// Type-lifted variants over pending computations live in package async.
package rop
