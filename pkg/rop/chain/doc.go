// Package chain provides a fluent wrapper around Result[S, F]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// A Chain carries the context handed to every step and a chain id. When the
// context holds a zerolog logger (see zerolog.Logger.WithContext), each step
// is reported at debug level with that id; otherwise nothing is logged.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[S, F] or value
// - Then: switch to a new Result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (S -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
