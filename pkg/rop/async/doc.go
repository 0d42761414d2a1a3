// Package async lifts rop combinators over pending results.
//
// Each function takes a *future.Future of a rop.Result, awaits it and
// applies the matching rop combinator:
// - Map: rop.Map over a pending result
// - Bind: rop.Bind over a pending result
// - BindAsync: rop.BindAsync over a pending result
// - FromValue: wrap a ready value into a resolved future
//
// Nil arguments panic at the call site. Panics raised while resolving the
// input or inside a continuation fault the returned future and surface
// from its Await.
package async
