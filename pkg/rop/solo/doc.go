// Package solo contains single-value, synchronous ROP primitives that take a
// context and operate on Result[S, F]. They are thin context-aware layers
// over rop.Map and rop.Bind.
//
// Highlights:
// - Succeed/Fail: construct Result[S, F]
// - Validate/AndValidate: turn a failed check into a Failure
// - Switch: move from Result[In, F] to Result[Out, F]
// - Map: transform successful values
// - Try/FailOnError: call (Out, error) style functions, mapping error to F
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
