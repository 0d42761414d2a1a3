// Package unitresult builds rop results whose success carries no payload.
package unitresult

import "github.com/ib-77/ropnet/pkg/rop"

// Succeed returns a Success of rop.UnitValue for failure type F.
func Succeed[F any]() rop.Result[rop.Unit, F] {
	return rop.Succeed[F](rop.UnitValue)
}

// Success returns a Unit success whose failure type is bound later with
// rop.FromSuccess.
func Success() rop.GenericSuccess[rop.Unit] {
	return rop.Success(rop.UnitValue)
}

func Fail[F any](err F) rop.Result[rop.Unit, F] {
	return rop.Fail[rop.Unit](err)
}
