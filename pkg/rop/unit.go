package rop

// Unit is the payload of a success that carries no value.
type Unit struct{}

// UnitValue is the canonical Unit.
var UnitValue = Unit{}

func (Unit) String() string {
	return "()"
}
