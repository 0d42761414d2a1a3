package rop

import "reflect"

// IsNil reports whether i is absent: a nil interface or a nil value of a
// nillable kind. Numbers, strings, structs and arrays are never absent.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
