package maybe

import "reflect"

// IsNil reports whether v is nil: an untyped nil or a nil pointer, map,
// slice, channel, function or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
