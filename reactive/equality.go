package reactive

import "reflect"

// valuesEqual decides whether a write actually changed anything, using
// identity/primitive equality rather than deep equality: two distinct
// composite values with equal contents still count as changed. Go's
// `==` on an interface value panics if the dynamic type is a
// slice/map/func, so those are treated as always-different instead of
// falling back to reflect.DeepEqual, which would compare contents
// rather than identity.
func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	at := reflect.TypeOf(a)
	if at != reflect.TypeOf(b) {
		return false
	}
	switch at.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	default:
		return a == b
	}
}
