package reactive

// IsReactive reports whether x is an Observable or a Ref (a Ref is an
// Observable specialized to its "value" slot).
func IsReactive(x any) bool {
	switch x.(type) {
	case *Observable, *Ref:
		return true
	default:
		return false
	}
}

// IsRef reports whether x is a Ref. This checks the construction-time
// tag rather than inspecting the underlying record's keys, since key
// order isn't a reliable signal.
func IsRef(x any) bool {
	_, ok := x.(*Ref)
	return ok
}

// IsComputed reports whether x is a Computed.
func IsComputed(x any) bool {
	_, ok := x.(*Computed)
	return ok
}
