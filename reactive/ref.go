package reactive

// Ref is an Observable whose underlying record has exactly one
// recognized key, "value". Writes to any other key are silently
// ignored.
type Ref struct {
	*Observable
}

// NewRef wraps initial (or nil, if omitted) in a Ref. It is equivalent
// to Reactive(Record{"value": initial}) with the "value"-only
// restriction tagged on at construction, so IsRef never has to infer
// it from key order.
func NewRef(initial ...Value) *Ref {
	v := Value(nil)
	if len(initial) > 0 {
		v = initial[0]
	}
	o := newObservable(false)
	o.refTag = true
	o.record[valueKey] = maybeWrap(v)
	return &Ref{o}
}

// Value reads the ref's current value, tracking it the same way any
// other Observable read does.
func (r *Ref) Value() Value {
	return r.Get(valueKey)
}

// SetValue writes the ref's value, triggering the usual cascade if it
// actually changed.
func (r *Ref) SetValue(v Value) {
	r.Set(valueKey, v)
}
