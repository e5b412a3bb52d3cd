package reactive

// Observable wraps a Record and intercepts keyed reads and writes to
// drive dependency tracking and change notification. Its identity —
// the *Observable pointer itself, never the underlying record — is
// what the dependency graph keys on.
type Observable struct {
	id      uint32
	record  Record
	shallow bool
	refTag  bool
}

func (o *Observable) isTarget() {}

// Reactive wraps record in an Observable. Unless shallow is passed as
// true, every record-typed entry reachable at construction time is
// itself recursively wrapped.
func Reactive(record Record, shallow ...bool) *Observable {
	isShallow := len(shallow) > 0 && shallow[0]
	o := newObservable(isShallow)
	for k, v := range record {
		if !isShallow {
			v = maybeWrap(v)
		}
		o.record[k] = v
	}
	return o
}

func newObservable(shallow bool) *Observable {
	return &Observable{
		id:      nextInstanceID(),
		record:  Record{},
		shallow: shallow,
	}
}

// maybeWrap recursively converts plain Record values into Observables.
// An already-Observable value (or an already-Ref) is returned
// unchanged — re-wrapping is idempotent. Non-record, non-Observable
// values are returned as-is; the core never wraps opaque types.
func maybeWrap(v Value) Value {
	if v == nil {
		return v
	}
	switch x := v.(type) {
	case *Observable:
		return x
	case *Ref:
		return x
	case Record:
		return Reactive(x)
	default:
		return v
	}
}

// Get returns the stored value for key, recording the current effect
// and/or current computed as observers of (o, key) first.
func (o *Observable) Get(key Key) Value {
	v := o.record[key]
	track(o, key)
	return v
}

// Set stores newValue under key. A no-op write (refTag guarding a
// non-"value" key, or the stored value already equalling newValue)
// never reaches the dependency graph. Otherwise every transitively
// dependent Computed is marked dirty before any subscribed effect is
// invoked, with the previous value passed to each effect.
func (o *Observable) Set(key Key, newValue Value) {
	if o.refTag && key != valueKey {
		return
	}
	if !o.shallow {
		newValue = maybeWrap(newValue)
	}
	old := o.record[key]
	if valuesEqual(old, newValue) {
		return
	}
	o.record[key] = newValue
	defaultGraph.propagate(o, key)
	defaultGraph.notify(o, key, old)
}

// rawRecord returns the underlying record without going through
// tracking. It exists only for internal traversal (WatchReactive) and
// is never exported — callers never see it, only this package's own
// Get/Set interception do.
func (o *Observable) rawRecord() Record {
	return o.record
}
