package reactive

// EffectFunc is the callback shape registered via Watch. It receives
// the previous value of whichever (target, key) triggered this
// invocation; the initial, synchronous run passes nil, since there is
// no previous value yet.
type EffectFunc func(old Value)

// Handle is the opaque, comparable token Watch's family of functions
// use internally to identify a registered effect. It is exposed only
// so Unwatch can be called at all — Go closures aren't comparable, so
// there is no other way for a caller to name "the effect I registered
// earlier".
type Handle = *effectHandle

// Watch registers fn as an effect: fn runs once, synchronously, right
// now, with nil as the previous value, and every (target, key) it
// reads during that run becomes a dependency. A later write to any of
// those keys re-invokes fn with the value being replaced. Returns a
// disposer that removes fn from every subscription it ended up with.
func Watch(fn EffectFunc) Disposer {
	h := newEffectHandle(fn)
	pop := tracker.pushEffect(h)
	func() {
		defer pop()
		fn(nil)
	}()
	return func() { defaultGraph.removeEffectEverywhere(h) }
}

// WatchHandle is Watch, but also returns the Handle so the caller can
// make a later Unwatch call naming this specific effect — otherwise
// removing a single, specific effect from outside the package would be
// unreachable.
func WatchHandle(fn EffectFunc) (Disposer, Handle) {
	h := newEffectHandle(fn)
	pop := tracker.pushEffect(h)
	func() {
		defer pop()
		fn(nil)
	}()
	return func() { defaultGraph.removeEffectEverywhere(h) }, h
}

// Unwatch removes a subscription: with h nil, it drops the whole
// (target, *key) entry; with key nil, it drops every entry for target;
// otherwise it removes just h.
func Unwatch(t Target, key *Key, h Handle) {
	defaultGraph.unsubscribe(t, key, h)
}

// WatchRef fires cb(newVal, oldVal) whenever r.Value() changes. Unlike
// Watch, it does not call cb immediately at registration — it only
// reads r once, under tracking, to record its dependencies and seed
// its remembered last value.
func WatchRef(r *Ref, cb func(newVal, oldVal Value)) Disposer {
	return watchTarget(Target(r.Observable), r.Value, cb)
}

// WatchComputed fires cb(newVal, oldVal) whenever a Computed's value
// changes. src may be a *Computed, or a bare getter — in the latter
// case it is first wrapped with NewComputed, the same as calling
// WatchComputed with a freshly constructed read-only Computed.
func WatchComputed(src any, cb func(newVal, oldVal Value)) Disposer {
	c, ok := src.(*Computed)
	if !ok {
		getter, ok := src.(func(prev Value) Value)
		if !ok {
			panic("reactive.WatchComputed: src must be a *Computed or a func(prev Value) Value")
		}
		c = NewComputed(getter)
	}
	return watchTarget(Target(c), c.Value, cb)
}

// watchTarget is the shared implementation behind WatchRef and
// WatchComputed. read returns the watched target's current value.
//
// Because an Observable read registers the current effect *and* the
// current computed simultaneously, reading a dirty Computed (so that
// its getter runs) while this wrapper is the current effect also
// subscribes the wrapper directly to every observable key the getter
// touches — not just to (target, "value"). If the Computed's cache is
// already fresh at registration, the getter does not run and only
// (target, "value") is subscribed. So the wrapper cannot trust the oldValue a given
// notify call happens to carry (it may belong to an upstream key);
// instead it remembers the watched target's own last value and only
// calls cb when that, specifically, changed.
func watchTarget(t Target, read func() Value, cb func(newVal, oldVal Value)) Disposer {
	h := newEffectHandle(nil)
	var last Value
	h.fn = func(Value) {
		next := read()
		if valuesEqual(next, last) {
			return
		}
		old := last
		last = next
		cb(next, old)
	}

	pop := tracker.pushEffect(h)
	func() {
		defer pop()
		last = read()
	}()

	return func() { defaultGraph.removeEffectEverywhere(h) }
}

// WatchReactive recursively walks obs's underlying record. For every
// (obs, key) encountered — including keys of any nested Observable
// reached through a record value — it subscribes a wrapper reporting
// (key, currentValue, oldValue). Returns a single disposer that
// unsubscribes every wrapper it created.
func WatchReactive(obs *Observable, cb func(key Key, newVal, oldVal Value)) Disposer {
	var disposers []Disposer
	var visited = map[*Observable]bool{}

	var walk func(o *Observable)
	walk = func(o *Observable) {
		if visited[o] {
			return
		}
		visited[o] = true
		for key, val := range o.rawRecord() {
			key := key
			d := watchTarget(Target(o), func() Value { return o.Get(key) }, func(nv, ov Value) {
				cb(key, nv, ov)
			})
			disposers = append(disposers, d)

			switch nested := val.(type) {
			case *Observable:
				walk(nested)
			case *Ref:
				walk(nested.Observable)
			}
		}
	}
	walk(obs)

	return func() {
		for _, d := range disposers {
			d()
		}
	}
}
