package reactive

// Computed is a lazily-recomputed, cache-backed value produced by a
// getter that may read Observables, Refs or other Computeds. It
// recognizes exactly one key, "value" — there is no generic keyed
// access, so any other key being absent/no-op holds by construction
// rather than by a runtime check.
type Computed struct {
	id     uint32
	cached Value
	dirty  bool
	getter func(prev Value) Value
	setter func(next Value)
}

func (c *Computed) isTarget() {}

// NewComputed returns a read-only Computed. Writing to its Value is a
// silent no-op because no setter exists.
func NewComputed(getter func(prev Value) Value) *Computed {
	return &Computed{id: nextInstanceID(), getter: getter, dirty: true}
}

// NewWritableComputed returns a Computed whose Value can also be
// written; the write stores the new value directly and invokes setter,
// analogous to a Vue computed ref's {get, set} form.
func NewWritableComputed(getter func(prev Value) Value, setter func(next Value)) *Computed {
	return &Computed{id: nextInstanceID(), getter: getter, setter: setter, dirty: true}
}

// Value returns the computed's current value, recomputing it first if
// dirty. The getter receives the previous cachedValue (nil on first
// evaluation) so callers can implement incremental computations. c is
// pushed onto the computed stack before the getter runs and popped on
// every exit path, including a panicking getter.
func (c *Computed) Value() Value {
	if c.dirty {
		prev := c.cached
		pop := tracker.pushComputed(c)
		func() {
			defer pop()
			c.cached = c.getter(prev)
		}()
		c.dirty = false
	}
	track(c, valueKey)
	return c.cached
}

// SetValue is a no-op unless a setter was configured: writing a
// read-only Computed is silently ignored, and the same write never
// triggers effects because nothing was stored. Otherwise the new value
// becomes the cache directly, the setter runs, and — only if the value
// actually changed — downstream computeds are marked dirty and
// subscribed effects are notified with the previous value.
func (c *Computed) SetValue(next Value) {
	if c.setter == nil {
		return
	}
	old := c.cached
	c.cached = next
	c.setter(next)
	if !valuesEqual(old, next) {
		defaultGraph.propagate(c, valueKey)
		defaultGraph.notify(c, valueKey, old)
	}
}

// markDirty sets dirty without recomputing. Called by Graph.propagate
// while walking dependents of a changed (target, key).
func (c *Computed) markDirty() {
	c.dirty = true
}

// ClearComputed releases c from the dependency graph and drops its
// cache. A subsequent Value() read starts fresh, as if c had just been
// constructed.
func ClearComputed(c *Computed) {
	defaultGraph.clearLink(c)
	c.cached = nil
	c.dirty = true
}
