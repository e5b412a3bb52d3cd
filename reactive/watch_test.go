package reactive_test

import (
	"testing"

	"github.com/YanqingXu/govue/reactive"
	"github.com/stretchr/testify/assert"
)

// basic ref watch: initial run plus one re-run per actual change
func TestWatchBasicRef(t *testing.T) {
	reactive.Reset()

	a := reactive.NewRef(1)
	var dummy reactive.Value
	calls := 0
	reactive.Watch(func(reactive.Value) {
		calls++
		dummy = a.Value()
	})

	assert.Equal(t, 1, dummy)

	a.SetValue(2)
	assert.Equal(t, 2, dummy)

	a.SetValue(2)
	assert.Equal(t, 2, calls, "a no-op write must not invoke the effect again")
}

// disposer idempotence: calling it twice behaves like calling it once
func TestWatchDisposerIdempotent(t *testing.T) {
	reactive.Reset()

	a := reactive.NewRef(1)
	calls := 0
	dispose := reactive.Watch(func(reactive.Value) {
		calls++
		a.Value()
	})
	assert.Equal(t, 1, calls)

	dispose()
	dispose()

	a.SetValue(2)
	assert.Equal(t, 1, calls, "a disposed effect must never fire again")
}

// nested watch: registering a new watcher from inside a running effect
// must work, and the inner effect's own initial reads must subscribe
// the inner effect (the top of the effect stack), not the outer one
func TestNestedWatch(t *testing.T) {
	reactive.Reset()

	a := reactive.NewRef(true)
	b := reactive.NewRef(1)
	var innerCalls int

	var disposeInner reactive.Disposer
	reactive.Watch(func(reactive.Value) {
		if a.Value().(bool) {
			disposeInner = reactive.Watch(func(reactive.Value) {
				innerCalls++
				b.Value()
			})
		}
	})

	assert.Equal(t, 1, innerCalls)

	b.SetValue(2)
	assert.Equal(t, 2, innerCalls)

	disposeInner()
	b.SetValue(3)
	assert.Equal(t, 2, innerCalls)
}

// WatchRef only fires on an actual subsequent change, never immediately
func TestWatchRefNotImmediate(t *testing.T) {
	reactive.Reset()

	r := reactive.NewRef(1)
	var gotNew, gotOld reactive.Value
	calls := 0
	reactive.WatchRef(r, func(newVal, oldVal reactive.Value) {
		calls++
		gotNew, gotOld = newVal, oldVal
	})

	assert.Equal(t, 0, calls)

	r.SetValue(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, gotNew)
	assert.Equal(t, 1, gotOld)
}

// WatchComputed fires from a write to the computed's own upstream
// dependency, with (new, old) reported in terms of the computed's own
// value — not whatever key happened to be written upstream
func TestWatchComputedFromUpstreamWrite(t *testing.T) {
	reactive.Reset()

	n := reactive.NewRef(1)
	c := reactive.NewComputed(func(reactive.Value) reactive.Value { return n.Value().(int) * 10 })

	var gotNew, gotOld reactive.Value
	calls := 0
	reactive.WatchComputed(c, func(newVal, oldVal reactive.Value) {
		calls++
		gotNew, gotOld = newVal, oldVal
	})
	assert.Equal(t, 0, calls)

	n.SetValue(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 20, gotNew)
	assert.Equal(t, 10, gotOld)
}

// WatchComputed also accepts a bare getter, wrapping it the same way
// computed({get}) would
func TestWatchComputedFromGetter(t *testing.T) {
	reactive.Reset()

	n := reactive.NewRef(1)
	calls := 0
	reactive.WatchComputed(func(reactive.Value) reactive.Value { return n.Value() }, func(reactive.Value, reactive.Value) {
		calls++
	})

	n.SetValue(2)
	assert.Equal(t, 1, calls)
}

// WatchReactive reports (key, new, old) for every key, including keys
// of a nested reactive value
func TestWatchReactiveReportsKeyAndNested(t *testing.T) {
	reactive.Reset()

	o := reactive.Reactive(reactive.Record{
		"name":   "a",
		"nested": reactive.Record{"count": 1},
	})

	type event struct {
		key reactive.Key
		nv  reactive.Value
		ov  reactive.Value
	}
	var events []event
	reactive.WatchReactive(o, func(key reactive.Key, nv, ov reactive.Value) {
		events = append(events, event{key, nv, ov})
	})

	o.Set("name", "b")
	nested := o.Get("nested").(*reactive.Observable)
	nested.Set("count", 2)

	assert.Len(t, events, 2)
	assert.Equal(t, "name", events[0].key)
	assert.Equal(t, "b", events[0].nv)
	assert.Equal(t, "a", events[0].ov)
	assert.Equal(t, "count", events[1].key)
	assert.Equal(t, 2, events[1].nv)
	assert.Equal(t, 1, events[1].ov)
}

// Unwatch with a handle removes only that one effect
func TestUnwatchSingleEffect(t *testing.T) {
	reactive.Reset()

	r := reactive.NewRef(1)
	callsA, callsB := 0, 0

	_, ha := reactive.WatchHandle(func(reactive.Value) {
		callsA++
		r.Value()
	})
	reactive.Watch(func(reactive.Value) {
		callsB++
		r.Value()
	})

	reactive.Unwatch(reactive.Target(r.Observable), strPtr("value"), ha)

	r.SetValue(2)
	assert.Equal(t, 1, callsA, "the unwatched effect must not fire again")
	assert.Equal(t, 2, callsB, "the other effect on the same key must still fire")
}

func strPtr(s string) *string { return &s }
