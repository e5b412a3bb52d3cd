package reactive_test

import (
	"testing"

	"github.com/YanqingXu/govue/reactive"
	"github.com/stretchr/testify/assert"
)

// a changed write invokes the effect exactly twice total (once on
// registration, once on the one real change) and the effect observes
// the new value
func TestObservablePropertyChangeInvokesEffect(t *testing.T) {
	reactive.Reset()

	o := reactive.Reactive(reactive.Record{"k": "a"})
	var dummy reactive.Value
	calls := 0
	reactive.Watch(func(reactive.Value) {
		calls++
		dummy = o.Get("k")
	})

	o.Set("k", "b")

	assert.Equal(t, 2, calls)
	assert.Equal(t, "b", dummy)
}

// writing the same value again invokes no effect
func TestObservablePropertyNoOpWrite(t *testing.T) {
	reactive.Reset()

	o := reactive.Reactive(reactive.Record{"k": "a"})
	calls := 0
	reactive.Watch(func(reactive.Value) { calls++; o.Get("k") })

	o.Set("k", "a")
	assert.Equal(t, 1, calls)
}

// deep reactive() recursively wraps nested record values, both at
// construction time and on a later write
func TestReactiveDeepWrapsNested(t *testing.T) {
	reactive.Reset()

	o := reactive.Reactive(reactive.Record{
		"child": reactive.Record{"x": 1},
	})
	child, ok := o.Get("child").(*reactive.Observable)
	assert.True(t, ok, "a nested record must be wrapped into an Observable at construction")
	assert.True(t, reactive.IsReactive(child))

	o.Set("other", reactive.Record{"y": 2})
	other, ok := o.Get("other").(*reactive.Observable)
	assert.True(t, ok, "a nested record assigned later must also be wrapped, in deep mode")
	assert.Equal(t, 2, other.Get("y"))
}

// shallow reactive() does not wrap nested record values
func TestReactiveShallowDoesNotWrapNested(t *testing.T) {
	reactive.Reset()

	o := reactive.Reactive(reactive.Record{"child": reactive.Record{"x": 1}}, true)
	_, ok := o.Get("child").(*reactive.Observable)
	assert.False(t, ok, "shallow mode must leave nested records unwrapped")
}

// re-wrapping an already-reactive value is idempotent
func TestReactiveRewrapIsIdempotent(t *testing.T) {
	reactive.Reset()

	inner := reactive.Reactive(reactive.Record{"x": 1})
	outer := reactive.Reactive(reactive.Record{"child": inner})

	assert.Same(t, inner, outer.Get("child"))
}

// re-entrant cascades: a write performed from inside an effect runs
// its own cascade to completion before the outer cascade resumes
func TestReentrantWriteCascade(t *testing.T) {
	reactive.Reset()

	a := reactive.NewRef(0)
	b := reactive.NewRef(0)
	var order []string

	reactive.Watch(func(reactive.Value) {
		order = append(order, "a-effect")
		_ = a.Value()
	})
	reactive.Watch(func(old reactive.Value) {
		order = append(order, "b-effect")
		if b.Value().(int) == 1 {
			a.SetValue(a.Value().(int) + 1)
		}
	})

	order = nil
	b.SetValue(1)

	assert.Equal(t, []string{"b-effect", "a-effect"}, order)
	assert.Equal(t, 1, a.Value())
}
