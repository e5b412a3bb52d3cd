package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// depKey identifies a single (target, key) slot in either table.
type depKey struct {
	target Target
	key    Key
}

// effectHandle is the comparable, pointer-identity stand-in for a
// registered effect. Go function values aren't comparable, so every
// effect the Watch API registers gets wrapped in one of these — the
// handle, not the closure, is what subscriber lists dedupe and remove
// by. It also remembers every (target, key) it ended up subscribed to
// so its disposer can remove it everywhere in O(k) instead of scanning
// the whole graph.
type effectHandle struct {
	fn    EffectFunc
	keys  []depKey
	inKey mapset.Set[depKey]
}

func newEffectHandle(fn EffectFunc) *effectHandle {
	return &effectHandle{fn: fn, inKey: mapset.NewSet[depKey]()}
}

func (h *effectHandle) noteKey(dk depKey) {
	if h.inKey.Add(dk) {
		h.keys = append(h.keys, dk)
	}
}

// effectList is the ordered, deduplicated subscriber list for one
// (target, key) slot in the effects table.
type effectList struct {
	order []*effectHandle
	seen  mapset.Set[*effectHandle]
}

func newEffectList() *effectList {
	return &effectList{seen: mapset.NewSet[*effectHandle]()}
}

func (l *effectList) add(h *effectHandle) {
	if l.seen.Add(h) {
		l.order = append(l.order, h)
	}
}

func (l *effectList) remove(h *effectHandle) {
	if !l.seen.Contains(h) {
		return
	}
	l.seen.Remove(h)
	for i, e := range l.order {
		if e == h {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *effectList) snapshot() []*effectHandle {
	out := make([]*effectHandle, len(l.order))
	copy(out, l.order)
	return out
}

// computedList is the ordered, deduplicated dependent list for one
// (target, key) slot in the deps table.
type computedList struct {
	order []*Computed
	seen  mapset.Set[*Computed]
}

func newComputedList() *computedList {
	return &computedList{seen: mapset.NewSet[*Computed]()}
}

func (l *computedList) add(c *Computed) {
	if l.seen.Add(c) {
		l.order = append(l.order, c)
	}
}

func (l *computedList) remove(c *Computed) {
	if !l.seen.Contains(c) {
		return
	}
	l.seen.Remove(c)
	for i, e := range l.order {
		if e == c {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Graph owns the two-level subscribers ("effects") and dependents
// ("deps") tables. All of its state is process-wide and mutated only
// from within Observable/Computed interception and the Watch API —
// external code never touches it.
type Graph struct {
	deps    map[depKey]*computedList
	effects map[depKey]*effectList
}

func newGraph() *Graph {
	return &Graph{
		deps:    map[depKey]*computedList{},
		effects: map[depKey]*effectList{},
	}
}

var defaultGraph = newGraph()

// link appends dependentComputed to deps[target][key] if it isn't
// already there. A nil dependentComputed is a no-op.
func (g *Graph) link(t Target, k Key, dependent *Computed) {
	if dependent == nil {
		return
	}
	dk := depKey{t, k}
	lst := g.deps[dk]
	if lst == nil {
		lst = newComputedList()
		g.deps[dk] = lst
	}
	lst.add(dependent)
}

// propagate walks deps[target][key] marking every dependent Computed
// dirty, recursing into (dependent, "value") for computed dependents.
// This is a pre-order traversal with no cycle detection — an
// accidental Computed→Computed cycle recurses without bound.
func (g *Graph) propagate(t Target, k Key) {
	lst := g.deps[depKey{t, k}]
	if lst == nil {
		return
	}
	for _, c := range lst.snapshotComputeds() {
		c.markDirty()
		g.propagate(Target(c), valueKey)
	}
}

func (l *computedList) snapshotComputeds() []*Computed {
	out := make([]*Computed, len(l.order))
	copy(out, l.order)
	return out
}

// subscribe appends effect to effects[target][key] if it isn't already
// there, and records the key on the handle so its disposer can find it
// again without a full graph scan.
func (g *Graph) subscribe(t Target, k Key, h *effectHandle) {
	dk := depKey{t, k}
	lst := g.effects[dk]
	if lst == nil {
		lst = newEffectList()
		g.effects[dk] = lst
	}
	lst.add(h)
	h.noteKey(dk)
}

// notify invokes every effect of (target, key), in insertion order,
// with oldValue. The list is snapshotted first so an effect that
// disposes itself or another effect mid-cascade can't corrupt the
// iteration.
func (g *Graph) notify(t Target, k Key, old Value) {
	lst := g.effects[depKey{t, k}]
	if lst == nil {
		return
	}
	for _, h := range lst.snapshot() {
		h.fn(old)
	}
}

// unsubscribe is a three-way contract: with no effect, drop the whole
// key entry; with no key, drop every key entry for that target;
// otherwise remove just the one effect.
func (g *Graph) unsubscribe(t Target, key *Key, h *effectHandle) {
	if key == nil {
		for dk := range g.effects {
			if dk.target == t {
				delete(g.effects, dk)
			}
		}
		return
	}
	dk := depKey{t, *key}
	if h == nil {
		delete(g.effects, dk)
		return
	}
	if lst, ok := g.effects[dk]; ok {
		lst.remove(h)
		if len(lst.order) == 0 {
			delete(g.effects, dk)
		}
	}
}

// removeEffectEverywhere drops h from every (target, key) entry it is
// known to be subscribed to. Backs the disposer returned by Watch and
// the watch* helpers; idempotent because removing an absent handle
// from a list it's already gone from is a no-op.
func (g *Graph) removeEffectEverywhere(h *effectHandle) {
	for _, dk := range h.keys {
		if lst, ok := g.effects[dk]; ok {
			lst.remove(h)
			if len(lst.order) == 0 {
				delete(g.effects, dk)
			}
		}
	}
}

// clearLink removes c from every dependents list across the entire
// graph and drops deps[c] itself, pruning empty entries. Backs
// ClearComputed.
func (g *Graph) clearLink(c *Computed) {
	for dk, lst := range g.deps {
		if dk.target == Target(c) {
			delete(g.deps, dk)
			continue
		}
		lst.remove(c)
		if len(lst.order) == 0 {
			delete(g.deps, dk)
		}
	}
}

func resetDefaultGraph() {
	defaultGraph = newGraph()
}
