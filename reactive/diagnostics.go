package reactive

// SlotSnapshot is a read-only, point-in-time description of one
// (target, key) slot in the dependency graph: how many effects
// subscribe to it and how many Computeds depend on it. It exists only
// for host diagnostics (see cmd/govue-demo) and never feeds back into
// the core's control flow.
type SlotSnapshot struct {
	TargetID     string
	Key          Key
	EffectCount  int
	ComputedDeps int
}

// Snapshot exports the current state of the default dependency graph.
// Grounded in pkg/flimsy's observer.dispose(), which already walks an
// observer's signals/observers sets to tear them down — here the same
// kind of walk is read-only and exposed for inspection instead.
func Snapshot() []SlotSnapshot {
	seen := map[depKey]bool{}
	var out []SlotSnapshot

	for dk, lst := range defaultGraph.effects {
		seen[dk] = true
		out = append(out, SlotSnapshot{
			TargetID:     targetID(dk.target),
			Key:          dk.key,
			EffectCount:  len(lst.order),
			ComputedDeps: 0,
		})
	}
	for dk, lst := range defaultGraph.deps {
		if seen[dk] {
			for i := range out {
				if out[i].TargetID == targetID(dk.target) && out[i].Key == dk.key {
					out[i].ComputedDeps = len(lst.order)
				}
			}
			continue
		}
		out = append(out, SlotSnapshot{
			TargetID:     targetID(dk.target),
			Key:          dk.key,
			ComputedDeps: len(lst.order),
		})
	}
	return out
}

// targetID renders a human-meaningful correlation id for a graph
// target, for diagnostics output only.
func targetID(t Target) string {
	switch x := t.(type) {
	case *Observable:
		kind := "reactive"
		if x.refTag {
			kind = "ref"
		}
		return kind + "#" + shortID(x.id)
	case *Computed:
		return "computed#" + shortID(x.id)
	default:
		return "unknown"
	}
}
