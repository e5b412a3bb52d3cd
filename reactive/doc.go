// Package reactive implements a fine-grained reactivity core in the
// style of Vue 3's reactivity module: observable records, refs,
// lazily-recomputed computed values, and a Watch API that re-runs
// caller-supplied effects synchronously whenever a value they
// previously read changes.
//
// The package assumes a single logical executor. There is no
// batching, no microtask flushing, and no cross-thread access; every
// read, write, effect invocation and computed recomputation completes
// before the caller regains control.
package reactive
