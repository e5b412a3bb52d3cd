package reactive

// Key identifies a slot within an Observable's underlying record.
type Key = string

// Value is the dynamically-typed payload a Key maps to. The core never
// assumes anything about it beyond identity/primitive equality.
type Value = any

// Record is the plain, map-shaped data an Observable wraps.
type Record = map[Key]Value

// Disposer idempotently removes a registration created by the Watch
// API. Calling it more than once has the same effect as calling it
// once.
type Disposer func()

// Target is the union spec'd as "(Observable | Computed)": anything
// that can sit on either side of the dependency graph. *Observable,
// *Ref (via embedding) and *Computed all satisfy it.
type Target interface {
	isTarget()
}

const valueKey Key = "value"
