package reactive

// trackingStack holds the two process-wide stacks consulted by
// interception: the currently-executing effect and the
// currently-evaluating computed. Either may be empty. Both are
// mutated only by the Watch API and by Computed's read path, and only
// through push/pop pairs that are unwound via defer so a panicking
// callback can never leave a stale frame behind.
type trackingStack struct {
	effects   []*effectHandle
	computeds []*Computed
}

var tracker = &trackingStack{}

func (s *trackingStack) currentEffect() *effectHandle {
	if len(s.effects) == 0 {
		return nil
	}
	return s.effects[len(s.effects)-1]
}

func (s *trackingStack) currentComputed() *Computed {
	if len(s.computeds) == 0 {
		return nil
	}
	return s.computeds[len(s.computeds)-1]
}

// pushEffect makes h the current effect and returns a function that
// pops it. Callers must defer the returned function so the stack is
// unwound even if h's body panics.
func (s *trackingStack) pushEffect(h *effectHandle) func() {
	s.effects = append(s.effects, h)
	return func() {
		s.effects = s.effects[:len(s.effects)-1]
	}
}

// pushComputed makes c the current computed and returns a function
// that pops it. Invariant 4 requires c to be on top exactly once
// during its own getter evaluation, popped on every exit path.
func (s *trackingStack) pushComputed(c *Computed) func() {
	s.computeds = append(s.computeds, c)
	return func() {
		s.computeds = s.computeds[:len(s.computeds)-1]
	}
}

func (s *trackingStack) reset() {
	s.effects = nil
	s.computeds = nil
}

// track records the current effect and current computed, if any, as
// observers of (t, k). It is called from every keyed Observable read
// and from every Computed value read, per spec — both registrations
// happen independently of one another.
func track(t Target, k Key) {
	if h := tracker.currentEffect(); h != nil {
		defaultGraph.subscribe(t, k, h)
	}
	if c := tracker.currentComputed(); c != nil && Target(c) != t {
		defaultGraph.link(t, k, c)
	}
}
