package reactive

import (
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

var instanceSeq uint64

// nextInstanceID hands out a monotonic per-process counter used as the
// seed for shortID. A counter, rather than the pointer address itself,
// keeps correlation ids stable even though Go's allocator may reuse a
// freed address for an unrelated object later.
func nextInstanceID() uint32 {
	return uint32(atomic.AddUint64(&instanceSeq, 1))
}

// shortID hashes an instance counter into a short, stable correlation
// id of six hex digits. Its only user is Snapshot's TargetID (e.g.
// "computed#a91f03"), which the demo CLI renders in its table instead
// of a raw pointer; nothing in the core's control flow reads it.
func shortID(seq uint32) string {
	sum := xxhash.Sum64String(fmt.Sprintf("govue-%d", seq))
	return fmt.Sprintf("%06x", sum&0xffffff)
}
