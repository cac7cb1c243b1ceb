// SPDX-License-Identifier: MIT

package pbfs

import "sync/atomic"

// gate tracks one level: how many stripes of the previous level are still
// expanding, whether the level is sealed, and how many words it holds.
type gate struct {
	pending atomic.Int32  // stripes of level-1 not yet finished
	size    atomic.Int64  // words assigned to this level
	sealed  chan struct{} // closed when pending reaches zero
}

// newGates allocates gates for levels 0..n. Level 0 starts sealed.
func newGates(n, stripes int) []gate {
	gates := make([]gate, n+1)
	for l := range gates {
		gates[l].sealed = make(chan struct{})
		gates[l].pending.Store(int32(stripes))
	}
	gates[0].pending.Store(0)
	close(gates[0].sealed)

	return gates
}

// countDown records that one stripe of the previous level finished and
// reports whether this call sealed the level.
func (g *gate) countDown() bool {
	if g.pending.Add(-1) == 0 {
		close(g.sealed)
		return true
	}

	return false
}
