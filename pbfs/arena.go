// SPDX-License-Identifier: MIT

package pbfs

import "sync"

// slot is the per-word state. Readers take the read lock so concurrent scans
// never block each other; leveling and processing take the write lock.
type slot struct {
	mu        sync.RWMutex
	level     int
	processed bool
}

// arena is a fixed-size array of slots indexed by word.
type arena []slot

func newArena(n int) arena {
	a := make(arena, n)
	for i := range a {
		a[i].level = Unvisited
	}

	return a
}

// level returns the current level of word i.
func (a arena) level(i int) int {
	s := &a[i]
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.level
}

// state returns level and processed flag of word i together.
func (a arena) state(i int) (int, bool) {
	s := &a[i]
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.level, s.processed
}

// assign levels word i at l if it is still unvisited and reports whether this
// call did the assignment. Later calls never overwrite: first assignment wins.
func (a arena) assign(i, l int) bool {
	s := &a[i]
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level != Unvisited {
		return false
	}
	s.level = l

	return true
}

// markProcessed flags word i as expanded at level l. It reports false when the
// word is not at level l, which would mean its level changed mid-expansion.
func (a arena) markProcessed(i, l int) bool {
	s := &a[i]
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level != l {
		return false
	}
	s.processed = true

	return true
}

// snapshot copies levels and processed flags. Call only after all workers
// have been joined.
func (a arena) snapshot() ([]int, []bool) {
	levels := make([]int, len(a))
	processed := make([]bool, len(a))
	for i := range a {
		levels[i] = a[i].level
		processed[i] = a[i].processed
	}

	return levels, processed
}
