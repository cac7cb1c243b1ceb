// SPDX-License-Identifier: MIT

package pbfs

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Unvisited marks a word that has not been assigned a level.
const Unvisited = -1

// Sentinel errors for parallel search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("pbfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a word.
	ErrSourceOutOfRange = errors.New("pbfs: source index out of range")

	// ErrTargetOutOfRange is returned when the target index is not a word.
	ErrTargetOutOfRange = errors.New("pbfs: target index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pbfs: invalid option supplied")

	// ErrInvariant is returned when a worker observes corrupted shared state.
	ErrInvariant = errors.New("pbfs: internal invariant violated")
)

// Graph is the read-only view the search needs. Adjacent must be safe for
// concurrent use; *matrix.Adjacency and *dictionary.Dictionary both are.
type Graph interface {
	Len() int
	Adjacent(i, j int) bool
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Workers is the requested pool size; the effective size is min(Workers, N).
	Workers int

	// Deadline, if > 0, bounds the whole search.
	Deadline time.Duration

	err error
}

// DefaultOptions returns one worker per CPU and no deadline.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers sets the worker count. w <= 0 is an ErrOptionViolation.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: workers must be > 0 (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithDeadline bounds the search duration. d == 0 disables the bound;
// d < 0 is an ErrOptionViolation.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: deadline cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Deadline = d
	}
}

// Result holds the final level assignment and found state.
type Result struct {
	Levels      []int  // distance from source or Unvisited
	Processed   []bool // word's neighbors were fully explored
	Found       bool   // target was leveled
	Target      int    // target index
	TargetLevel int    // target level when Found, else Unvisited
	Workers     int    // effective pool size
	Tickets     int64  // tickets handed out by the claim sequence
}
