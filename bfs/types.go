// Package bfs provides tunable options and error definitions
// for the sequential word-ladder search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unvisited marks a word that has not been assigned a level.
const Unvisited = -1

// NoTarget asks BFS to level every word reachable from the source.
const NoTarget = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not a word.
	ErrSourceOutOfRange = errors.New("bfs: source index out of range")

	// ErrTargetOutOfRange is returned when the target index is not a word.
	ErrTargetOutOfRange = errors.New("bfs: target index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a word that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only view BFS needs: a word count and an edge test.
// Both *matrix.Adjacency and *dictionary.Dictionary satisfy it.
type Graph interface {
	Len() int
	Adjacent(i, j int) bool
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is leveled, with its depth.
	OnEnqueue func(idx, depth int)

	// OnVisit is called when a word is expanded. A non-nil error aborts BFS.
	OnVisit func(idx, depth int) error

	// MaxDepth, if > 0, stops leveling beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hooks and no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when a word is leveled.
func WithOnEnqueue(fn func(idx, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on expansion; an error stops the search.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: level words up to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a search.
type BFSResult struct {
	Levels      []int // distance from source or Unvisited
	Parent      []int // BFS-tree predecessor or -1
	Order       []int // expansion order
	Found       bool  // target was leveled
	Target      int   // target index, NoTarget if none was requested
	TargetLevel int   // level of target when Found, else Unvisited
}

// PathTo reconstructs the source → dest index path along parent links.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Levels) || r.Levels[dest] == Unvisited {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, 0, r.Levels[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
