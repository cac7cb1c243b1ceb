// Package bfs provides the sequential breadth-first word-ladder search.
package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph     Graph
	opts      BFSOptions
	ctx       context.Context
	n         int
	target    int
	available []bool
	frontier  []int
	res       *BFSResult
}

// BFS levels words reachable from source, stopping early once target is
// leveled. Returns ErrGraphNil, ErrSourceOutOfRange, ErrTargetOutOfRange or
// ErrOptionViolation for invalid input, ctx errors on cancellation, or any
// OnVisit error.
func BFS(g Graph, source, target int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if target != NoTarget && (target < 0 || target >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, n)
	}

	w := &walker{
		graph:     g,
		opts:      o,
		ctx:       o.Ctx,
		n:         n,
		target:    target,
		available: make([]bool, n),
		res: &BFSResult{
			Levels:      make([]int, n),
			Parent:      make([]int, n),
			Order:       make([]int, 0, n),
			Target:      target,
			TargetLevel: Unvisited,
		},
	}
	for i := 0; i < n; i++ {
		w.available[i] = true
		w.res.Levels[i] = Unvisited
		w.res.Parent[i] = -1
	}

	w.level(source, 0, -1)
	if w.res.Found {
		return w.res, nil
	}

	return w.res, w.loop()
}

// level assigns depth d to idx, records its parent and checks for the target.
func (w *walker) level(idx, d, parent int) {
	w.available[idx] = false
	w.res.Levels[idx] = d
	w.res.Parent[idx] = parent
	w.opts.OnEnqueue(idx, d)
	w.frontier = append(w.frontier, idx)
	if idx == w.target {
		w.res.Found = true
		w.res.TargetLevel = d
	}
}

// loop expands one whole frontier per iteration until the target is found,
// the frontier empties or the depth limit is reached.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return nil
		}

		current := w.frontier
		w.frontier = nil
		for _, u := range current {
			if err := w.visit(u, depth); err != nil {
				return err
			}
			if w.expand(u, depth) {
				return nil
			}
		}
	}

	return nil
}

// visit records u in Order and calls OnVisit.
func (w *walker) visit(u, depth int) error {
	w.res.Order = append(w.res.Order, u)
	if err := w.opts.OnVisit(u, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
	}

	return nil
}

// expand levels every available neighbor of u at depth+1 and reports whether
// the target was reached.
func (w *walker) expand(u, depth int) bool {
	for v := 0; v < w.n; v++ {
		if !w.available[v] || !w.graph.Adjacent(u, v) {
			continue
		}
		w.level(v, depth+1, u)
		if w.res.Found {
			return true
		}
	}

	return false
}
