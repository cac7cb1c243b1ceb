// SPDX-License-Identifier: MIT

package pbfs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/internal/span"
)

// search is the state shared by all workers of one query.
type search struct {
	g       Graph
	n       int
	target  int
	stripes []span.Span
	slots   arena
	gates   []gate

	next        atomic.Int64 // ticket sequence
	found       atomic.Bool
	targetLevel atomic.Int64

	done     chan struct{} // closed on found or drained
	doneOnce sync.Once

	logger *zerolog.Logger
}

// Search levels words from source with a pool of workers, stopping as soon as
// target is leveled or no further level can exist.
//
// Implementation:
//   - Stage 1: validate graph, options, source and target.
//   - Stage 2: allocate the arena and per-level gates; level the source at 0.
//   - Stage 3: run k workers in an errgroup; each claims tickets until a
//     termination condition holds.
//   - Stage 4: join the workers and snapshot the arena.
//
// No worker is started when validation fails.
func Search(ctx context.Context, g Graph, source, target int, opts ...Option) (*Result, error) {
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
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, n)
	}

	if o.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Deadline)
		defer cancel()
	}

	stripes := span.Split(n, o.Workers)
	s := &search{
		g:       g,
		n:       n,
		target:  target,
		stripes: stripes,
		slots:   newArena(n),
		gates:   newGates(n, len(stripes)),
		done:    make(chan struct{}),
		logger:  zerolog.Ctx(ctx),
	}
	s.targetLevel.Store(Unvisited)

	s.slots.assign(source, 0)
	s.gates[0].size.Store(1)
	if source == target {
		s.markFound(0)
		return s.result(), nil
	}

	s.logger.Debug().Int("words", n).Int("workers", len(stripes)).Int("source", source).Int("target", target).Msg("pbfs-start")

	eg, ectx := errgroup.WithContext(ctx)
	for id := range stripes {
		id := id
		eg.Go(func() error {
			return s.worker(ectx, id)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := s.result()
	s.logger.Debug().Bool("found", res.Found).Int("targetLevel", res.TargetLevel).Int64("tickets", res.Tickets).Msg("pbfs-done")

	return res, nil
}

// worker claims tickets until the search is over.
func (s *search) worker(ctx context.Context, id int) error {
	k := int64(len(s.stripes))
	for {
		if s.found.Load() {
			return nil
		}

		t := s.next.Add(1) - 1
		level, stripe := int(t/k), int(t%k)
		if level >= s.n {
			s.logger.Debug().Int("worker", id).Int("level", level).Msg("pbfs-worker-exhausted")
			return nil
		}

		// wait until no more words can be added to level
		select {
		case <-s.gates[level].sealed:
		case <-s.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}

		if s.found.Load() {
			return nil
		}
		if s.gates[level].size.Load() == 0 {
			s.logger.Debug().Int("worker", id).Int("level", level).Msg("pbfs-frontier-drained")
			s.finish()
			return nil
		}

		if err := s.expand(ctx, level, stripe); err != nil {
			return err
		}
		if s.found.Load() {
			return nil
		}

		if s.gates[level+1].countDown() {
			s.logger.Debug().Int("level", level+1).Int64("words", s.gates[level+1].size.Load()).Msg("pbfs-level-sealed")
		}
	}
}

// expand explores every word of the stripe sitting at level and levels its
// unvisited neighbors at level+1.
func (s *search) expand(ctx context.Context, level, stripe int) error {
	if stripe < 0 || stripe >= len(s.stripes) || level+1 >= len(s.gates) {
		return fmt.Errorf("%w: ticket (level=%d, stripe=%d) out of bounds", ErrInvariant, level, stripe)
	}
	sp := s.stripes[stripe]
	next := level + 1

	for i := sp.Lo; i < sp.Hi; i++ {
		if s.found.Load() {
			return nil
		}
		l, processed := s.slots.state(i)
		if l != level {
			continue
		}
		if processed {
			return fmt.Errorf("%w: word %d at level %d expanded twice", ErrInvariant, i, level)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		for j := 0; j < s.n; j++ {
			if s.slots.level(j) != Unvisited || !s.g.Adjacent(i, j) {
				continue
			}
			if !s.slots.assign(j, next) {
				continue // another stripe of this level got there first
			}
			s.gates[next].size.Add(1)
			if j == s.target {
				s.markFound(next)
				return nil
			}
		}

		if !s.slots.markProcessed(i, level) {
			return fmt.Errorf("%w: word %d left level %d during expansion", ErrInvariant, i, level)
		}
	}

	return nil
}

// markFound records the target level once and releases every waiting worker.
func (s *search) markFound(level int) {
	if s.found.CompareAndSwap(false, true) {
		s.targetLevel.Store(int64(level))
		s.logger.Debug().Int("target", s.target).Int("level", level).Msg("pbfs-target-found")
	}
	s.finish()
}

// finish closes the done channel exactly once.
func (s *search) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// result snapshots the arena into a Result. All workers must have returned.
func (s *search) result() *Result {
	levels, processed := s.slots.snapshot()

	return &Result{
		Levels:      levels,
		Processed:   processed,
		Found:       s.found.Load(),
		Target:      s.target,
		TargetLevel: int(s.targetLevel.Load()),
		Workers:     len(s.stripes),
		Tickets:     s.next.Load(),
	}
}
