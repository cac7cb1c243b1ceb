// SPDX-License-Identifier: MIT

package ladder

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/matrix"
	"github.com/katalvlaran/wordladder/pbfs"
)

// query carries the validated inputs of one Solve call.
type query struct {
	opts     Options
	dict     *dictionary.Dictionary
	src, dst int
	res      *Result
	logger   *zerolog.Logger
}

// Solve finds a shortest ladder from start to end over words.
//
// Implementation:
//   - Stage 1: apply options (ErrConfiguration).
//   - Stage 2: compare start/end rune lengths (ErrLengthMismatch).
//   - Stage 3: look both words up, first match wins (ErrWordNotFound).
//   - Stage 4: run the engine(s) selected by the mode and reconstruct.
//
// Stages 1-3 complete before any goroutine is started.
func Solve(ctx context.Context, words []string, start, end string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if ls, le := dictionary.WordLen(start), dictionary.WordLen(end); ls != le {
		return nil, fmt.Errorf("%w: %q has %d letters, %q has %d", ErrLengthMismatch, start, ls, end, le)
	}

	d := dictionary.New(words)
	src := d.Index(start)
	if src < 0 {
		return nil, fmt.Errorf("%w: start word %q", ErrWordNotFound, start)
	}
	dst := d.Index(end)
	if dst < 0 {
		return nil, fmt.Errorf("%w: end word %q", ErrWordNotFound, end)
	}

	q := &query{
		opts:   o,
		dict:   d,
		src:    src,
		dst:    dst,
		res:    &Result{Mode: o.Mode, Start: start, End: end},
		logger: zerolog.Ctx(ctx),
	}

	var err error
	switch o.Mode {
	case ModeDynamic:
		err = q.dynamic(ctx)
	case ModeStatic:
		err = q.static(ctx)
	case ModeSequential:
		err = q.sequential(ctx)
	case ModeBenchmark:
		err = q.benchmark(ctx)
	}
	if err != nil {
		return nil, err
	}

	q.logger.Debug().Str("mode", o.Mode.String()).Bool("found", q.res.Found).Int("length", q.res.Len()).Msg("ladder-solved")

	return q.res, nil
}

// timed runs fn and appends its wall time to the result under phase.
func (q *query) timed(phase string, fn func() error) error {
	began := time.Now()
	err := fn()
	elapsed := time.Since(began)
	q.res.Timings = append(q.res.Timings, Timing{Phase: phase, Elapsed: elapsed})
	q.logger.Info().Str("phase", phase).Dur("elapsed", elapsed).Msg("ladder-phase")

	return err
}

// build constructs the adjacency matrix once per query.
func (q *query) build(ctx context.Context) (*matrix.Adjacency, error) {
	if q.res.Matrix != nil {
		return q.res.Matrix, nil
	}
	var adj *matrix.Adjacency
	err := q.timed(PhaseBuild, func() error {
		var err error
		adj, err = matrix.Build(ctx, q.dict.Words(), q.opts.Workers)
		return err
	})
	if err != nil {
		return nil, err
	}
	q.res.Matrix = adj

	return adj, nil
}

func (q *query) dynamic(ctx context.Context) error {
	return q.parallel(ctx, q.dict, PhaseSearchDynamic)
}

func (q *query) static(ctx context.Context) error {
	adj, err := q.build(ctx)
	if err != nil {
		return err
	}

	return q.parallel(ctx, adj, PhaseSearchStatic)
}

// parallel runs pbfs over g and fills the result.
func (q *query) parallel(ctx context.Context, g pbfs.Graph, phase string) error {
	var res *pbfs.Result
	err := q.timed(phase, func() error {
		var err error
		res, err = pbfs.Search(ctx, g, q.src, q.dst,
			pbfs.WithWorkers(q.opts.Workers), pbfs.WithDeadline(q.opts.Deadline))
		return err
	})
	if err != nil {
		return err
	}
	q.res.Workers = res.Workers

	return q.finish(res.Found, res.Levels, g)
}

func (q *query) sequential(ctx context.Context) error {
	adj, err := q.build(ctx)
	if err != nil {
		return err
	}
	if q.opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.opts.Deadline)
		defer cancel()
	}

	var res *bfs.BFSResult
	err = q.timed(PhaseSearchSequential, func() error {
		var err error
		res, err = bfs.BFS(adj, q.src, q.dst, bfs.WithContext(ctx))
		return err
	})
	if err != nil {
		return err
	}
	q.res.Workers = 1

	return q.finish(res.Found, res.Levels, adj)
}

// finish reconstructs the ladder from a level assignment.
func (q *query) finish(found bool, levels []int, g Graph) error {
	q.res.Found = found
	q.res.Levels = levels
	q.res.Indices, q.res.Words = nil, nil
	if !found {
		return nil
	}

	var path []int
	err := q.timed(PhaseReconstruct, func() error {
		var err error
		path, err = Reconstruct(levels, q.dst, g)
		return err
	})
	if err != nil {
		return err
	}
	words, err := q.dict.Lookup(path)
	if err != nil {
		return err
	}
	q.res.Indices, q.res.Words = path, words

	return nil
}

// benchmark runs the three engines on the same query, checks that they agree
// and reports the dynamic run with all timings.
func (q *query) benchmark(ctx context.Context) error {
	type outcome struct {
		name  string
		found bool
		size  int
	}
	var runs []outcome
	record := func(name string) {
		runs = append(runs, outcome{name: name, found: q.res.Found, size: q.res.Len()})
	}

	if err := q.sequential(ctx); err != nil {
		return err
	}
	record(ModeSequential.String())
	if err := q.static(ctx); err != nil {
		return err
	}
	record(ModeStatic.String())
	if err := q.dynamic(ctx); err != nil {
		return err
	}
	record(ModeDynamic.String())

	for _, r := range runs[1:] {
		if r.found != runs[0].found || r.size != runs[0].size {
			return fmt.Errorf("%w: %s found=%t len=%d, %s found=%t len=%d",
				ErrEngineDisagreement, runs[0].name, runs[0].found, runs[0].size, r.name, r.found, r.size)
		}
	}

	return nil
}
