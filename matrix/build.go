// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/internal/span"
)

// Build computes the adjacency matrix of words using up to workers goroutines.
//
// Implementation:
//   - Stage 1: validate workers > 0 (ErrInvalidWorkers); clamp to N.
//   - Stage 2: split rows into contiguous chunks (span.Split) and hand each
//     worker the sub-slice of the backing buffer holding exactly its rows.
//   - Stage 3: each worker compares every row word with all N words and sets
//     the cell to 1 on a one-letter difference.
//   - Stage 4: wait for all workers; the first error (cancellation) wins.
//
// Workers never share a writable byte: ownership is enforced by slicing, not
// by locks. The result is identical for every worker count.
//
// Complexity: O(N²·L / k) wall time with k workers, O(N²) memory.
func Build(ctx context.Context, words []string, workers int) (*Adjacency, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("Build(workers=%d): %w", workers, ErrInvalidWorkers)
	}
	logger := zerolog.Ctx(ctx)

	n := len(words)
	adj := newAdjacency(n)
	spans := span.Split(n, workers)

	logger.Debug().Int("words", n).Int("workers", len(spans)).Msg("matrix-build-start")

	g, gctx := errgroup.WithContext(ctx)
	for t, s := range spans {
		t, s := t, s
		rows := adj.data[s.Lo*n : s.Hi*n] // this worker's rows only
		g.Go(func() error {
			logger.Debug().Int("worker", t).Int("lo", s.Lo).Int("hi", s.Hi).Msg("matrix-worker-start")
			if err := fillRows(gctx, words, s, rows); err != nil {
				return err
			}
			logger.Debug().Int("worker", t).Msg("matrix-worker-done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return adj, nil
}

// fillRows writes rows s.Lo..s.Hi-1 into out, which holds exactly those rows.
func fillRows(ctx context.Context, words []string, s span.Span, out []uint8) error {
	n := len(words)
	for row := s.Lo; row < s.Hi; row++ {
		// cancellation check (once per row)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		base := words[row]
		off := (row - s.Lo) * n
		for col := 0; col < n; col++ {
			if hamming.Adjacent(base, words[col]) {
				out[off+col] = 1
			}
		}
	}

	return nil
}
