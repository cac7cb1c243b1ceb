// SPDX-License-Identifier: MIT

// Package pbfs implements the level-synchronized parallel breadth-first search
// used to find word ladders.
//
// What
//
//   - A fixed pool of k = min(workers, N) goroutines cooperatively levels every
//     word with its distance from the source, racing to level the target.
//   - Work is handed out as tickets from one atomic sequence: ticket t owns
//     level t/k and stripe t%k, where stripe s is a contiguous range of word
//     indices (the same chunking the matrix builder uses for rows).
//   - The owner of (L, s) waits until level L is sealed, then expands every
//     word of its stripe that sits at level L: each unvisited neighbor is
//     leveled L+1, and the word is marked processed.
//   - Level L+1 is sealed when all k stripes of level L have finished. The
//     seal is a countdown latch per level that closes a channel; waiting
//     workers block on it (no spinning).
//
// Guarantees
//
//   - First assignment wins: a word's level is written exactly once, from
//     Unvisited to its final value, under the word's own lock.
//   - Because level L is expanded only after level L-1 is fully expanded,
//     every assigned level equals the true BFS distance, and the target's
//     level equals the shortest ladder length minus one.
//   - The found flag flips false → true at most once (CompareAndSwap).
//
// Termination
//
//	A worker stops when the target is found, when its claimed level is ≥ N,
//	when the level it waited for turned out empty (frontier drained), or when
//	the context is done. Found and drained close a shared done channel so no
//	worker can wait forever; WithDeadline bounds the worst case.
//
// Errors
//
//   - ErrGraphNil, ErrSourceOutOfRange, ErrTargetOutOfRange for bad input.
//   - ErrOptionViolation for invalid options.
//   - ErrInvariant if a worker observes corrupted shared state; the remaining
//     workers are cancelled and the search returns the error.
//   - ctx.Err() on cancellation or deadline.
//
// Complexity (N words, k workers)
//
//   - Time:   O(N²) adjacency tests overall, split across the k stripes of each level.
//   - Memory: O(N) for the per-word arena and the per-level latches.
package pbfs
