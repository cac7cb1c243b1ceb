// SPDX-License-Identifier: MIT

// Package matrix builds and stores the word adjacency matrix.
//
// What
//
//   - Adjacency is a square N×N 0/1 matrix in row-major order: cell (i,j) is 1
//     iff words i and j are one letter apart. It is symmetric with a zero
//     diagonal and read-only once Build returns.
//   - Build computes the matrix in parallel. Rows [0,N) are split into
//     contiguous chunks of ceil(N / min(w,N)) rows; each worker owns one chunk
//     and writes only the row slices of its chunk, so no locking is involved.
//
// Why
//
//   - The static search mode and the sequential reference search read edges
//     from the matrix in O(1) instead of re-running the predicate.
//
// Errors
//
//   - ErrInvalidWorkers  if the worker count is not positive.
//   - ErrOutOfRange      for At/Row/Degree with a bad index.
//   - ctx.Err()          if the build is cancelled.
//
// Complexity
//
//   - Build: O(N² · L) predicate work split over k workers; O(N²) bytes.
//   - At/Adjacent: O(1).
package matrix
