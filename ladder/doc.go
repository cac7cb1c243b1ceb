// SPDX-License-Identifier: MIT

// Package ladder answers word-ladder queries: given an ordered dictionary, a
// start word and an end word, it returns a shortest sequence of dictionary
// words from start to end where consecutive words differ in one letter.
//
// Modes
//
//   - ModeDynamic:    parallel level-synchronized search (package pbfs)
//     evaluating edges with the hamming predicate directly.
//   - ModeStatic:     build the adjacency matrix in parallel (package matrix),
//     then run the parallel search over it.
//   - ModeSequential: build the matrix, then run the single-threaded
//     reference search (package bfs).
//   - ModeBenchmark:  run all three, record per-phase timings and check that
//     they agree on the outcome and the ladder length.
//
// Validation happens before any worker starts, in this order:
// configuration (ErrConfiguration), start/end length (ErrLengthMismatch),
// dictionary membership (ErrWordNotFound). A missing ladder is a normal
// outcome reported as Result.Found == false, not an error.
//
// Reconstruction
//
//	Reconstruct walks back from the target: for each level below it, the first
//	word in dictionary order that sits on that level and is adjacent to the
//	word chosen last is appended. The result is a shortest ladder, not
//	necessarily the only one.
package ladder
