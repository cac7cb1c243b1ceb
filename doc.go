// SPDX-License-Identifier: MIT

// Package wordladder finds shortest word ladders: sequences of dictionary
// words from a start word to an end word where each step changes exactly one
// letter.
//
// What is inside?
//
//	hamming/    the one-letter-difference predicate on rune strings
//	dictionary/ ordered word lists, first-match lookup, file loading
//	matrix/     parallel construction of the N×N adjacency matrix
//	bfs/        sequential level-by-level reference search
//	pbfs/       level-synchronized parallel frontier search
//	ladder/     query validation, engine selection, path reconstruction
//	builder/    synthetic dictionaries for tests and benchmarks
//
// The parallel search has two modes. Static mode builds the adjacency matrix
// first and searches it; dynamic mode tests adjacency on demand against the
// dictionary and never allocates the matrix. A sequential mode and a
// benchmark mode (all three engines, cross-checked) share the same query
// surface:
//
//	res, err := ladder.Solve(ctx, words, "cold", "warm",
//		ladder.WithWorkers(8), ladder.WithMode(ladder.ModeStatic))
//
// Complexity: matrix build O(N²·L); each search O(N²·L) in dynamic mode and
// O(N²) over the matrix, where L is the word length.
//
// The command-line front end lives in cmd/wordladder.
package wordladder
