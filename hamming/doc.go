// SPDX-License-Identifier: MIT

// Package hamming provides the one-letter adjacency predicate that defines
// edges of the word-ladder graph.
//
// What
//
//   - Adjacent(a, b) reports whether two words have the same length (in runes)
//     and differ in exactly one position.
//   - Distance(a, b) returns the number of differing positions for equal-length
//     words, and ok=false otherwise.
//
// Both functions are pure and symmetric: Adjacent(a, b) == Adjacent(b, a).
// A word is never adjacent to itself (distance 0 ≠ 1).
//
// Complexity
//
//   - Time:   O(L) where L is the word length; Adjacent exits after the 2nd mismatch.
//   - Memory: O(1), no allocations.
package hamming
