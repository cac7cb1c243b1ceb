// SPDX-License-Identifier: MIT

// Package dictionary holds the ordered word list a ladder query runs against.
//
// A Dictionary is immutable once built. Words are identified by their index
// (insertion order = input order). Duplicates are tolerated: lookups are by
// value and return the first matching index.
//
// Dictionary satisfies the Graph contract consumed by bfs and pbfs
// (Len/Adjacent), which is how the "dynamic" search mode evaluates edges
// directly through the hamming predicate instead of a prebuilt matrix.
//
// Load reads a newline-separated word file and keeps only words of the
// requested rune length, in file order.
package dictionary
