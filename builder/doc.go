// SPDX-License-Identifier: MIT

// Package builder generates synthetic dictionaries for tests, examples and
// benchmarks.
//
// Constructors
//
//   - Chain(length, steps): a word list whose consecutive words differ in
//     exactly one letter, so a ladder from the first to the last word always
//     exists. Position (k mod length) is advanced at step k.
//   - Random(n, length): n distinct random words over the configured
//     alphabet; requires an RNG (WithSeed or WithRand).
//
// Options
//
//   - WithSeed(seed), WithRand(r): RNG for Random (deterministic when seeded).
//   - WithAlphabet(s): letters to draw from (default "a".."z"); at least two
//     distinct runes, otherwise the option panics.
//
// Errors
//
//   - ErrTooFewWords       if a size parameter is below its minimum.
//   - ErrAlphabetTooSmall  if the alphabet cannot produce the requested words.
//   - ErrNeedRandSource    if Random is called without an RNG.
package builder
