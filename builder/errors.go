// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewWords indicates that a size parameter (n, length, steps) is below
// the allowed minimum.
var ErrTooFewWords = errors.New("builder: parameter too small")

// ErrAlphabetTooSmall indicates that the alphabet cannot produce the requested
// number of distinct words (or chain steps) for the given length.
var ErrAlphabetTooSmall = errors.New("builder: alphabet too small")

// ErrNeedRandSource indicates that a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
