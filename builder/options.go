// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"unicode/utf8"
)

// Option customizes a constructor by mutating its config before generation.
// Option constructors panic on meaningless input; generators never panic.
type Option func(*config)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// config aggregates the builder knobs. Later options override earlier ones.
type config struct {
	rng      *rand.Rand // nil means no randomness
	alphabet []rune     // distinct runes, len >= 2
}

func newConfig(opts ...Option) config {
	cfg := config{alphabet: []rune(defaultAlphabet)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a seeded *rand.Rand, making Random reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithAlphabet sets the letters words are drawn from. Duplicate runes are
// dropped (first occurrence kept). Panics if fewer than two distinct runes
// remain or the string is not valid UTF-8.
func WithAlphabet(s string) Option {
	if !utf8.ValidString(s) {
		panic("builder: WithAlphabet: invalid UTF-8")
	}
	seen := make(map[rune]bool)
	var letters []rune
	for _, r := range s {
		if !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}
	if len(letters) < 2 {
		panic("builder: WithAlphabet: need at least two distinct letters")
	}
	return func(c *config) {
		c.alphabet = letters
	}
}
