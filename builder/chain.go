// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodChain    = "Chain"
	minChainLength = 1
)

// Chain returns steps+1 distinct words of the given length. Word 0 repeats the
// first alphabet letter; word k+1 is word k with position k%length advanced to
// the next alphabet letter, so consecutive words are always one letter apart.
//
// Each position can be advanced len(alphabet)-1 times, which bounds steps by
// length*(len(alphabet)-1); larger requests fail with ErrAlphabetTooSmall.
// Complexity: O(steps·length).
func Chain(length, steps int, opts ...Option) ([]string, error) {
	if length < minChainLength {
		return nil, fmt.Errorf("%s: length=%d < min=%d: %w", methodChain, length, minChainLength, ErrTooFewWords)
	}
	if steps < 0 {
		return nil, fmt.Errorf("%s: steps=%d < 0: %w", methodChain, steps, ErrTooFewWords)
	}
	cfg := newConfig(opts...)
	if limit := length * (len(cfg.alphabet) - 1); steps > limit {
		return nil, fmt.Errorf("%s: steps=%d > %d for alphabet of %d: %w",
			methodChain, steps, limit, len(cfg.alphabet), ErrAlphabetTooSmall)
	}

	pos := make([]int, length) // alphabet index per position
	words := make([]string, 0, steps+1)
	words = append(words, render(cfg.alphabet, pos))
	for k := 0; k < steps; k++ {
		pos[k%length]++
		words = append(words, render(cfg.alphabet, pos))
	}

	return words, nil
}

func render(alphabet []rune, pos []int) string {
	out := make([]rune, len(pos))
	for i, p := range pos {
		out[i] = alphabet[p]
	}

	return string(out)
}
