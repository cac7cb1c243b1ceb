// SPDX-License-Identifier: MIT

package builder

import "fmt"

const methodRandom = "Random"

// Random returns n distinct words of the given length drawn uniformly from
// the alphabet using the configured RNG. Output order is the draw order.
//
// When n is more than half of the possible words, all words are enumerated
// and shuffled instead of sampled by rejection.
// Complexity: O(n·length) expected.
func Random(n, length int, opts ...Option) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodRandom, n, ErrTooFewWords)
	}
	if length < 1 {
		return nil, fmt.Errorf("%s: length=%d < 1: %w", methodRandom, length, ErrTooFewWords)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	space := capacity(len(cfg.alphabet), length, n)
	if space < n {
		return nil, fmt.Errorf("%s: %d distinct words of length %d need a larger alphabet than %d: %w",
			methodRandom, n, length, len(cfg.alphabet), ErrAlphabetTooSmall)
	}

	if n > space/2 {
		all := enumerate(cfg.alphabet, length)
		cfg.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		return all[:n], nil
	}

	seen := make(map[string]bool, n)
	words := make([]string, 0, n)
	buf := make([]rune, length)
	for len(words) < n {
		for i := range buf {
			buf[i] = cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
		}
		w := string(buf)
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	return words, nil
}

// capacity returns min(k^length, 2*limit+1) so callers can compare against
// limit without overflow.
func capacity(k, length, limit int) int {
	ceil := 2*limit + 1
	c := 1
	for i := 0; i < length; i++ {
		c *= k
		if c >= ceil {
			return ceil
		}
	}

	return c
}

// enumerate lists every word of the given length in lexicographic alphabet order.
func enumerate(alphabet []rune, length int) []string {
	var out []string
	pos := make([]int, length)
	for {
		out = append(out, render(alphabet, pos))
		i := length - 1
		for i >= 0 {
			pos[i]++
			if pos[i] < len(alphabet) {
				break
			}
			pos[i] = 0
			i--
		}
		if i < 0 {
			return out
		}
	}
}
