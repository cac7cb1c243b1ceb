// SPDX-License-Identifier: MIT

package ladder

import (
	"fmt"

	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/pbfs"
)

// Unvisited marks a word without a level.
const Unvisited = pbfs.Unvisited

// Graph is the edge test Reconstruct walks with.
type Graph interface {
	Adjacent(i, j int) bool
}

// Reconstruct returns word indices from the source (level 0) to target.
//
// For L = level(target)-1 down to 0 it picks the first word in dictionary order
// with level L that is adjacent to the previously picked word. Every word on a
// level L > 0 was leveled by some neighbor on L-1, so a pick always exists for
// a consistent assignment; ErrBrokenLevels reports one that is not.
// Complexity: O(N · level(target)).
func Reconstruct(levels []int, target int, g Graph) ([]int, error) {
	if target < 0 || target >= len(levels) || levels[target] == Unvisited {
		return nil, fmt.Errorf("%w: target %d was not reached", ErrNoLadder, target)
	}

	top := levels[target]
	path := make([]int, top+1)
	path[top] = target
	prev := target
	for l := top - 1; l >= 0; l-- {
		pick := -1
		for i, li := range levels {
			if li == l && g.Adjacent(i, prev) {
				pick = i
				break
			}
		}
		if pick < 0 {
			return nil, fmt.Errorf("%w: no word on level %d next to %d", ErrBrokenLevels, l, prev)
		}
		path[l] = pick
		prev = pick
	}

	return path, nil
}

// Check verifies that words is a ladder: non-empty, starting with start,
// ending with end, consecutive words one letter apart.
func Check(words []string, start, end string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLadder)
	}
	if words[0] != start {
		return fmt.Errorf("%w: starts with %q, want %q", ErrInvalidLadder, words[0], start)
	}
	if words[len(words)-1] != end {
		return fmt.Errorf("%w: ends with %q, want %q", ErrInvalidLadder, words[len(words)-1], end)
	}
	for i := 1; i < len(words); i++ {
		d, ok := hamming.Distance(words[i-1], words[i])
		if !ok {
			return fmt.Errorf("%w: %q -> %q changes word length", ErrInvalidLadder, words[i-1], words[i])
		}
		if d != 1 {
			return fmt.Errorf("%w: %q -> %q differs in %d letters", ErrInvalidLadder, words[i-1], words[i], d)
		}
	}

	return nil
}
