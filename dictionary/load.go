// SPDX-License-Identifier: MIT

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// ErrBadLength is returned when Load is asked for words of length < 1.
var ErrBadLength = errors.New("dictionary: word length must be > 0")

// Load reads one word per line from r, trims surrounding whitespace and keeps
// the words whose rune length equals length, in input order.
// Blank lines are skipped; duplicates are kept.
func Load(r io.Reader, length int) (*Dictionary, error) {
	if length < 1 {
		return nil, fmt.Errorf("Load(%d): %w", length, ErrBadLength)
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}

	words := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(line)
		return w, w != "" && WordLen(w) == length
	})

	return New(words), nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, length int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f, length)
}
