// SPDX-License-Identifier: MIT

package dictionary

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/hamming"
)

// ErrIndexOutOfRange is returned by Word for an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("dictionary: index out of range")

// Dictionary is an ordered, read-only sequence of words.
type Dictionary struct {
	words []string
	index map[string]int // first index of each distinct word
}

// New copies words into a Dictionary. The order of words is preserved.
// Complexity: O(N) time and memory.
func New(words []string) *Dictionary {
	d := &Dictionary{
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	copy(d.words, words)
	for i, w := range d.words {
		// first match wins
		if _, seen := d.index[w]; !seen {
			d.index[w] = i
		}
	}

	return d
}

// Len returns the number of words, duplicates included.
func (d *Dictionary) Len() int { return len(d.words) }

// Index returns the first index holding w, or -1.
// Complexity: O(1) expected.
func (d *Dictionary) Index(w string) int {
	if i, ok := d.index[w]; ok {
		return i
	}

	return -1
}

// Contains reports whether w occurs in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.index[w]
	return ok
}

// Word returns the word at index i.
func (d *Dictionary) Word(i int) (string, error) {
	if i < 0 || i >= len(d.words) {
		return "", fmt.Errorf("Word(%d): %w", i, ErrIndexOutOfRange)
	}

	return d.words[i], nil
}

// At returns the word at index i and panics when i is out of range.
// Use Word for unchecked input.
func (d *Dictionary) At(i int) string { return d.words[i] }

// Words returns a copy of the underlying word slice.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)

	return out
}

// Adjacent reports whether words i and j are one letter apart.
// Out-of-range indices are never adjacent.
func (d *Dictionary) Adjacent(i, j int) bool {
	if i < 0 || j < 0 || i >= len(d.words) || j >= len(d.words) {
		return false
	}

	return hamming.Adjacent(d.words[i], d.words[j])
}

// Lookup resolves a list of indices back to words.
func (d *Dictionary) Lookup(indices []int) ([]string, error) {
	out := make([]string, len(indices))
	for k, i := range indices {
		w, err := d.Word(i)
		if err != nil {
			return nil, err
		}
		out[k] = w
	}

	return out, nil
}

// WordLen returns the rune length of w; dictionary files are filtered by it.
func WordLen(w string) int { return utf8.RuneCountInString(w) }
