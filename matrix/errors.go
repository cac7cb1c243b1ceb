// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned by Build when workers <= 0.
	ErrInvalidWorkers = errors.New("matrix: worker count must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// adjErrorf wraps an error with the method name and coordinates.
func adjErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}
