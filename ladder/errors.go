// SPDX-License-Identifier: MIT

package ladder

import "errors"

var (
	// ErrConfiguration reports an invalid worker count, mode or deadline.
	ErrConfiguration = errors.New("ladder: invalid configuration")

	// ErrLengthMismatch reports start and end words of different lengths.
	ErrLengthMismatch = errors.New("ladder: start and end lengths differ")

	// ErrWordNotFound reports a start or end word absent from the dictionary.
	ErrWordNotFound = errors.New("ladder: word not in dictionary")

	// ErrNoLadder is returned by Reconstruct when the target was never leveled.
	ErrNoLadder = errors.New("ladder: no ladder")

	// ErrBrokenLevels is returned by Reconstruct when a level has no word
	// adjacent to the previously chosen one.
	ErrBrokenLevels = errors.New("ladder: level assignment is inconsistent")

	// ErrEngineDisagreement is returned in benchmark mode when the engines
	// disagree on the outcome or the ladder length.
	ErrEngineDisagreement = errors.New("ladder: engines disagree")

	// ErrInvalidLadder is returned by Check for a sequence that is not a ladder.
	ErrInvalidLadder = errors.New("ladder: invalid ladder")
)

// IsUsageError reports whether err stems from bad input rather than from the
// search itself: configuration, length mismatch or unknown words.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrWordNotFound)
}
