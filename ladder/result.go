// SPDX-License-Identifier: MIT

package ladder

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/wordladder/matrix"
)

// Phase names used in Result.Timings.
const (
	PhaseBuild            = "build"
	PhaseSearchDynamic    = "search-dynamic"
	PhaseSearchStatic     = "search-static"
	PhaseSearchSequential = "search-sequential"
	PhaseReconstruct      = "reconstruct"
)

// Timing is the wall time spent in one phase of a query.
type Timing struct {
	Phase   string
	Elapsed time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	Mode    Mode
	Start   string
	End     string
	Found   bool
	Indices []int    // dictionary indices, start first
	Words   []string // the ladder, start first
	Levels  []int    // final level assignment of the reporting engine
	Workers int      // effective worker count of the parallel search, 1 for sequential

	// Matrix is the adjacency matrix when the mode built one, else nil.
	Matrix *matrix.Adjacency

	Timings []Timing
}

// Len returns the number of words in the ladder, 0 when none was found.
func (r *Result) Len() int { return len(r.Words) }

// Elapsed returns the time recorded for phase, summed over repeats.
func (r *Result) Elapsed(phase string) time.Duration {
	var d time.Duration
	for _, t := range r.Timings {
		if t.Phase == phase {
			d += t.Elapsed
		}
	}

	return d
}

// String renders "a -> b -> c" or the no-ladder message.
func (r *Result) String() string {
	if !r.Found {
		return fmt.Sprintf("there is no ladder between %s and %s", r.Start, r.End)
	}

	return strings.Join(r.Words, " -> ")
}
