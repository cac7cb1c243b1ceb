// SPDX-License-Identifier: MIT

package ladder

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Mode selects the search engine.
type Mode int

const (
	ModeDynamic Mode = iota
	ModeStatic
	ModeSequential
	ModeBenchmark
)

var modeNames = map[Mode]string{
	ModeDynamic:    "dynamic",
	ModeStatic:     "static",
	ModeSequential: "sequential",
	ModeBenchmark:  "benchmark",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown mode %q", ErrConfiguration, s)
}

// Option configures Solve. Invalid values are recorded and surfaced as
// ErrConfiguration before any work starts.
type Option func(*Options)

// Options holds the query parameters.
type Options struct {
	Workers  int
	Mode     Mode
	Deadline time.Duration

	err error
}

// DefaultOptions returns dynamic mode, one worker per CPU and no deadline.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Mode:    ModeDynamic,
	}
}

// WithWorkers sets the worker count used by the matrix builder and the
// parallel search. w <= 0 is a configuration error.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: workers must be > 0 (%d)", ErrConfiguration, w)
			return
		}
		o.Workers = w
	}
}

// WithMode selects the engine.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if _, ok := modeNames[m]; !ok {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrConfiguration, int(m))
			return
		}
		o.Mode = m
	}
}

// WithDeadline bounds each search; 0 disables the bound.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: deadline cannot be negative (%s)", ErrConfiguration, d)
			return
		}
		o.Deadline = d
	}
}
