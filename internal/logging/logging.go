// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger shared by the CLI and the
// library packages. Libraries never construct loggers; they read the one
// attached to their context with zerolog.Ctx and stay silent without it.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrLevel is returned for an unknown level name.
var ErrLevel = errors.New("logging: unknown level")

// ParseLevel maps debug, info, warn, error and disabled to zerolog levels.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	}

	return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrLevel, name)
}

// New returns a timestamped logger writing to w at the named level.
// console switches to zerolog's human-readable writer.
func New(level string, w io.Writer, console bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// WithLogger attaches l to ctx so zerolog.Ctx finds it downstream.
func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
