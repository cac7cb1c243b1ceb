// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/wordladder/ladder"
)

// ValidationError is one rejected setting.
type ValidationError struct {
	Key    string // viper key as written in config.yaml, e.g. "bench.rounds"
	Value  any
	Reason string
}

// Error renders "key=value: reason", e.g. "workers=0: must be greater than 0".
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Key, e.Value, e.Reason)
}

// ValidationErrors is every rejected setting of one Load, in key order of Validate.
type ValidationErrors []ValidationError

// Error joins the entries on one line behind a "config:" prefix.
func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}

	return "config: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ladder.ErrConfiguration on any validation failure.
func (e ValidationErrors) Unwrap() error {
	if len(e) == 0 {
		return nil
	}
	return ladder.ErrConfiguration
}

// ValidLogLevels lists the names accepted by logging.ParseLevel.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error", "disabled"}
}

// Validate returns one entry per invalid setting; nil means the Config is usable.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Workers <= 0 {
		errs = append(errs, ValidationError{Key: "workers", Value: c.Workers, Reason: "must be greater than 0"})
	}
	if _, err := ladder.ParseMode(c.Mode); err != nil {
		errs = append(errs, ValidationError{
			Key:    "mode",
			Value:  c.Mode,
			Reason: "must be one of dynamic, static, sequential, benchmark",
		})
	}
	if c.Timeout < 0 {
		errs = append(errs, ValidationError{Key: "timeout", Value: c.Timeout, Reason: "must not be negative"})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.LogLevel)) {
		errs = append(errs, ValidationError{
			Key:    "log_level",
			Value:  c.LogLevel,
			Reason: "must be one of " + strings.Join(ValidLogLevels(), ", "),
		})
	}
	if c.Bench.Rounds <= 0 {
		errs = append(errs, ValidationError{Key: "bench.rounds", Value: c.Bench.Rounds, Reason: "must be greater than 0"})
	}

	return errs
}
