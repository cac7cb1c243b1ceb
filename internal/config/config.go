// SPDX-License-Identifier: MIT

// Package config loads wordladder settings from defaults, an optional YAML
// file, WORDLADDER_* environment variables and command-line flags (in
// increasing order of precedence) through viper.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/ladder"
)

// Config is the complete CLI configuration.
type Config struct {
	// Dictionary is the path of the newline-separated word list.
	Dictionary string `mapstructure:"dictionary"`
	// Workers is the worker count for matrix building and parallel search.
	Workers int `mapstructure:"workers"`
	// Mode is one of "dynamic", "static", "sequential", "benchmark".
	Mode string `mapstructure:"mode"`
	// Timeout bounds each search; 0 disables it.
	Timeout time.Duration `mapstructure:"timeout"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Verify re-checks every reported ladder.
	Verify bool  `mapstructure:"verify"`
	Bench  Bench `mapstructure:"bench"`
}

// Bench controls the bench command.
type Bench struct {
	// Rounds is how many times each query is run.
	Rounds int `mapstructure:"rounds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: "dictionary.txt",
		Workers:    runtime.NumCPU(),
		Mode:       ladder.ModeDynamic.String(),
		Timeout:    30 * time.Second,
		LogLevel:   "info",
		Verify:     false,
		Bench:      Bench{Rounds: 5},
	}
}

// SetDefaults registers Default() with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("dictionary", defaults.Dictionary)
	viper.SetDefault("workers", defaults.Workers)
	viper.SetDefault("mode", defaults.Mode)
	viper.SetDefault("timeout", defaults.Timeout)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("verify", defaults.Verify)
	viper.SetDefault("bench.rounds", defaults.Bench.Rounds)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// LadderOptions translates the configuration into ladder.Solve options.
func (c *Config) LadderOptions() ([]ladder.Option, error) {
	mode, err := ladder.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	return []ladder.Option{
		ladder.WithWorkers(c.Workers),
		ladder.WithMode(mode),
		ladder.WithDeadline(c.Timeout),
	}, nil
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wordladder")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordladder"
	}
	return filepath.Join(home, ".config", "wordladder")
}
