// SPDX-License-Identifier: MIT

// Package cli wires the wordladder commands: solve, batch and bench.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/ladder"
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUsage marks argument problems detected by the CLI itself.
var errUsage = errors.New("usage")

// session holds what every subcommand needs once the root has loaded config.
type session struct {
	cfg *config.Config
}

// NewRootCommand builds a fresh command tree bound to the global viper instance.
func NewRootCommand() *cobra.Command {
	s := &session{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Find shortest word ladders with a parallel breadth-first search",
		Long: `wordladder finds a shortest sequence of dictionary words from a start word
to an end word, changing exactly one letter per step. Searches run on a pool of
workers, level by level, either over a precomputed adjacency matrix or by testing
adjacency on demand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// a stray word is an unknown subcommand
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is "+config.ConfigDir()+"/config.yaml)")
	pf.StringP("dict", "d", defaults.Dictionary, "dictionary file, one word per line")
	pf.IntP("workers", "w", defaults.Workers, "worker goroutines for matrix build and search")
	pf.StringP("mode", "m", defaults.Mode, "search mode: dynamic, static, sequential or benchmark")
	pf.Duration("timeout", defaults.Timeout, "per-search deadline, 0 disables it")
	pf.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error or disabled")
	pf.Bool("verify", defaults.Verify, "re-check every reported ladder step by step")
	bindFlags(pf, map[string]string{
		"config":     "config",
		"dictionary": "dict",
		"workers":    "workers",
		"mode":       "mode",
		"timeout":    "timeout",
		"log_level":  "log-level",
		"verify":     "verify",
	})

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	root.AddCommand(s.solveCommand(), s.batchCommand(), s.benchCommand())

	return root
}

func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		_ = viper.BindPFlag(key, fs.Lookup(flag))
	}
}

// setup loads configuration and attaches the logger to the command context.
func (s *session) setup(cmd *cobra.Command) error {
	initConfig()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr(), true)
	if err != nil {
		return fmt.Errorf("%w: %w", ladder.ErrConfiguration, err)
	}
	s.cfg = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	logger.Debug().Interface("config", cfg).Msg("config-loaded")

	return nil
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("WORDLADDER")
	// WORDLADDER_BENCH_ROUNDS for bench.rounds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// load reads the dictionary filtered to the rune length of start.
func (s *session) load(start string) (*dictionary.Dictionary, error) {
	d, err := dictionary.LoadFile(s.cfg.Dictionary, dictionary.WordLen(start))
	if errors.Is(err, dictionary.ErrBadLength) {
		return nil, fmt.Errorf("%w: empty start word", errUsage)
	}

	return d, err
}

// isUsage reports errors that should print the command usage and exit 2.
func isUsage(err error) bool {
	return errors.Is(err, errUsage) || ladder.IsUsageError(err)
}

// usageArgs marks positional-argument failures of check as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}

		return nil
	}
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	if isUsage(err) {
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}

	return ExitError
}
