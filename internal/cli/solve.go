// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/ladder"
)

func (s *session) solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve START END",
		Short: "Find a shortest ladder between two words",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.solve(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func (s *session) solve(ctx context.Context, out io.Writer, start, end string) error {
	d, err := s.load(start)
	if err != nil {
		return err
	}
	res, err := s.query(ctx, d.Words(), start, end)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "words: %d\n", d.Len())
	fmt.Fprintln(out, res)
	report(out, res)

	return nil
}

// query runs one Solve call under the session configuration.
func (s *session) query(ctx context.Context, words []string, start, end string) (*ladder.Result, error) {
	opts, err := s.cfg.LadderOptions()
	if err != nil {
		return nil, err
	}
	res, err := ladder.Solve(ctx, words, start, end, opts...)
	if err != nil {
		return nil, err
	}
	if s.cfg.Verify && res.Found {
		if err := ladder.Check(res.Words, start, end); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// report prints one aligned line per recorded phase.
func report(out io.Writer, res *ladder.Result) {
	if len(res.Timings) == 0 {
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, t := range res.Timings {
		fmt.Fprintf(tw, "  %s\t%s\n", t.Phase, t.Elapsed)
	}
	_ = tw.Flush()
}
