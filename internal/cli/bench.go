// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/ladder"
)

func (s *session) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench START END",
		Short: "Run all engines repeatedly and print mean phase timings",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.bench(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
		},
	}
	cmd.Flags().IntP("rounds", "r", config.Default().Bench.Rounds, "number of benchmark rounds")
	_ = viper.BindPFlag("bench.rounds", cmd.Flags().Lookup("rounds"))

	return cmd
}

func (s *session) bench(ctx context.Context, out io.Writer, start, end string) error {
	d, err := s.load(start)
	if err != nil {
		return err
	}
	opts, err := s.cfg.LadderOptions()
	if err != nil {
		return err
	}
	opts = append(opts, ladder.WithMode(ladder.ModeBenchmark))

	var (
		last    *ladder.Result
		timings []ladder.Timing
	)
	for i, n := 0, s.cfg.Bench.Rounds; i < n; i++ {
		res, err := ladder.Solve(ctx, d.Words(), start, end, opts...)
		if err != nil {
			return err
		}
		timings = append(timings, res.Timings...)
		last = res
	}

	fmt.Fprintf(out, "words: %d, workers: %d, rounds: %d\n", d.Len(), s.cfg.Workers, s.cfg.Bench.Rounds)
	fmt.Fprintln(out, last)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, m := range meanTimings(timings) {
		fmt.Fprintf(tw, "  %s\t%s\n", m.Phase, m.Elapsed)
	}

	return tw.Flush()
}

// meanTimings averages the elapsed time per phase, in first-seen phase order.
func meanTimings(ts []ladder.Timing) []ladder.Timing {
	groups := lo.GroupBy(ts, func(t ladder.Timing) string { return t.Phase })
	phases := lo.Uniq(lo.Map(ts, func(t ladder.Timing, _ int) string { return t.Phase }))

	return lo.Map(phases, func(p string, _ int) ladder.Timing {
		total := lo.SumBy(groups[p], func(t ladder.Timing) time.Duration { return t.Elapsed })
		return ladder.Timing{Phase: p, Elapsed: total / time.Duration(len(groups[p]))}
	})
}
