// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// pair is one "start end" line of a batch file.
type pair struct {
	line       int
	start, end string
}

func (s *session) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every \"start end\" line of FILE",
		Long: `batch reads FILE one query per line, two whitespace-separated words each.
Blank lines are skipped. A malformed line or an unknown word is reported and
the remaining lines still run.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return s.batch(cmd.Context(), f, cmd.OutOrStdout())
		},
	}
}

func (s *session) batch(ctx context.Context, r io.Reader, out io.Writer) error {
	pairs, bad, err := readPairs(r)
	if err != nil {
		return err
	}
	for _, line := range bad {
		fmt.Fprintf(out, "line %d: expected \"start end\"\n", line)
	}

	// one dictionary per word length
	dicts := make(map[int]*dictionary.Dictionary)
	failed := len(bad)
	for _, p := range pairs {
		size := dictionary.WordLen(p.start)
		d, ok := dicts[size]
		if !ok {
			if d, err = s.load(p.start); err != nil {
				return err
			}
			dicts[size] = d
		}

		res, err := s.query(ctx, d.Words(), p.start, p.end)
		if err != nil {
			if !ladder.IsUsageError(err) {
				return fmt.Errorf("line %d: %w", p.line, err)
			}
			failed++
			fmt.Fprintf(out, "line %d: %v\n", p.line, err)
			continue
		}
		fmt.Fprintf(out, "line %d: words: %d\n", p.line, d.Len())
		fmt.Fprintln(out, res)
		report(out, res)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(pairs)+len(bad))
	}

	return nil
}

// readPairs splits r into well-formed pairs and the numbers of malformed lines.
func readPairs(r io.Reader) ([]pair, []int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	fields := lo.Map(lines, func(l string, _ int) []string { return strings.Fields(l) })
	var (
		pairs []pair
		bad   []int
	)
	for i, f := range fields {
		switch len(f) {
		case 0:
		case 2:
			pairs = append(pairs, pair{line: i + 1, start: f[0], end: f[1]})
		default:
			bad = append(bad, i+1)
		}
	}

	return pairs, bad, nil
}
