package pbfs_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/hamming"
	"github.com/katalvlaran/wordladder/matrix"
	"github.com/katalvlaran/wordladder/pbfs"
)

var monk = []string{"monk", "mock", "pock", "pork", "perk", "perl"}

// TestSearch_Errors verifies validation happens before any worker starts.
func TestSearch_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := pbfs.Search(ctx, nil, 0, 1)
	assert.ErrorIs(t, err, pbfs.ErrGraphNil)

	d := dictionary.New(monk)
	_, err = pbfs.Search(ctx, d, 6, 1)
	assert.ErrorIs(t, err, pbfs.ErrSourceOutOfRange)
	_, err = pbfs.Search(ctx, d, 0, -1)
	assert.ErrorIs(t, err, pbfs.ErrTargetOutOfRange)
	_, err = pbfs.Search(ctx, d, 0, 5, pbfs.WithWorkers(0))
	assert.ErrorIs(t, err, pbfs.ErrOptionViolation)
	_, err = pbfs.Search(ctx, d, 0, 5, pbfs.WithDeadline(-time.Second))
	assert.ErrorIs(t, err, pbfs.ErrOptionViolation)
}

// TestSearch_Monk levels the six-word chain for every worker count.
func TestSearch_Monk(t *testing.T) {
	d := dictionary.New(monk)
	for w := 1; w <= len(monk)+2; w++ {
		t.Run(fmt.Sprintf("workers=%d", w), func(t *testing.T) {
			res, err := pbfs.Search(context.Background(), d, 0, 5, pbfs.WithWorkers(w))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 5, res.TargetLevel)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Levels)
			assert.LessOrEqual(t, res.Workers, len(monk))
		})
	}
}

// TestSearch_StaticMatrix runs over a prebuilt matrix.
func TestSearch_StaticMatrix(t *testing.T) {
	words := []string{"cat", "cot", "cog", "dog"}
	adj, err := matrix.Build(context.Background(), words, 2)
	require.NoError(t, err)
	res, err := pbfs.Search(context.Background(), adj, 0, 3, pbfs.WithWorkers(3))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 3, res.TargetLevel)
}

// TestSearch_SourceIsTarget returns level 0 without spawning workers.
func TestSearch_SourceIsTarget(t *testing.T) {
	res, err := pbfs.Search(context.Background(), dictionary.New(monk), 2, 2, pbfs.WithWorkers(4))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.TargetLevel)
	assert.Zero(t, res.Tickets)
}

// TestSearch_Disconnected terminates with not-found for every worker count
// and levels the whole source component with processed flags set.
func TestSearch_Disconnected(t *testing.T) {
	words := []string{"abc", "abd", "abe", "xyz", "xyw", "xzw"}
	d := dictionary.New(words)
	for w := 1; w <= len(words); w++ {
		t.Run(fmt.Sprintf("workers=%d", w), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			res, err := pbfs.Search(ctx, d, 0, 3, pbfs.WithWorkers(w))
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Equal(t, pbfs.Unvisited, res.TargetLevel)
			assert.Equal(t, []int{0, 1, 1, pbfs.Unvisited, pbfs.Unvisited, pbfs.Unvisited}, res.Levels)
			assert.Equal(t, []bool{true, true, true, false, false, false}, res.Processed)
		})
	}
}

// TestSearch_IsolatedSource drains immediately.
func TestSearch_IsolatedSource(t *testing.T) {
	d := dictionary.New([]string{"aaa", "bbb", "bbc"})
	res, err := pbfs.Search(context.Background(), d, 0, 2, pbfs.WithWorkers(3))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, pbfs.Unvisited, pbfs.Unvisited}, res.Levels)
}

// TestSearch_AgreesWithReference compares full level maps against the
// sequential search on random dictionaries. The target is unreachable from
// an extra word so both searches level the whole component.
func TestSearch_AgreesWithReference(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		words, err := builder.Random(45, 3, builder.WithSeed(seed), builder.WithAlphabet("abcde"))
		require.NoError(t, err)
		words = append(words, "zzzz") // different length: never adjacent
		d := dictionary.New(words)
		target := len(words) - 1

		ref, err := bfs.BFS(d, 0, bfs.NoTarget)
		require.NoError(t, err)

		for _, w := range []int{1, 2, 3, 8, len(words)} {
			res, err := pbfs.Search(context.Background(), d, 0, target, pbfs.WithWorkers(w))
			require.NoError(t, err)
			require.False(t, res.Found)
			if diff := cmp.Diff(ref.Levels, res.Levels); diff != "" {
				t.Fatalf("seed=%d workers=%d levels (-bfs +pbfs):\n%s", seed, w, diff)
			}
		}
	}
}

// TestSearch_ShortestAgainstBruteForce checks the target level against an
// independent all-pairs distance computation on small dictionaries.
func TestSearch_ShortestAgainstBruteForce(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		words, err := builder.Random(30, 3, builder.WithSeed(seed), builder.WithAlphabet("abcd"))
		require.NoError(t, err)
		dist := bruteForce(words)
		d := dictionary.New(words)
		for dst := 0; dst < len(words); dst += 7 {
			for _, w := range []int{1, 4, len(words)} {
				res, err := pbfs.Search(context.Background(), d, 0, dst, pbfs.WithWorkers(w))
				require.NoError(t, err)
				if dist[0][dst] < 0 {
					require.False(t, res.Found, "seed=%d dst=%d", seed, dst)
					continue
				}
				require.True(t, res.Found, "seed=%d dst=%d", seed, dst)
				require.Equal(t, dist[0][dst], res.TargetLevel, "seed=%d dst=%d workers=%d", seed, dst, w)
				// every assigned level is the true distance
				for i, l := range res.Levels {
					if l != pbfs.Unvisited {
						require.Equal(t, dist[0][i], l, "word %d", i)
					}
				}
			}
		}
	}
}

// TestSearch_Deadline stops a slow search with DeadlineExceeded.
func TestSearch_Deadline(t *testing.T) {
	words, err := builder.Chain(5, 80)
	require.NoError(t, err)
	g := slowGraph{d: dictionary.New(words), delay: time.Millisecond}
	_, err = pbfs.Search(context.Background(), g, 0, len(words)-1,
		pbfs.WithWorkers(2), pbfs.WithDeadline(20*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSearch_Cancelled returns the context error.
func TestSearch_Cancelled(t *testing.T) {
	words, err := builder.Chain(5, 80)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pbfs.Search(ctx, dictionary.New(words), 0, len(words)-1, pbfs.WithWorkers(3))
	assert.ErrorIs(t, err, context.Canceled)
}

type slowGraph struct {
	d     *dictionary.Dictionary
	delay time.Duration
}

func (g slowGraph) Len() int { return g.d.Len() }

func (g slowGraph) Adjacent(i, j int) bool {
	time.Sleep(g.delay)
	return g.d.Adjacent(i, j)
}

// bruteForce returns all-pairs shortest distances (-1 when unreachable) using
// Floyd–Warshall over the hamming predicate.
func bruteForce(words []string) [][]int {
	const inf = 1 << 30
	n := len(words)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			switch {
			case i == j:
				dist[i][j] = 0
			case hamming.Adjacent(words[i], words[j]):
				dist[i][j] = 1
			default:
				dist[i][j] = inf
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	for i := range dist {
		for j := range dist[i] {
			if dist[i][j] >= inf {
				dist[i][j] = -1
			}
		}
	}

	return dist
}
