package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/matrix"
)

func monkMatrix(t *testing.T) *matrix.Adjacency {
	t.Helper()
	adj, err := matrix.Build(context.Background(), []string{"monk", "mock", "pock", "pork", "perk", "perl"}, 2)
	require.NoError(t, err)
	return adj
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	adj := monkMatrix(t)
	_, err = bfs.BFS(adj, 6, 1)
	assert.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.BFS(adj, -1, 1)
	assert.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.BFS(adj, 0, 9)
	assert.ErrorIs(t, err, bfs.ErrTargetOutOfRange)
	_, err = bfs.BFS(adj, 0, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Monk finds the six-word ladder over the matrix.
func TestBFS_Monk(t *testing.T) {
	res, err := bfs.BFS(monkMatrix(t), 0, 5)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5, res.TargetLevel)

	path, err := res.PathTo(5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, path)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5}, res.Levels); diff != "" {
		t.Errorf("levels (-want +got):\n%s", diff)
	}
}

// TestBFS_DictionaryGraph runs directly over the predicate.
func TestBFS_DictionaryGraph(t *testing.T) {
	d := dictionary.New([]string{"cat", "cot", "cog", "dog"})
	res, err := bfs.BFS(d, d.Index("cat"), d.Index("dog"))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 3, res.TargetLevel)
}

// TestBFS_NoTargetLevelsComponent levels all reachable words only.
func TestBFS_NoTargetLevelsComponent(t *testing.T) {
	d := dictionary.New([]string{"cat", "cot", "xyz", "cog", "xyw"})
	res, err := bfs.BFS(d, 0, bfs.NoTarget)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, 1, bfs.Unvisited, 2, bfs.Unvisited}, res.Levels)
	assert.Equal(t, bfs.Unvisited, res.TargetLevel)

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, path)
}

// TestBFS_Disconnected returns not-found without error.
func TestBFS_Disconnected(t *testing.T) {
	d := dictionary.New([]string{"abc", "abd", "xyz", "xyw"})
	res, err := bfs.BFS(d, 0, 2)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, bfs.Unvisited, res.Levels[2])
}

// TestBFS_SourceIsTarget finds the trivial ladder at level 0.
func TestBFS_SourceIsTarget(t *testing.T) {
	res, err := bfs.BFS(monkMatrix(t), 3, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.TargetLevel)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, path)
}

// TestBFS_MaxDepth stops leveling beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(monkMatrix(t), 0, 5, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, bfs.Unvisited, bfs.Unvisited, bfs.Unvisited}, res.Levels)
}

// TestBFS_Hooks checks hook order and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	var enq []int
	var visits []int
	_, err := bfs.BFS(monkMatrix(t), 0, 5,
		bfs.WithOnEnqueue(func(idx, _ int) { enq = append(enq, idx) }),
		bfs.WithOnVisit(func(idx, _ int) error { visits = append(visits, idx); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, enq)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visits)

	boom := errors.New("boom")
	_, err = bfs.BFS(monkMatrix(t), 0, 5, bfs.WithOnVisit(func(idx, _ int) error {
		if idx == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_Cancelled honors a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(monkMatrix(t), 0, 5, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
