package matrix_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/matrix"
)

var monk = []string{"monk", "mock", "pock", "pork", "perk", "perl"}

// TestBuild_Monk checks the exact matrix of a six-word chain.
func TestBuild_Monk(t *testing.T) {
	adj, err := matrix.Build(context.Background(), monk, 2)
	require.NoError(t, err)
	require.Equal(t, 6, adj.Len())

	want := "" +
		"[0, 1, 0, 0, 0, 0]\n" +
		"[1, 0, 1, 0, 0, 0]\n" +
		"[0, 1, 0, 1, 0, 0]\n" +
		"[0, 0, 1, 0, 1, 0]\n" +
		"[0, 0, 0, 1, 0, 1]\n" +
		"[0, 0, 0, 0, 1, 0]\n"
	if diff := cmp.Diff(want, adj.String()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, adj.Edges())
}

// TestBuild_WorkerCountInvariant builds the same dictionary with 1, 2, N and
// N+3 workers and expects identical matrices.
func TestBuild_WorkerCountInvariant(t *testing.T) {
	words, err := builder.Random(60, 3, builder.WithSeed(7), builder.WithAlphabet("abcd"))
	require.NoError(t, err)

	ref, err := matrix.Build(context.Background(), words, 1)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 7, len(words), len(words) + 3} {
		got, err := matrix.Build(context.Background(), words, w)
		require.NoError(t, err)
		require.True(t, ref.Equal(got), "workers=%d\n%s", w, cmp.Diff(ref.String(), got.String()))
	}
}

// TestBuild_SymmetricZeroDiagonal checks structural invariants.
func TestBuild_SymmetricZeroDiagonal(t *testing.T) {
	words, err := builder.Random(40, 4, builder.WithSeed(3), builder.WithAlphabet("abc"))
	require.NoError(t, err)
	adj, err := matrix.Build(context.Background(), words, 4)
	require.NoError(t, err)

	for i := 0; i < adj.Len(); i++ {
		v, err := adj.At(i, i)
		require.NoError(t, err)
		require.Zero(t, v, "diagonal %d", i)
		for j := 0; j < adj.Len(); j++ {
			require.Equal(t, adj.Adjacent(i, j), adj.Adjacent(j, i), "(%d,%d)", i, j)
		}
	}
}

// TestBuild_Errors verifies worker validation and cancellation.
func TestBuild_Errors(t *testing.T) {
	_, err := matrix.Build(context.Background(), monk, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidWorkers)
	_, err = matrix.Build(context.Background(), monk, -2)
	assert.ErrorIs(t, err, matrix.ErrInvalidWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = matrix.Build(ctx, monk, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBuild_Empty yields a valid 0×0 matrix.
func TestBuild_Empty(t *testing.T) {
	adj, err := matrix.Build(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, adj.Len())
	assert.Equal(t, "", adj.String())
	assert.False(t, adj.Adjacent(0, 0))
}

// TestAccessors covers At/Row/Neighbors/Degree and range checks.
func TestAccessors(t *testing.T) {
	adj, err := matrix.Build(context.Background(), monk, 3)
	require.NoError(t, err)

	row, err := adj.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 0}, row)

	nbrs, err := adj.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, nbrs)

	deg, err := adj.Degree(5)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = adj.At(6, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = adj.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = adj.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = adj.Degree(9)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.False(t, adj.Adjacent(0, 99))
}

// TestEqual handles nil and shape differences.
func TestEqual(t *testing.T) {
	a, err := matrix.Build(context.Background(), monk, 1)
	require.NoError(t, err)
	b, err := matrix.Build(context.Background(), monk[:5], 1)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	var nilAdj *matrix.Adjacency
	assert.True(t, nilAdj.Equal(nil))
}
