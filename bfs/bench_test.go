package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/matrix"
)

// BenchmarkBFS_Chain searches end to end over a 201-word chain matrix.
func BenchmarkBFS_Chain(b *testing.B) {
	words, err := builder.Chain(8, 200)
	if err != nil {
		b.Fatal(err)
	}
	adj, err := matrix.Build(context.Background(), words, 4)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(adj, 0, len(words)-1); err != nil {
			b.Fatal(err)
		}
	}
}
