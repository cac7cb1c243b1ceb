package matrix_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/matrix"
)

// ExampleBuild builds the adjacency matrix of a four-word dictionary with
// two workers, each owning two rows.
func ExampleBuild() {
	adj, err := matrix.Build(context.Background(), []string{"cat", "cot", "cog", "dog"}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(adj)
	// Output:
	// [0, 1, 0, 0]
	// [1, 0, 1, 0]
	// [0, 1, 0, 1]
	// [0, 0, 1, 0]
}
