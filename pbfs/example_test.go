package pbfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/pbfs"
)

// ExampleSearch levels a six-word chain with three workers.
func ExampleSearch() {
	d := dictionary.New([]string{"monk", "mock", "pock", "pork", "perk", "perl"})
	res, err := pbfs.Search(context.Background(), d, d.Index("monk"), d.Index("perl"), pbfs.WithWorkers(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.TargetLevel, res.Levels)
	// Output:
	// true 5 [0 1 2 3 4 5]
}
