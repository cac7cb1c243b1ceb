// Package bfs is the sequential reference search for word ladders: a classic
// level-by-level breadth-first search over an implicit word graph.
//
// What
//
//   - Explore words in non-decreasing distance (one-letter steps) from a source.
//   - Keep an explicit frontier slice per level and an "available" flag per word.
//   - Stop as soon as the target is leveled, or when the frontier empties.
//   - Return a BFSResult holding:
//   - Levels: word index → distance from source, or Unvisited
//   - Parent: word index → predecessor in the BFS tree, or -1
//   - Order:  expansion sequence
//   - Found / Target / TargetLevel
//   - Supports hooks:
//   - OnEnqueue (when a word is leveled)
//   - OnVisit   (when a word is expanded; may abort with an error)
//
// Why
//
//   - Baseline for correctness and timing of the parallel search (package pbfs):
//     both must agree on found/not-found and on the ladder length.
//
// Determinism
//
//	Neighbors are scanned in ascending index order, so for a fixed dictionary
//	the Order, Levels and Parent outputs are fully reproducible.
//
// Complexity (N = words)
//
//   - Time:   O(N²) adjacency tests in the worst case (implicit graph).
//   - Memory: O(N).
//
// Usage
//
//	res, err := bfs.BFS(adj, src, dst, bfs.WithContext(ctx))
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrTargetOutOfRange,
//	    // ErrOptionViolation, ctx errors or OnVisit errors
//	}
//	if res.Found {
//	    path, _ := res.PathTo(dst)
//	}
//
// Pass target = NoTarget to level the whole component of the source.
package bfs
