// SPDX-License-Identifier: MIT

// Package span splits an index range into contiguous, disjoint chunks, one per
// worker. It is shared by the matrix builder (row ownership) and the parallel
// search (frontier stripes) so both partition work the same way.
package span

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (s Span) Len() int { return s.Hi - s.Lo }

// Split divides [0, n) into chunks of size ceil(n / min(workers, n)); the last
// chunk is truncated. Only non-empty chunks are returned, so the result has at
// most min(workers, n) entries and is empty when n == 0 or workers <= 0.
// Complexity: O(workers) time and memory.
func Split(n, workers int) []Span {
	if n <= 0 || workers <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	spans := make([]Span, 0, workers)
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
	}

	return spans
}
