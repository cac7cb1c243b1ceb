// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Adjacency is a dense N×N 0/1 word adjacency matrix.
//   - n is the number of words.
//   - data holds n*n cells in row-major order (offset = i*n + j).
type Adjacency struct {
	n    int
	data []uint8
}

var _ fmt.Stringer = (*Adjacency)(nil)

// newAdjacency allocates a zero n×n matrix; n == 0 is legal.
func newAdjacency(n int) *Adjacency {
	return &Adjacency{n: n, data: make([]uint8, n*n)}
}

// Len returns N, the number of rows (and columns).
// Complexity: O(1).
func (a *Adjacency) Len() int { return a.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (a *Adjacency) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= a.n || col < 0 || col >= a.n {
		return 0, adjErrorf(method, row, col, ErrOutOfRange)
	}

	return row*a.n + col, nil
}

// At returns the cell (row, col).
// Complexity: O(1).
func (a *Adjacency) At(row, col int) (uint8, error) {
	idx, err := a.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return a.data[idx], nil
}

// Adjacent reports whether cell (i, j) is set. Out-of-range indices report
// false; this is the hot path of the searches and skips error wrapping.
func (a *Adjacency) Adjacent(i, j int) bool {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return false
	}

	return a.data[i*a.n+j] == 1
}

// Row returns a copy of row i.
// Complexity: O(N).
func (a *Adjacency) Row(i int) ([]uint8, error) {
	if i < 0 || i >= a.n {
		return nil, adjErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]uint8, a.n)
	copy(out, a.data[i*a.n:(i+1)*a.n])

	return out, nil
}

// Neighbors returns the column indices set in row i, ascending.
// Complexity: O(N).
func (a *Adjacency) Neighbors(i int) ([]int, error) {
	row, err := a.Row(i)
	if err != nil {
		return nil, err
	}
	var out []int
	for j, v := range row {
		if v == 1 {
			out = append(out, j)
		}
	}

	return out, nil
}

// Degree returns the number of words adjacent to word i.
// Complexity: O(N).
func (a *Adjacency) Degree(i int) (int, error) {
	nbrs, err := a.Neighbors(i)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// Edges returns the number of undirected edges (set cells above the diagonal).
// Complexity: O(N²).
func (a *Adjacency) Edges() int {
	m := 0
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] == 1 {
				m++
			}
		}
	}

	return m
}

// Equal reports whether both matrices have the same shape and cells.
func (a *Adjacency) Equal(b *Adjacency) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
func (a *Adjacency) String() string {
	var sb strings.Builder
	for i := 0; i < a.n; i++ {
		sb.WriteString("[")
		for j := 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('0' + a.data[i*a.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
