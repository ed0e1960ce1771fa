// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"container/heap"
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// cancelCheckEvery is how many rows KNeighbors scans between context checks.
const cancelCheckEvery = 1 << 16

// NeighborIndex is a brute-force Euclidean nearest-neighbour index over
// scaled feature rows. RowIDs maps each index position back to a dataset row.
type NeighborIndex struct {
	rows   [][]float64
	rowIDs []int
	dim    int
}

// IndexState is the persisted form of a NeighborIndex.
type IndexState struct {
	Rows   [][]float64
	RowIDs []int
	Metric string
}

// Fit stores the rows of X. rowIDs maps each row to its dataset position;
// nil means the identity mapping.
func (n *NeighborIndex) Fit(X [][]float64, rowIDs []int) error {
	if len(X) == 0 {
		return fmt.Errorf("fit index: %w", ErrEmptyIndex)
	}
	if rowIDs != nil && len(rowIDs) != len(X) {
		return fmt.Errorf("fit index: %d row ids for %d rows", len(rowIDs), len(X))
	}

	dim := len(X[0])
	for i, row := range X {
		if len(row) != dim {
			return fmt.Errorf("fit index: row %d has %d features, want %d: %w", i, len(row), dim, ErrDimensionMismatch)
		}
	}

	if rowIDs == nil {
		rowIDs = make([]int, len(X))
		for i := range rowIDs {
			rowIDs[i] = i
		}
	}

	n.rows = X
	n.rowIDs = rowIDs
	n.dim = dim
	return nil
}

// Len returns the number of indexed rows.
func (n *NeighborIndex) Len() int {
	return len(n.rows)
}

// Dim returns the indexed feature width.
func (n *NeighborIndex) Dim() int {
	return n.dim
}

// RowID returns the dataset row of index position i.
func (n *NeighborIndex) RowID(i int) int {
	return n.rowIDs[i]
}

// MaxRowID returns the largest dataset row referenced, or -1 when empty.
func (n *NeighborIndex) MaxRowID() int {
	maxID := -1
	for _, id := range n.rowIDs {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// candidate is one scanned row.
type candidate struct {
	dist float64
	pos  int
}

// worse reports whether a ranks after b: farther, or equally far with a
// higher position.
func worse(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist > b.dist
	}
	return a.pos > b.pos
}

// maxHeap keeps the k best candidates with the worst on top.
type maxHeap []candidate

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() any {
	old := *h
	c := old[len(old)-1]
	*h = old[:len(old)-1]
	return c
}

// KNeighbors returns the k nearest index positions to x, ascending by
// distance with ties broken by lower position. k larger than the index is
// clamped to its size.
func (n *NeighborIndex) KNeighbors(ctx context.Context, x []float64, k int) (distances []float64, indices []int, err error) {
	if len(n.rows) == 0 {
		return nil, nil, ErrNotFitted
	}
	if k <= 0 {
		return nil, nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if len(x) != n.dim {
		return nil, nil, fmt.Errorf("query has %d features, index has %d: %w", len(x), n.dim, ErrDimensionMismatch)
	}
	if k > len(n.rows) {
		k = len(n.rows)
	}

	h := make(maxHeap, 0, k+1)
	for i, row := range n.rows {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		c := candidate{dist: floats.Distance(row, x, 2), pos: i}
		if len(h) < k {
			heap.Push(&h, c)
			continue
		}
		if worse(h[0], c) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	best := []candidate(h)
	sort.Slice(best, func(i, j int) bool { return worse(best[j], best[i]) })

	distances = make([]float64, len(best))
	indices = make([]int, len(best))
	for i, c := range best {
		distances[i] = c.dist
		indices[i] = c.pos
	}
	return distances, indices, nil
}

// State returns the persisted form of the index.
func (n *NeighborIndex) State() IndexState {
	return IndexState{Rows: n.rows, RowIDs: n.rowIDs, Metric: "euclidean"}
}

// IndexFromState rebuilds an index, rejecting inconsistent state.
//
//nolint:gocritic // state passed by value after decoding
func IndexFromState(st IndexState) (*NeighborIndex, error) {
	if st.Metric != "" && st.Metric != "euclidean" {
		return nil, fmt.Errorf("index state: unsupported metric %q", st.Metric)
	}
	idx := &NeighborIndex{}
	if err := idx.Fit(st.Rows, st.RowIDs); err != nil {
		return nil, fmt.Errorf("index state: %w", err)
	}
	return idx, nil
}
