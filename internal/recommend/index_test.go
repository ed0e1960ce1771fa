// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func squareIndex(t *testing.T) *NeighborIndex {
	t.Helper()
	idx := &NeighborIndex{}
	err := idx.Fit([][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{3, 3},
		{1, 0},
	}, nil)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return idx
}

func TestNeighborIndex_KNeighbors(t *testing.T) {
	idx := squareIndex(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     []float64
		k         int
		wantIdx   []int
		wantDists []float64
	}{
		{
			name:      "ties broken by lower index",
			query:     []float64{0, 0},
			k:         4,
			wantIdx:   []int{0, 1, 2, 4},
			wantDists: []float64{0, 1, 1, 1},
		},
		{
			name:      "k larger than rows is clamped",
			query:     []float64{3, 3},
			k:         50,
			wantIdx:   []int{3, 1, 2, 4, 0},
			wantDists: []float64{0, math.Sqrt(13), math.Sqrt(13), math.Sqrt(13), math.Sqrt(18)},
		},
		{
			name:      "single neighbour",
			query:     []float64{0.9, 0.1},
			k:         1,
			wantIdx:   []int{1},
			wantDists: []float64{math.Sqrt(0.02)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dists, indices, err := idx.KNeighbors(ctx, tt.query, tt.k)
			if err != nil {
				t.Fatalf("KNeighbors() error = %v", err)
			}
			if len(indices) != len(tt.wantIdx) {
				t.Fatalf("KNeighbors() indices = %v, want %v", indices, tt.wantIdx)
			}
			for i := range tt.wantIdx {
				if indices[i] != tt.wantIdx[i] {
					t.Errorf("indices[%d] = %d, want %d", i, indices[i], tt.wantIdx[i])
				}
				if math.Abs(dists[i]-tt.wantDists[i]) > 1e-12 {
					t.Errorf("distances[%d] = %v, want %v", i, dists[i], tt.wantDists[i])
				}
			}
		})
	}
}

func TestNeighborIndex_KNeighborsErrors(t *testing.T) {
	ctx := context.Background()

	empty := &NeighborIndex{}
	if _, _, err := empty.KNeighbors(ctx, []float64{0, 0}, 1); !errors.Is(err, ErrNotFitted) {
		t.Errorf("unfitted KNeighbors() error = %v, want ErrNotFitted", err)
	}

	idx := squareIndex(t)
	if _, _, err := idx.KNeighbors(ctx, []float64{0, 0}, 0); err == nil {
		t.Error("KNeighbors(k=0) expected error")
	}
	if _, _, err := idx.KNeighbors(ctx, []float64{0}, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("KNeighbors() wrong width error = %v, want ErrDimensionMismatch", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, _, err := idx.KNeighbors(canceled, []float64{0, 0}, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("KNeighbors() canceled error = %v, want context.Canceled", err)
	}
}

func TestNeighborIndex_FitErrors(t *testing.T) {
	if err := (&NeighborIndex{}).Fit(nil, nil); !errors.Is(err, ErrEmptyIndex) {
		t.Errorf("Fit(nil) error = %v, want ErrEmptyIndex", err)
	}
	if err := (&NeighborIndex{}).Fit([][]float64{{1, 2}, {1}}, nil); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Fit(ragged) error = %v, want ErrDimensionMismatch", err)
	}
	if err := (&NeighborIndex{}).Fit([][]float64{{1, 2}}, []int{0, 1}); err == nil {
		t.Error("Fit() with mismatched row ids should fail")
	}
}

// TestNeighborIndex_MatchesFullSort checks the bounded heap against a full
// sort of every distance.
func TestNeighborIndex_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	X := make([][]float64, 500)
	for i := range X {
		// Coarse grid values so many distances tie
		X[i] = []float64{float64(rng.IntN(6)), float64(rng.IntN(6)), float64(rng.IntN(6)), float64(rng.IntN(2))}
	}

	idx := &NeighborIndex{}
	if err := idx.Fit(X, nil); err != nil {
		t.Fatal(err)
	}

	query := []float64{2, 3, 1, 1}
	type pair struct {
		d   float64
		pos int
	}
	all := make([]pair, len(X))
	for i, row := range X {
		all[i] = pair{floats.Distance(row, query, 2), i}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].d < all[j].d })

	dists, indices, err := idx.KNeighbors(context.Background(), query, 25)
	if err != nil {
		t.Fatal(err)
	}
	for i := range indices {
		if indices[i] != all[i].pos || math.Abs(dists[i]-all[i].d) > 1e-12 {
			t.Fatalf("neighbour %d = (%d, %v), want (%d, %v)", i, indices[i], dists[i], all[i].pos, all[i].d)
		}
	}
}

func TestIndexState(t *testing.T) {
	idx := &NeighborIndex{}
	if err := idx.Fit([][]float64{{0, 0}, {1, 1}}, []int{4, 9}); err != nil {
		t.Fatal(err)
	}

	restored, err := IndexFromState(idx.State())
	if err != nil {
		t.Fatalf("IndexFromState() error = %v", err)
	}
	if restored.Len() != 2 || restored.Dim() != 2 {
		t.Errorf("restored index = %d rows x %d, want 2x2", restored.Len(), restored.Dim())
	}
	if restored.RowID(1) != 9 || restored.MaxRowID() != 9 {
		t.Errorf("row ids not restored: RowID(1)=%d MaxRowID=%d", restored.RowID(1), restored.MaxRowID())
	}

	if _, err := IndexFromState(IndexState{Rows: [][]float64{{1}}, Metric: "cosine"}); err == nil {
		t.Error("IndexFromState() should reject unknown metrics")
	}
	if _, err := IndexFromState(IndexState{}); !errors.Is(err, ErrEmptyIndex) {
		t.Errorf("IndexFromState(empty) error = %v, want ErrEmptyIndex", err)
	}
}
