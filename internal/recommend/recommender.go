// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/models"
	"github.com/tomtom215/arboretum/internal/validation"
)

// Recommender answers location queries with the nearest dataset trees.
type Recommender struct {
	scaler *StandardScaler
	index  *NeighborIndex
	table  *dataset.Table
}

// NewRecommender combines fitted artifacts with the table they were built
// from. It fails when the artifacts do not fit each other or the table.
func NewRecommender(scaler *StandardScaler, index *NeighborIndex, table *dataset.Table) (*Recommender, error) {
	if scaler == nil || index == nil || table == nil {
		return nil, fmt.Errorf("recommender needs a scaler, an index and a table")
	}
	if scaler.Dim() != NumFeatures {
		return nil, fmt.Errorf("scaler has %d features, want %d: %w", scaler.Dim(), NumFeatures, ErrDimensionMismatch)
	}
	if index.Dim() != scaler.Dim() {
		return nil, fmt.Errorf("index has %d features, scaler has %d: %w", index.Dim(), scaler.Dim(), ErrDimensionMismatch)
	}
	if maxID := index.MaxRowID(); maxID >= table.Len() {
		return nil, fmt.Errorf("index references row %d but the dataset has %d rows; rebuild the index with treeindex", maxID, table.Len())
	}

	return &Recommender{scaler: scaler, index: index, table: table}, nil
}

// Recommend returns the k dataset trees nearest to loc in scaled feature
// space, closest first.
func (r *Recommender) Recommend(ctx context.Context, loc *models.Location, k int) ([]models.Recommendation, error) {
	if verr := validation.ValidateStruct(loc); verr != nil {
		return nil, fmt.Errorf("invalid location: %w", verr)
	}

	start := time.Now()

	query, err := r.scaler.Transform(LocationFeatures(loc))
	if err != nil {
		return nil, fmt.Errorf("scale query: %w", err)
	}

	distances, positions, err := r.index.KNeighbors(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("query neighbours: %w", err)
	}

	recs := make([]models.Recommendation, len(positions))
	for i, pos := range positions {
		tree, err := r.table.Row(r.index.RowID(pos))
		if err != nil {
			return nil, fmt.Errorf("map neighbour %d: %w", pos, err)
		}
		recs[i] = models.Recommendation{
			Rank:       i + 1,
			Tree:       tree,
			Distance:   distances[i],
			Confidence: Confidence(distances[i]),
		}
	}

	logging.Ctx(ctx).Debug().
		Float64("latitude", loc.Latitude).
		Float64("longitude", loc.Longitude).
		Int("k", k).
		Int("returned", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("Computed recommendations")

	return recs, nil
}
