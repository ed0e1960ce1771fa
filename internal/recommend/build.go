// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/arboretum/internal/artifact"
	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/models"
)

// Artifacts is the fitted scaler and neighbour index pair.
type Artifacts struct {
	Scaler *StandardScaler
	Index  *NeighborIndex

	// Skipped counts dataset rows left out for missing feature values.
	Skipped     int
	FittedAt    time.Time
	FitDuration time.Duration

	ScalerMeta *artifact.Metadata
	IndexMeta  *artifact.Metadata
}

// Names are the artifact store names of the scaler and the index.
type Names struct {
	Scaler string
	Index  string
}

// DefaultNames are the store names used by treeindex and treedemo.
var DefaultNames = Names{Scaler: "scaler", Index: "nn_model"}

// Build fits the scaler and index from every table row with complete
// features. Rows missing a coordinate or diameter are skipped.
func Build(ctx context.Context, table *dataset.Table) (*Artifacts, error) {
	if !table.HasCoordinates() || !table.HasColumn(models.ColDiameter) {
		return nil, fmt.Errorf("dataset needs coordinate and diameter columns to build an index")
	}

	start := time.Now()

	rows := table.Rows()
	X := make([][]float64, 0, len(rows))
	rowIDs := make([]int, 0, len(rows))
	for i := range rows {
		x := TreeFeatures(&rows[i])
		if !complete(x) {
			continue
		}
		X = append(X, x)
		rowIDs = append(rowIDs, i)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scaler := &StandardScaler{}
	if err := scaler.Fit(X); err != nil {
		return nil, err
	}

	scaled, err := scaler.TransformAll(X)
	if err != nil {
		return nil, fmt.Errorf("scale rows: %w", err)
	}

	index := &NeighborIndex{}
	if err := index.Fit(scaled, rowIDs); err != nil {
		return nil, err
	}

	arts := &Artifacts{
		Scaler:      scaler,
		Index:       index,
		Skipped:     len(rows) - len(X),
		FittedAt:    time.Now(),
		FitDuration: time.Since(start),
	}

	logging.Ctx(ctx).Info().
		Int("rows", index.Len()).
		Int("skipped", arts.Skipped).
		Dur("duration", arts.FitDuration).
		Msg("Fitted scaler and neighbour index")

	return arts, nil
}

// SaveArtifacts writes both artifacts as new versions and, when keep > 0,
// prunes older versions beyond keep.
func SaveArtifacts(ctx context.Context, store *artifact.Store, names Names, arts *Artifacts, keep int) error {
	meta := artifact.Metadata{
		FittedAt:      arts.FittedAt,
		RowCount:      arts.Index.Len(),
		FeatureCount:  arts.Index.Dim(),
		FitDurationMS: arts.FitDuration.Milliseconds(),
	}

	scalerMeta, err := store.Save(ctx, names.Scaler, 0, arts.Scaler.State(), meta)
	if err != nil {
		return fmt.Errorf("save %s: %w", names.Scaler, err)
	}

	indexMeta, err := store.Save(ctx, names.Index, 0, arts.Index.State(), meta)
	if err != nil {
		return fmt.Errorf("save %s: %w", names.Index, err)
	}

	arts.ScalerMeta = scalerMeta
	arts.IndexMeta = indexMeta

	if keep > 0 {
		for _, name := range []string{names.Scaler, names.Index} {
			removed, err := store.Prune(ctx, name, keep)
			if err != nil {
				return fmt.Errorf("prune %s: %w", name, err)
			}
			if removed > 0 {
				logging.Ctx(ctx).Debug().Str("artifact", name).Int("removed", removed).Msg("Pruned old versions")
			}
		}
	}

	return nil
}

// LoadArtifacts reads the latest scaler and index from the store.
func LoadArtifacts(ctx context.Context, store *artifact.Store, names Names) (*Artifacts, error) {
	var scalerState ScalerState
	scalerMeta, err := store.Load(ctx, names.Scaler, 0, &scalerState)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", names.Scaler, err)
	}
	scaler, err := ScalerFromState(scalerState)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", names.Scaler, err)
	}

	var indexState IndexState
	indexMeta, err := store.Load(ctx, names.Index, 0, &indexState)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", names.Index, err)
	}
	index, err := IndexFromState(indexState)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", names.Index, err)
	}

	if index.Dim() != scaler.Dim() {
		return nil, fmt.Errorf("index has %d features, scaler has %d: %w", index.Dim(), scaler.Dim(), ErrDimensionMismatch)
	}

	return &Artifacts{
		Scaler:     scaler,
		Index:      index,
		FittedAt:   indexMeta.FittedAt,
		ScalerMeta: scalerMeta,
		IndexMeta:  indexMeta,
	}, nil
}
