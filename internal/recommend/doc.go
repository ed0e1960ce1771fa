// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Package recommend suggests tree species for a planting location.
//
// A location is encoded as [latitude, longitude, diameter_cm, native], scaled
// with a StandardScaler fitted on the dataset, and matched against every
// dataset row by Euclidean distance in a brute-force NeighborIndex. The
// nearest rows are the recommendations; their display confidence is
// max(0, 100 - 50*distance).
//
// Build fits both artifacts from a dataset.Table. SaveArtifacts and
// LoadArtifacts move them through an artifact.Store under the names
// "scaler" and "nn_model" by default.
//
//	arts, err := recommend.LoadArtifacts(ctx, store, recommend.DefaultNames)
//	rec, err := recommend.NewRecommender(arts.Scaler, arts.Index, table)
//	recs, err := rec.Recommend(ctx, &loc, 5)
package recommend
