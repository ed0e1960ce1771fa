// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/arboretum/internal/artifact"
	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/models"
)

func plantingTable() *dataset.Table {
	return dataset.NewTable([]models.Tree{
		{CommonName: "Red Oak", ScientificName: "Quercus rubra", City: "Louisville", State: "Kentucky", Latitude: 38.25, Longitude: -85.76, DiameterCM: 40, Native: true},
		{CommonName: "Sugar Maple", ScientificName: "Acer saccharum", City: "Louisville", State: "Kentucky", Latitude: 38.22, Longitude: -85.70, DiameterCM: 22, Native: true},
		{CommonName: "Ginkgo", ScientificName: "Ginkgo biloba", City: "Unknown", Latitude: math.NaN(), Longitude: math.NaN(), DiameterCM: 30},
		{CommonName: "Norway Maple", ScientificName: "Acer platanoides", City: "Columbus", State: "Ohio", Latitude: 39.96, Longitude: -83.00, DiameterCM: 31, Native: false},
		{CommonName: "Blue Spruce", ScientificName: "Picea pungens", City: "Denver", State: "Colorado", Latitude: 39.74, Longitude: -104.99, DiameterCM: 18, Native: true},
		{CommonName: "Pin Oak", ScientificName: "Quercus palustris", City: "Lexington", State: "Kentucky", Latitude: 38.04, Longitude: -84.50, DiameterCM: 26, Native: true},
	})
}

func TestBuild(t *testing.T) {
	arts, err := Build(context.Background(), plantingTable())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if arts.Index.Len() != 5 {
		t.Errorf("Index.Len() = %d, want 5", arts.Index.Len())
	}
	if arts.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (the row without coordinates)", arts.Skipped)
	}
	if arts.Scaler.Dim() != NumFeatures || arts.Index.Dim() != NumFeatures {
		t.Errorf("dims = %d/%d, want %d", arts.Scaler.Dim(), arts.Index.Dim(), NumFeatures)
	}
	// Position 2 of the index is dataset row 3 after the skipped row
	if arts.Index.RowID(2) != 3 {
		t.Errorf("RowID(2) = %d, want 3", arts.Index.RowID(2))
	}
}

func TestBuild_MissingColumns(t *testing.T) {
	table := dataset.NewTable(nil, models.ColCommonName, models.ColCity)
	if _, err := Build(context.Background(), table); err == nil {
		t.Error("Build() without coordinates should fail")
	}

	allMissing := dataset.NewTable([]models.Tree{{Latitude: math.NaN()}})
	if _, err := Build(context.Background(), allMissing); !errors.Is(err, ErrEmptyIndex) {
		t.Errorf("Build() with no complete rows error = %v, want ErrEmptyIndex", err)
	}
}

func TestRecommender_ExactRowFirst(t *testing.T) {
	table := plantingTable()
	arts, err := Build(context.Background(), table)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := NewRecommender(arts.Scaler, arts.Index, table)
	if err != nil {
		t.Fatalf("NewRecommender() error = %v", err)
	}

	for _, rowIdx := range []int{0, 3, 5} {
		row, _ := table.Row(rowIdx)
		loc := &models.Location{Latitude: row.Latitude, Longitude: row.Longitude, DiameterCM: row.DiameterCM, Native: row.Native}

		recs, err := rec.Recommend(context.Background(), loc, 3)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(recs) != 3 {
			t.Fatalf("len(recs) = %d, want 3", len(recs))
		}
		if recs[0].Tree.CommonName != row.CommonName {
			t.Errorf("query of row %d: first = %s, want %s", rowIdx, recs[0].Tree.CommonName, row.CommonName)
		}
		if recs[0].Distance != 0 || recs[0].Confidence != 100 {
			t.Errorf("exact match distance/confidence = %v/%v, want 0/100", recs[0].Distance, recs[0].Confidence)
		}
		for i, r := range recs {
			if r.Rank != i+1 {
				t.Errorf("recs[%d].Rank = %d", i, r.Rank)
			}
			if i > 0 && r.Distance < recs[i-1].Distance {
				t.Errorf("recommendations not ascending at %d", i)
			}
		}
	}
}

func TestRecommender_Louisville(t *testing.T) {
	table := plantingTable()
	arts, err := Build(context.Background(), table)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := NewRecommender(arts.Scaler, arts.Index, table)
	if err != nil {
		t.Fatal(err)
	}

	loc := &models.Location{City: "Louisville", State: "Kentucky", Latitude: 38.2527, Longitude: -85.7585, DiameterCM: 25.4, Native: true}
	recs, err := rec.Recommend(context.Background(), loc, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("k is clamped to the index size: got %d, want 5", len(recs))
	}
	if recs[0].Tree.State != "Kentucky" {
		t.Errorf("closest tree is in %s, want Kentucky", recs[0].Tree.State)
	}
	for _, r := range recs {
		if r.Tree.CommonName == "Ginkgo" {
			t.Error("rows without coordinates must never be recommended")
		}
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Errorf("confidence %v out of range", r.Confidence)
		}
	}
}

func TestRecommender_Errors(t *testing.T) {
	table := plantingTable()
	arts, err := Build(context.Background(), table)
	if err != nil {
		t.Fatal(err)
	}

	short := dataset.NewTable([]models.Tree{{CommonName: "only"}})
	if _, err := NewRecommender(arts.Scaler, arts.Index, short); err == nil {
		t.Error("NewRecommender() with a smaller table should fail")
	}
	if _, err := NewRecommender(nil, arts.Index, table); err == nil {
		t.Error("NewRecommender(nil scaler) should fail")
	}

	narrow := &StandardScaler{}
	if err := narrow.Fit([][]float64{{1, 2}, {3, 4}}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRecommender(narrow, arts.Index, table); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("NewRecommender(narrow scaler) error = %v, want ErrDimensionMismatch", err)
	}

	rec, err := NewRecommender(arts.Scaler, arts.Index, table)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rec.Recommend(context.Background(), &models.Location{Latitude: 95}, 5); err == nil {
		t.Error("Recommend() with invalid latitude should fail")
	}
	if _, err := rec.Recommend(context.Background(), &models.Location{Latitude: 38, Longitude: -85}, 0); err == nil {
		t.Error("Recommend(k=0) should fail")
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 100},
		{0.5, 75},
		{2, 0},
		{3.7, 0},
	}
	for _, tt := range tests {
		if got := Confidence(tt.distance); got != tt.want {
			t.Errorf("Confidence(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestSaveAndLoadArtifacts(t *testing.T) {
	ctx := context.Background()
	table := plantingTable()

	arts, err := Build(ctx, table)
	if err != nil {
		t.Fatal(err)
	}

	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// Two saves with keep=1 leave only the second version of each
	for i := 0; i < 2; i++ {
		if err := SaveArtifacts(ctx, store, DefaultNames, arts, 1); err != nil {
			t.Fatalf("SaveArtifacts() error = %v", err)
		}
	}
	if arts.ScalerMeta == nil || arts.ScalerMeta.Version != 2 {
		t.Fatalf("ScalerMeta = %+v, want version 2", arts.ScalerMeta)
	}
	if arts.IndexMeta.RowCount != 5 || arts.IndexMeta.FeatureCount != NumFeatures {
		t.Errorf("IndexMeta rows/features = %d/%d, want 5/%d", arts.IndexMeta.RowCount, arts.IndexMeta.FeatureCount, NumFeatures)
	}
	var discard ScalerState
	if _, err := store.Load(ctx, DefaultNames.Scaler, 1, &discard); !errors.Is(err, artifact.ErrNotFound) {
		t.Errorf("version 1 should be pruned, Load() error = %v", err)
	}

	loaded, err := LoadArtifacts(ctx, store, DefaultNames)
	if err != nil {
		t.Fatalf("LoadArtifacts() error = %v", err)
	}

	for j := range arts.Scaler.Mean {
		if loaded.Scaler.Mean[j] != arts.Scaler.Mean[j] || loaded.Scaler.Scale[j] != arts.Scaler.Scale[j] {
			t.Errorf("scaler feature %d differs after round trip", j)
		}
	}

	query, _ := arts.Scaler.Transform([]float64{38.2527, -85.7585, 25.4, 1})
	wantD, wantI, err := arts.Index.KNeighbors(ctx, query, 5)
	if err != nil {
		t.Fatal(err)
	}
	gotD, gotI, err := loaded.Index.KNeighbors(ctx, query, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range wantI {
		if gotI[i] != wantI[i] || gotD[i] != wantD[i] || loaded.Index.RowID(gotI[i]) != arts.Index.RowID(wantI[i]) {
			t.Errorf("neighbour %d differs after round trip", i)
		}
	}
}

func TestLoadArtifacts_Missing(t *testing.T) {
	store, err := artifact.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtifacts(context.Background(), store, DefaultNames); !errors.Is(err, artifact.ErrNotFound) {
		t.Errorf("LoadArtifacts() error = %v, want ErrNotFound", err)
	}
}
