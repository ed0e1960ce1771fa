// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package demo

import (
	"context"
	"errors"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/arboretum/internal/classifier"
	"github.com/tomtom215/arboretum/internal/models"
)

var errNotLoaded = errors.New("artifacts not loaded")

func comma(n int) string { return humanize.Comma(int64(n)) }

// orNA returns s, or "N/A" when it is empty.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LocationRecommendations prints the nearest trees to the configured location.
func (r *Runner) LocationRecommendations(ctx context.Context) {
	r.println("\n🌲 DEMO 1: Location-Based Tree Recommendations")
	r.println(headerRule)

	d := r.cfg.Demo
	loc := &models.Location{
		City:       d.City,
		State:      d.State,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		DiameterCM: d.DiameterCM,
		Native:     d.Native,
	}

	r.printf("📍 Location: %s, %s\n", loc.City, loc.State)
	r.printf("   Coordinates: (%s, %s)\n", formatCoord(loc.Latitude), formatCoord(loc.Longitude))
	r.printf("   Tree diameter: %s cm\n", formatCoord(loc.DiameterCM))
	r.printf("   Native status: %s\n", models.NativeLabel(loc.Native))

	r.guard(ctx, "Error in recommendation", func() error {
		if r.recommender == nil {
			return errNotLoaded
		}
		recs, err := r.recommender.Recommend(ctx, loc, d.Recommendations)
		if err != nil {
			return err
		}

		r.printf("\n🌳 Top %d Recommended Tree Species:\n", len(recs))
		r.println(thinRule)

		for _, rec := range recs {
			r.printf("%d. %s\n", rec.Rank, rec.Tree.CommonName)
			r.printf("   Scientific: %s\n", orNA(rec.Tree.ScientificName))
			r.printf("   Confidence: %.1f%%\n", rec.Confidence)
			r.printf("   Location: %s, %s\n", orNA(rec.Tree.City), orNA(rec.Tree.State))
			r.println("")
		}
		return nil
	})
}

// SpeciesDistribution prints where the configured species occurs.
func (r *Runner) SpeciesDistribution(ctx context.Context) {
	r.println("\n📍 DEMO 2: Species Distribution Analysis")
	r.println(headerRule)

	species := r.cfg.Demo.Species
	r.printf("🔍 Analyzing distribution for: %s\n", species)

	r.guard(ctx, "Error in distribution analysis", func() error {
		if r.table == nil {
			return errNotLoaded
		}
		dist, err := r.table.Distribution(species, r.cfg.Demo.SpeciesCities)
		if err != nil {
			return err
		}
		if dist.MatchCount == 0 {
			r.printf("   ❌ No data found for %s\n", species)
			return nil
		}

		r.printf("\n📊 Found %s %s trees\n", comma(dist.MatchCount), species)
		r.println(thinRule)

		r.printf("Top %d cities with most trees:\n", r.cfg.Demo.SpeciesCities)
		for i, c := range dist.TopCities {
			r.printf("%2d. %s, %s: %s trees\n", i+1, c.City, c.State, comma(c.Count))
		}

		if dist.Range != nil {
			r.println("\n🗺️  Geographic Range:")
			r.printf("   Latitude: %.2f° to %.2f°\n", dist.Range.MinLat, dist.Range.MaxLat)
			r.printf("   Longitude: %.2f° to %.2f°\n", dist.Range.MinLon, dist.Range.MaxLon)
		}
		return nil
	})
}

// DatasetOverview prints dataset totals and the top species and cities.
func (r *Runner) DatasetOverview(ctx context.Context) {
	r.println("\n📊 DEMO 3: Dataset Overview")
	r.println(headerRule)

	r.guard(ctx, "Error in dataset overview", func() error {
		if r.table == nil {
			return errNotLoaded
		}
		top := r.cfg.Demo.OverviewTop
		ov, err := r.table.Overview(top)
		if err != nil {
			return err
		}

		r.printf("🗃️  Total Records: %s\n", comma(ov.TotalRecords))

		if ov.HasSpecies {
			r.printf("🌿 Unique Species: %s\n", comma(ov.UniqueSpecies))
			r.printf("\n🏆 Top %d Most Common Species:\n", top)
			for i, s := range ov.TopSpecies {
				r.printf("%d. %s: %s trees (%.1f%%)\n", i+1, s.Name, comma(s.Count), s.Percent)
			}
		}

		if ov.HasCities {
			r.printf("\n🏙️  Cities Covered: %s\n", comma(ov.UniqueCities))
			r.printf("\n🌆 Top %d Cities by Tree Count:\n", top)
			for i, c := range ov.TopCities {
				r.printf("%d. %s: %s trees\n", i+1, c.Name, comma(c.Count))
			}
		}

		if ov.HasNative {
			r.println("\n🌱 Native vs Non-native Distribution:")
			for _, n := range ov.NativeCounts {
				r.printf("   %s: %s trees (%.1f%%)\n", n.Name, comma(n.Count), n.Percent)
			}
		}
		return nil
	})
}

// ClassifierInfo prints classifier metadata when the manifest exists, and
// setup hints otherwise. A missing manifest is never opened.
func (r *Runner) ClassifierInfo(ctx context.Context) {
	r.println("\n📷 DEMO 4: CNN Image Classification")
	r.println(headerRule)

	path := r.cfg.Classifier.Path
	if !r.cnnAvailable {
		r.printf("⚠️  CNN model not found. Expected a layer manifest at %s\n", path)
		r.println("\n🎯 To enable image classification:")
		r.println("   1. Train the CNN and export its layer manifest as JSON")
		r.printf("   2. Save the manifest as %s\n", path)
		r.println("   3. Or point CLASSIFIER_PATH at an existing manifest")
		return
	}

	r.guard(ctx, "Error loading CNN model", func() error {
		info, err := classifier.Inspect(path)
		if err != nil {
			return err
		}

		r.println("🧠 CNN Model Information:")
		r.printf("   Model type: %s CNN\n", info.ModelType)
		r.printf("   Input shape: %s\n", classifier.FormatShape(info.InputShape))
		r.printf("   Output classes: %d\n", info.OutputClasses)
		r.printf("   Total parameters: %s\n", humanize.Comma(info.TotalParams))
		r.printf("   Model file size: %.1f MB\n", info.FileSizeMB)

		r.println("\n📸 Image Classification Features:")
		r.printf("   • Accepts %d×%d RGB images\n", info.InputShape[0], info.InputShape[1])
		r.printf("   • Predicts from %d tree species\n", info.OutputClasses)
		r.println("   • Confidence scoring included")
		r.println("   • Real-time inference capability")
		return nil
	})
}
