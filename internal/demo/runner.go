// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package demo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/arboretum/internal/artifact"
	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/recommend"
)

var (
	wideRule   = strings.Repeat("=", 60)
	headerRule = strings.Repeat("=", 50)
	thinRule   = strings.Repeat("-", 40)
)

// Runner prints the console demonstrations to a writer.
// Write errors on the output are ignored.
type Runner struct {
	cfg    *config.Config
	loader dataset.Loader
	out    io.Writer

	table        *dataset.Table
	recommender  *recommend.Recommender
	cnnAvailable bool
}

// New returns a runner reading the dataset configured in cfg.
func New(cfg *config.Config, out io.Writer) *Runner {
	return NewWithLoader(cfg, dataset.NewLoader(cfg.Dataset), out)
}

// NewWithLoader returns a runner reading the dataset through loader.
func NewWithLoader(cfg *config.Config, loader dataset.Loader, out io.Writer) *Runner {
	return &Runner{cfg: cfg, loader: loader, out: out}
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) println(s string) {
	fmt.Fprintln(r.out, s)
}

// Run prints the banner, loads the artifacts and runs every demonstration.
// A failed load prints remediation steps and returns; a failing
// demonstration prints its error and the run continues. Run never fails.
func (r *Runner) Run(ctx context.Context) {
	r.println("🌳 Tree Species Classification Demo")
	r.println(wideRule)
	r.println("Demonstrating AI-powered tree identification and recommendations")
	r.println(wideRule)

	if !r.LoadArtifacts(ctx) {
		r.println("❌ Failed to load required models. Please ensure:")
		r.printf("   • %s exists\n", r.loader.Source())
		r.printf("   • %s artifact exists in %s\n", r.cfg.Artifacts.ScalerName, r.cfg.Artifacts.Dir)
		r.printf("   • %s artifact exists in %s\n", r.cfg.Artifacts.IndexName, r.cfg.Artifacts.Dir)
		r.println("\n💡 Run treeindex to generate these files")
		return
	}

	r.LocationRecommendations(ctx)
	r.SpeciesDistribution(ctx)
	r.DatasetOverview(ctx)
	r.ClassifierInfo(ctx)

	r.println("\n" + wideRule)
	r.println("🎉 Demo completed successfully!")
	r.println("\n🚀 To regenerate the documentation figures:")
	r.println("   docgen")
	r.println("\n📚 For more information, see README.md")
	r.println(wideRule)
}

// LoadArtifacts loads the dataset and the recommender artifacts and checks
// whether the classifier manifest exists. The manifest is not opened here.
// On failure the error is printed, the runner is left empty and false is
// returned.
func (r *Runner) LoadArtifacts(ctx context.Context) bool {
	r.println("🔄 Loading models and data...")

	if err := r.load(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Artifact load failed")
		r.printf("   ❌ Error loading models: %v\n", err)
		r.table, r.recommender, r.cnnAvailable = nil, nil, false
		return false
	}
	return true
}

func (r *Runner) load(ctx context.Context) error {
	table, err := r.loader.Load(ctx)
	if err != nil {
		return err
	}
	r.table = table
	r.printf("   ✅ Tree data loaded: %s records\n", humanize.Comma(int64(table.Len())))

	store, err := artifact.Open(r.cfg.Artifacts.Dir)
	if err != nil {
		return err
	}
	names := recommend.Names{Scaler: r.cfg.Artifacts.ScalerName, Index: r.cfg.Artifacts.IndexName}
	arts, err := recommend.LoadArtifacts(ctx, store, names)
	if err != nil {
		return err
	}
	rec, err := recommend.NewRecommender(arts.Scaler, arts.Index, table)
	if err != nil {
		return err
	}
	r.recommender = rec
	r.println("   ✅ KNN recommender model loaded")

	_, statErr := os.Stat(r.cfg.Classifier.Path)
	r.cnnAvailable = statErr == nil
	if r.cnnAvailable {
		r.println("   ✅ CNN model available")
	} else {
		r.println("   ⚠️  CNN model not found (optional for this demo)")
	}

	logging.Ctx(ctx).Debug().
		Str("dataset", r.loader.Source()).
		Int("rows", table.Len()).
		Int("indexed", arts.Index.Len()).
		Bool("classifier", r.cnnAvailable).
		Msg("Artifacts loaded")

	return nil
}

// guard runs one demonstration. A returned error or a panic is printed as
// "❌ <what>: <cause>" and swallowed.
func (r *Runner) guard(ctx context.Context, what string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Ctx(ctx).Error().Interface("panic", rec).Str("section", what).Msg("Demo section panicked")
			r.printf("   ❌ %s: %v\n", what, rec)
		}
	}()

	if err := fn(); err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("section", what).Msg("Demo section failed")
		r.printf("   ❌ %s: %v\n", what, err)
	}
}
