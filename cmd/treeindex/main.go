// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/arboretum/internal/artifact"
	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromConfig(cfg.Logging))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewRunContext(ctx, "treeindex")

	if err := run(ctx, cfg); err != nil {
		stop()
		logging.Ctx(ctx).Fatal().Err(err).Msg("Failed to build recommender artifacts")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	loader := dataset.NewLoader(cfg.Dataset)
	table, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	logging.Ctx(ctx).Info().
		Str("source", loader.Source()).
		Int("rows", table.Len()).
		Msg("Dataset loaded")

	arts, err := recommend.Build(ctx, table)
	if err != nil {
		return err
	}
	if arts.Skipped > 0 {
		logging.Ctx(ctx).Warn().
			Int("skipped", arts.Skipped).
			Msg("Rows with missing coordinates or diameter left out of the index")
	}

	store, err := artifact.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		return err
	}

	names := recommend.Names{Scaler: cfg.Artifacts.ScalerName, Index: cfg.Artifacts.IndexName}
	if err := recommend.SaveArtifacts(ctx, store, names, arts, cfg.Artifacts.KeepVersions); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("dir", store.Dir()).
		Int("indexed", arts.Index.Len()).
		Int("scaler_version", arts.ScalerMeta.Version).
		Int("index_version", arts.IndexMeta.Version).
		Dur("fit_duration", arts.FitDuration).
		Msg("Recommender artifacts saved")

	return nil
}
