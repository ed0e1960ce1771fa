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

	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/dataset"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/osm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromConfig(cfg.Logging))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewRunContext(ctx, "osmtrees")

	logging.Ctx(ctx).Info().
		Str("endpoint", cfg.OSM.Endpoint).
		Str("bbox", cfg.OSM.BBox).
		Msg("Fetching trees from OpenStreetMap")

	trees, err := osm.NewFetcher(cfg.OSM).Fetch(ctx, cfg.OSM.BBox)
	if err != nil {
		stop()
		logging.Ctx(ctx).Fatal().Err(err).Msg("Failed to fetch trees")
	}
	if len(trees) == 0 {
		logging.Ctx(ctx).Warn().Msg("No named trees in the bounding box; writing an empty dataset")
	}

	if err := dataset.WriteCSVFile(cfg.OSM.Output, trees); err != nil {
		stop()
		logging.Ctx(ctx).Fatal().Err(err).Msg("Failed to write dataset")
	}

	logging.Ctx(ctx).Info().
		Str("output", cfg.OSM.Output).
		Int("trees", len(trees)).
		Msg("Dataset written")
}
