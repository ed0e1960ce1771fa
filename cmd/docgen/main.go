// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tomtom215/arboretum/internal/charts"
	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromConfig(cfg.Logging))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.NewRunContext(ctx, "docgen")

	logging.Ctx(ctx).Info().
		Str("output_dir", cfg.Docs.OutputDir).
		Uint64("seed", cfg.Docs.Seed).
		Int("dpi", cfg.Docs.DPI).
		Msg("Generating documentation figures")

	start := time.Now()
	paths, err := charts.Generate(ctx, cfg.Docs)
	if err != nil {
		stop()
		logging.Ctx(ctx).Fatal().Err(err).Msg("Failed to generate figures")
	}

	logging.Ctx(ctx).Info().
		Int("figures", len(paths)).
		Dur("duration", time.Since(start)).
		Msg("Figures generated")

	fmt.Println("✅ Demo visualizations created successfully!")
	fmt.Printf("📁 Files saved to %s/ directory:\n", filepath.Clean(cfg.Docs.OutputDir))
	for _, p := range paths {
		fmt.Printf("   - %s\n", filepath.Base(p))
	}
}
