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
	"github.com/tomtom215/arboretum/internal/demo"
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
	ctx = logging.NewRunContext(ctx, "treedemo")

	logging.Ctx(ctx).Debug().
		Str("dataset", cfg.Dataset.Path).
		Str("artifacts", cfg.Artifacts.Dir).
		Str("classifier", cfg.Classifier.Path).
		Msg("Starting demo")

	demo.New(cfg, os.Stdout).Run(ctx)
}
