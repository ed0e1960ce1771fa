// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Package logging provides centralized zerolog-based structured logging for Arboretum.
//
// All commands log to stderr so that the human-readable demo output on stdout
// stays clean. Console format is the default because the commands are run
// interactively; set LOG_FORMAT=json for machine-parseable output.
//
// # Quick Start
//
//	logging.Init(logging.FromConfig(cfg.Logging))
//
//	ctx := logging.NewRunContext(context.Background(), "treedemo")
//	logging.Ctx(ctx).Info().Str("path", cfg.Dataset.Path).Msg("Loading dataset")
//
// # Configuration
//
// Environment Variables (read through internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: console)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Run Correlation
//
// NewRunContext tags a context with an 8-character run ID and the command
// name. Ctx(ctx) attaches both as fields, so the log lines of one docgen or
// treedemo invocation can be grouped.
package logging
