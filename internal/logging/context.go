// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// runIDKey is the context key for the per-invocation run ID.
	runIDKey contextKey = "run_id"

	// commandKey is the context key for the running command name.
	commandKey contextKey = "command"
)

// GenerateRunID creates a short unique ID for one command invocation.
// Returns the first 8 characters of a UUID for readability.
func GenerateRunID() string {
	return uuid.New().String()[:8]
}

// ContextWithRunID returns a new context carrying the given run ID.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext returns the run ID, or "" if none is set.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// NewRunContext returns a context tagged with a fresh run ID and the command name.
// Every command calls this once in main.
//
//	ctx := logging.NewRunContext(context.Background(), "treedemo")
func NewRunContext(ctx context.Context, command string) context.Context {
	ctx = ContextWithRunID(ctx, GenerateRunID())
	return context.WithValue(ctx, commandKey, command)
}

// CommandFromContext returns the command name, or "" if none is set.
func CommandFromContext(ctx context.Context) string {
	if c, ok := ctx.Value(commandKey).(string); ok {
		return c
	}
	return ""
}

// Ctx returns the global logger with run_id and command fields from ctx attached.
//
//	logging.Ctx(ctx).Info().Int("rows", n).Msg("Dataset loaded")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := Logger().With()

	if id := RunIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("run_id", id)
	}
	if cmd := CommandFromContext(ctx); cmd != "" {
		logCtx = logCtx.Str("command", cmd)
	}

	l := logCtx.Logger()
	return &l
}
