// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRunID()
	id2 := GenerateRunID()

	if len(id1) != 8 {
		t.Errorf("expected 8-character run ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique run IDs")
	}
}

func TestRunIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if id := RunIDFromContext(ctx); id != "" {
		t.Errorf("expected empty run ID, got %s", id)
	}

	ctx = ContextWithRunID(ctx, "abc12345")
	if id := RunIDFromContext(ctx); id != "abc12345" {
		t.Errorf("expected 'abc12345', got '%s'", id)
	}
}

func TestNewRunContext(t *testing.T) {
	t.Parallel()

	ctx := NewRunContext(context.Background(), "docgen")

	if RunIDFromContext(ctx) == "" {
		t.Error("expected run ID to be generated")
	}
	if got := CommandFromContext(ctx); got != "docgen" {
		t.Errorf("CommandFromContext() = %q, want %q", got, "docgen")
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRunID(context.Background(), "run-0001")
	Ctx(ctx).Info().Msg("with context")

	output := buf.String()
	if !strings.Contains(output, `"run_id":"run-0001"`) {
		t.Errorf("expected run_id in output: %s", output)
	}
	if strings.Contains(output, `"command"`) {
		t.Errorf("expected no command field without one in context: %s", output)
	}
}
