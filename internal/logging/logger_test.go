// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/arboretum/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format 'console', got '%s'", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := FromConfig(config.LoggingConfig{Level: "debug", Format: "json", Caller: true})

	if cfg.Level != "debug" || cfg.Format != "json" || !cfg.Caller {
		t.Errorf("FromConfig() = %+v, want debug/json/caller", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps to stay enabled")
	}
	if cfg.Output == nil {
		t.Error("expected output to default to stderr")
	}
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})

	l.Debug().Int("rows", 8).Msg("dataset loaded")

	output := buf.String()
	for _, want := range []string{`"level":"debug"`, `"rows":8`, "dataset loaded"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
	if strings.Contains(output, `"time"`) {
		t.Errorf("expected no timestamp without Timestamp: %s", output)
	}
}

func TestNewConsoleWithoutTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "console", Output: &buf})

	l.Info().Msg("console test")

	output := buf.String()
	if strings.Contains(output, `"level"`) {
		t.Errorf("expected console format (not JSON): %s", output)
	}
	if !strings.Contains(output, "console test") {
		t.Errorf("expected message in output: %s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("expected no colour codes for a buffer: %q", output)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: "warning", Format: "json", Output: &buf})

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info line should be filtered at warn: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn line missing: %s", output)
	}
}

func TestInitReplacesGlobal(t *testing.T) {
	var buf bytes.Buffer

	original := GetLevel()
	defer SetLevel(original)

	Init(Config{Level: "info", Format: "json", Timestamp: true, Output: &buf})
	defer Init(DefaultConfig())

	if GetLevel() != original {
		t.Errorf("Init changed the global level to %v, want %v", GetLevel(), original)
	}

	l := Logger()
	l.Debug().Msg("hidden")
	l.Info().Msg("store opened")

	output := buf.String()
	if !strings.Contains(output, "store opened") || !strings.Contains(output, `"time"`) {
		t.Errorf("unexpected output: %s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("debug line should be filtered at info: %s", output)
	}
}

func TestNewKeepsLevelAfterInit(t *testing.T) {
	Init(Config{Level: "info", Format: "json", Output: &bytes.Buffer{}})
	defer Init(DefaultConfig())

	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})
	l.Debug().Msg("scaler fitted")

	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Errorf("expected debug line after Init at info, got: %s", buf.String())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer

	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	l := Logger()
	l.Error().Msg("index stale")

	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("expected error line from test logger: %s", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
