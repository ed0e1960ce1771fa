// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/arboretum/internal/validation"
)

// Validate checks that every section holds usable values.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateArtifacts(); err != nil {
		return err
	}

	if err := c.validateDocs(); err != nil {
		return err
	}

	if err := c.validateDemo(); err != nil {
		return err
	}

	if err := c.validateOSM(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDataset requires a file path unless Postgres is configured.
func (c *Config) validateDataset() error {
	if c.Dataset.PostgresURL == "" {
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("DATASET_PATH is required when POSTGRES_URL is not set")
		}
		return nil
	}

	u, err := url.Parse(c.Dataset.PostgresURL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return fmt.Errorf("POSTGRES_URL must be a postgres:// or postgresql:// URL")
	}
	if !validIdentifier(c.Dataset.PostgresTable) {
		return fmt.Errorf("POSTGRES_TABLE must be a plain or schema-qualified identifier, got %q", c.Dataset.PostgresTable)
	}
	return nil
}

// validIdentifier accepts "name" or "schema.name" built from letters, digits
// and underscores. The table name is interpolated into SQL.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for i, r := range part {
			switch {
			case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return strings.Count(s, ".") <= 1
}

func (c *Config) validateArtifacts() error {
	if c.Artifacts.Dir == "" {
		return fmt.Errorf("ARTIFACTS_DIR is required")
	}
	if c.Artifacts.ScalerName == "" || c.Artifacts.IndexName == "" {
		return fmt.Errorf("artifact names must not be empty")
	}
	if c.Artifacts.ScalerName == c.Artifacts.IndexName {
		return fmt.Errorf("ARTIFACTS_SCALER_NAME and ARTIFACTS_INDEX_NAME must differ")
	}
	if c.Artifacts.KeepVersions < 0 {
		return fmt.Errorf("ARTIFACTS_KEEP_VERSIONS must be non-negative, got %d", c.Artifacts.KeepVersions)
	}
	return nil
}

func (c *Config) validateDocs() error {
	if c.Docs.OutputDir == "" {
		return fmt.Errorf("DOCS_OUTPUT_DIR is required")
	}
	if c.Docs.DPI < 72 || c.Docs.DPI > 1200 {
		return fmt.Errorf("DOCS_DPI must be between 72 and 1200, got %d", c.Docs.DPI)
	}
	return nil
}

// demoQuery mirrors the demo query fields for struct validation.
type demoQuery struct {
	Latitude        float64 `validate:"latitude"`
	Longitude       float64 `validate:"longitude"`
	DiameterCM      float64 `validate:"gte=0,lte=1000"`
	Recommendations int     `validate:"gte=1,lte=100"`
	Species         string  `validate:"required"`
	SpeciesCities   int     `validate:"gte=1,lte=100"`
	OverviewTop     int     `validate:"gte=1,lte=100"`
}

func (c *Config) validateDemo() error {
	q := demoQuery{
		Latitude:        c.Demo.Latitude,
		Longitude:       c.Demo.Longitude,
		DiameterCM:      c.Demo.DiameterCM,
		Recommendations: c.Demo.Recommendations,
		Species:         strings.TrimSpace(c.Demo.Species),
		SpeciesCities:   c.Demo.SpeciesCities,
		OverviewTop:     c.Demo.OverviewTop,
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		return fmt.Errorf("invalid demo settings: %w", verr)
	}
	return nil
}

type osmQuery struct {
	Endpoint string `validate:"required,url"`
	BBox     string `validate:"required,bbox"`
}

func (c *Config) validateOSM() error {
	q := osmQuery{Endpoint: c.OSM.Endpoint, BBox: c.OSM.BBox}
	if verr := validation.ValidateStruct(&q); verr != nil {
		return fmt.Errorf("invalid osm settings: %w", verr)
	}
	if c.OSM.Timeout <= 0 {
		return fmt.Errorf("OSM_TIMEOUT must be positive, got %v", c.OSM.Timeout)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
