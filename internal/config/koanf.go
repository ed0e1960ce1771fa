// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/arboretum/config.yaml",
	"/etc/arboretum/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultOverpassEndpoint is the public Overpass API interpreter.
const DefaultOverpassEndpoint = "https://overpass-api.de/api/interpreter"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:          "tree_data.csv",
			PostgresURL:   "",
			PostgresTable: "trees",
		},
		Artifacts: ArtifactsConfig{
			Dir:          "artifacts",
			ScalerName:   "scaler",
			IndexName:    "nn_model",
			KeepVersions: 3,
		},
		Classifier: ClassifierConfig{
			Path: "basic_cnn_tree_species.json",
		},
		Docs: DocsConfig{
			OutputDir: "docs",
			Seed:      42,
			DPI:       300,
		},
		// Louisville, Kentucky
		Demo: DemoConfig{
			City:            "Louisville",
			State:           "Kentucky",
			Latitude:        38.2527,
			Longitude:       -85.7585,
			DiameterCM:      25.4,
			Native:          true,
			Recommendations: 5,
			Species:         "Red Oak",
			SpeciesCities:   10,
			OverviewTop:     5,
		},
		OSM: OSMConfig{
			Endpoint: DefaultOverpassEndpoint,
			BBox:     "38.20,-85.80,38.30,-85.70",
			City:     "Louisville",
			State:    "Kentucky",
			Timeout:  60 * time.Second,
			Output:   "tree_data.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
//
// Loading order (later sources override earlier):
//  1. Built-in defaults
//  2. Config file (if found)
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// DATASET_PATH -> dataset.path
	// DEMO_SPECIES -> demo.species
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default locations.
// Returns empty string if no config file is found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Dataset mappings
	"dataset_path":   "dataset.path",
	"postgres_url":   "dataset.postgres_url",
	"postgres_table": "dataset.postgres_table",

	// Artifact store mappings
	"artifacts_dir":           "artifacts.dir",
	"artifacts_scaler_name":   "artifacts.scaler_name",
	"artifacts_index_name":    "artifacts.index_name",
	"artifacts_keep_versions": "artifacts.keep_versions",

	// Classifier mappings
	"classifier_path": "classifier.path",

	// Documentation figure mappings
	"docs_output_dir": "docs.output_dir",
	"docs_seed":       "docs.seed",
	"docs_dpi":        "docs.dpi",

	// Demo query mappings
	"demo_city":            "demo.city",
	"demo_state":           "demo.state",
	"demo_latitude":        "demo.latitude",
	"demo_longitude":       "demo.longitude",
	"demo_diameter_cm":     "demo.diameter_cm",
	"demo_native":          "demo.native",
	"demo_recommendations": "demo.recommendations",
	"demo_species":         "demo.species",
	"demo_species_cities":  "demo.species_cities",
	"demo_overview_top":    "demo.overview_top",

	// OpenStreetMap mappings
	"osm_endpoint": "osm.endpoint",
	"osm_bbox":     "osm.bbox",
	"osm_city":     "osm.city",
	"osm_state":    "osm.state",
	"osm_timeout":  "osm.timeout",
	"osm_output":   "osm.output",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
