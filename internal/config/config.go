// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package config

import (
	"time"
)

// Config holds all configuration shared by the arboretum commands.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via mapped environment variables
//
// Each command reads only the sections it needs; unused sections keep their
// defaults and still pass validation.
type Config struct {
	Dataset    DatasetConfig    `koanf:"dataset"`
	Artifacts  ArtifactsConfig  `koanf:"artifacts"`
	Classifier ClassifierConfig `koanf:"classifier"`
	Docs       DocsConfig       `koanf:"docs"`
	Demo       DemoConfig       `koanf:"demo"`
	OSM        OSMConfig        `koanf:"osm"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// DatasetConfig selects where the tabular tree dataset is read from.
//
// Environment Variables:
//   - DATASET_PATH: CSV, Parquet or JSON file (default: tree_data.csv)
//   - POSTGRES_URL: when set, the dataset is read from Postgres instead
//   - POSTGRES_TABLE: table holding the trees (default: trees)
type DatasetConfig struct {
	Path          string `koanf:"path"`
	PostgresURL   string `koanf:"postgres_url"`
	PostgresTable string `koanf:"postgres_table"`
}

// ArtifactsConfig locates the fitted scaler and neighbour index.
//
// Environment Variables:
//   - ARTIFACTS_DIR: artifact store directory (default: artifacts)
//   - ARTIFACTS_SCALER_NAME: store name of the scaler (default: scaler)
//   - ARTIFACTS_INDEX_NAME: store name of the index (default: nn_model)
//   - ARTIFACTS_KEEP_VERSIONS: versions kept by treeindex after a save (default: 3)
type ArtifactsConfig struct {
	Dir          string `koanf:"dir"`
	ScalerName   string `koanf:"scaler_name"`
	IndexName    string `koanf:"index_name"`
	KeepVersions int    `koanf:"keep_versions"`
}

// ClassifierConfig locates the optional image classifier manifest.
//
// Environment Variables:
//   - CLASSIFIER_PATH: layer manifest path (default: basic_cnn_tree_species.json)
type ClassifierConfig struct {
	Path string `koanf:"path"`
}

// DocsConfig controls the documentation figure generator.
//
// Environment Variables:
//   - DOCS_OUTPUT_DIR: output directory (default: docs)
//   - DOCS_SEED: seed for the synthetic chart data (default: 42)
//   - DOCS_DPI: raster resolution (default: 300)
type DocsConfig struct {
	OutputDir string `koanf:"output_dir"`
	Seed      uint64 `koanf:"seed"`
	DPI       int    `koanf:"dpi"`
}

// DemoConfig holds the fixed inputs of the console demonstrations.
type DemoConfig struct {
	City       string  `koanf:"city"`
	State      string  `koanf:"state"`
	Latitude   float64 `koanf:"latitude"`
	Longitude  float64 `koanf:"longitude"`
	DiameterCM float64 `koanf:"diameter_cm"`
	Native     bool    `koanf:"native"`

	// Recommendations is the number of neighbours shown in demo 1.
	Recommendations int `koanf:"recommendations"`

	// Species is the common name searched in demo 2.
	Species       string `koanf:"species"`
	SpeciesCities int    `koanf:"species_cities"`

	// OverviewTop is the length of the top species and top city lists in demo 3.
	OverviewTop int `koanf:"overview_top"`
}

// OSMConfig controls the OpenStreetMap tree fetcher.
//
// Environment Variables:
//   - OSM_ENDPOINT: Overpass interpreter URL
//   - OSM_BBOX: "south,west,north,east"
//   - OSM_CITY / OSM_STATE: values used when a node has no address tags
//   - OSM_TIMEOUT: HTTP timeout (default: 60s)
//   - OSM_OUTPUT: CSV written by osmtrees (default: tree_data.csv)
type OSMConfig struct {
	Endpoint string        `koanf:"endpoint"`
	BBox     string        `koanf:"bbox"`
	City     string        `koanf:"city"`
	State    string        `koanf:"state"`
	Timeout  time.Duration `koanf:"timeout"`
	Output   string        `koanf:"output"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Console is the default because every command is run interactively.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
