// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package config provides centralized configuration management for the arboretum
commands (docgen, treedemo, treeindex, osmtrees).

None of the commands take flags. Everything is configured through three
layers loaded with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/arboretum/config.yaml
 3. Mapped environment variables (DATASET_PATH, ARTIFACTS_DIR, LOG_LEVEL, ...)

Unmapped environment variables are ignored.

# Configuration Structure

  - DatasetConfig: dataset file path or Postgres source
  - ArtifactsConfig: artifact store directory and artifact names
  - ClassifierConfig: optional classifier manifest path
  - DocsConfig: figure output directory, seed and DPI
  - DemoConfig: the query location, species and list sizes used by treedemo
  - OSMConfig: Overpass endpoint, bounding box and output file for osmtrees
  - LoggingConfig: zerolog level, format and caller

# Example config.yaml

	dataset:
	  path: data/trees.parquet
	artifacts:
	  dir: artifacts
	demo:
	  species: Sugar Maple
	logging:
	  level: debug

# Validation

Load returns an error when a section is unusable, for example a latitude
outside -90..90, an empty dataset path without POSTGRES_URL, or an invalid
Overpass bounding box. Struct-level checks use internal/validation.
*/
package config
