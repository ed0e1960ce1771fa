// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Package osm builds a tree dataset from OpenStreetMap.
//
// Fetcher sends node["natural"="tree"] queries for a bounding box to an
// Overpass API endpoint and maps each node's tags to a dataset row: species
// names, address city and state (or configured defaults), trunk diameter
// from diameter or circumference, and the native flag. Rows are returned in
// node ID order so repeated fetches of an unchanged area are identical.
package osm
