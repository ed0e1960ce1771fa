// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Command osmtrees downloads the natural=tree nodes inside OSM_BBOX from an
// Overpass API endpoint and writes them as a CSV dataset (OSM_OUTPUT) in the
// schema read by treeindex and treedemo.
//
//	OSM_BBOX=38.20,-85.80,38.30,-85.70 OSM_OUTPUT=louisville.csv ./osmtrees
package main
