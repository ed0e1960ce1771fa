// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Package artifact persists fitted model state between commands.
//
// treeindex fits the feature scaler and neighbour index and saves them here;
// treedemo opens the same directory read-only and loads the latest versions.
//
// # Storage Format
//
// Each artifact version is one file named {name}_v{version}.gob.gz holding a
// gob-encoded envelope: Metadata plus the gzip-compressed gob payload.
// The metadata records the SHA-256 of the uncompressed payload, and Load
// fails with ErrChecksumMismatch when it no longer matches.
//
// Saves write a temp file in the same directory and rename it into place.
//
// # Thread Safety
//
// A Store is safe for concurrent use within one process.
package artifact
