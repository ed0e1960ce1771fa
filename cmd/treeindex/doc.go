// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Command treeindex fits the feature scaler and nearest-neighbour index from
// the tree dataset and saves both as new versions in the artifact store.
//
// Rows missing a coordinate or diameter are left out of the index. After a
// save, versions beyond ARTIFACTS_KEEP_VERSIONS are pruned (0 keeps all).
// Rebuild the artifacts whenever the dataset changes; treedemo refuses an
// index that references rows the dataset does not have.
package main
