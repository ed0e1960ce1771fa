// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Command treedemo prints the console demonstrations: location-based
// recommendations, species distribution, dataset overview and classifier
// information.
//
// It reads the dataset (DATASET_PATH or POSTGRES_URL), the scaler and
// neighbour index built by treeindex (ARTIFACTS_DIR) and, when present, the
// classifier manifest (CLASSIFIER_PATH). Demonstration failures are printed
// and never change the exit status; only an invalid configuration does.
package main
