// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package models defines the data structures shared by the arboretum packages.

Key Components:

  - Tree: one row of the tabular dataset, tagged with its column names
  - Location: a recommendation query, validated with internal/validation
  - Recommendation: a ranked neighbour with its distance and confidence
  - Distribution and Overview: dataset analysis results printed by the demo
  - ClassifierInfo: metadata read from the classifier manifest

Missing numeric values are represented as NaN. A missing native flag reads
as false (Non-native).
*/
package models
