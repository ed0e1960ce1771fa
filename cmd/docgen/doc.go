// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Command docgen writes the documentation figures.
//
// It renders cnn_architecture.png, performance_metrics.png and
// data_distribution.png into DOCS_OUTPUT_DIR (default: docs). The
// distribution figure uses synthetic data seeded by DOCS_SEED, so repeated
// runs produce the same figures. Any rendering or write error aborts the run
// with a non-zero exit status.
//
//	DOCS_DPI=150 ./docgen
package main
