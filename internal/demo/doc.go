// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package demo runs the four console demonstrations of treedemo.

Runner.Run loads the dataset and the recommender artifacts, then prints:

 1. Location-based recommendations for the configured query location
 2. The distribution of the configured species across cities
 3. A dataset overview: totals, top species, top cities, native split
 4. Classifier metadata, or setup hints when no manifest exists

Every demonstration is guarded on its own. An error or a panic inside one
prints a "❌" line and the next demonstration still runs. When the
required artifacts cannot be loaded, Run prints remediation steps and
returns without running any demonstration. Console text goes to the
writer given to New; diagnostics go to the zerolog logger.
*/
package demo
