// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package charts renders the documentation figures with gonum/plot.

Three PNG files are produced by Generate:

  - cnn_architecture.png: one box per classifier block, joined by arrows
  - performance_metrics.png: dataset sizes (log scale) and response times
  - data_distribution.png: geographic scatter, species frequencies,
    diameter histogram and the native split as a pie

The distribution figure is illustrative. Its numbers come from
SyntheticData, a seeded PCG source, so regenerating with the same seed
yields the same image data.

Figures are laid out with plot.Align and rasterized with vgimg at the
configured DPI. Pie is a small plot.Plotter as gonum/plot has no pie chart.
*/
package charts
