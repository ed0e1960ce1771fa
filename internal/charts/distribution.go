// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const diameterBins = 30

// DataDistribution returns the 2x2 distribution panels: geographic scatter
// and species frequency on the top row, diameter histogram and native split
// below.
func DataDistribution(d *Synthetic) ([][]*plot.Plot, error) {
	if d == nil {
		return nil, errors.New("charts: no synthetic data")
	}

	geo, err := geographicScatter(d.Longitudes, d.Latitudes)
	if err != nil {
		return nil, fmt.Errorf("geographic scatter: %w", err)
	}
	species, err := speciesFrequency(d.Species, d.Frequencies)
	if err != nil {
		return nil, fmt.Errorf("species frequency: %w", err)
	}
	diameters, err := diameterHistogram(d.Diameters)
	if err != nil {
		return nil, fmt.Errorf("diameter histogram: %w", err)
	}
	native, err := nativePie(d.NativeLabels, d.NativeCounts)
	if err != nil {
		return nil, fmt.Errorf("native split: %w", err)
	}

	return [][]*plot.Plot{
		{geo, species},
		{diameters, native},
	}, nil
}

func geographicScatter(lons, lats []float64) (*plot.Plot, error) {
	if len(lons) != len(lats) {
		return nil, fmt.Errorf("%d longitudes for %d latitudes", len(lons), len(lats))
	}

	p := newPlot("Geographic Distribution of Trees")
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	addGrid(p)

	xys := make(plotter.XYs, len(lons))
	for i := range lons {
		xys[i] = plotter.XY{X: lons[i], Y: lats[i]}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = withAlpha(colorTeal, 0.6)
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	return p, nil
}

func speciesFrequency(names []string, counts []int) (*plot.Plot, error) {
	if len(names) != len(counts) || len(names) == 0 {
		return nil, fmt.Errorf("%d species names for %d counts", len(names), len(counts))
	}

	p := newPlot("Top 10 Tree Species by Frequency")
	p.X.Label.Text = "Number of Trees"
	addGrid(p)

	colors := palette.Rainbow(len(names), 0, 0.9, 0.65, 0.9, 1).Colors()
	for i, n := range counts {
		y := float64(i)
		bar, err := rect(0, y-0.4, float64(n), y+0.4, colors[i], false)
		if err != nil {
			return nil, err
		}
		p.Add(bar)
	}

	p.NominalY(names...)
	p.Y.Min, p.Y.Max = -0.6, float64(len(names))-0.4
	p.X.Min = 0

	return p, nil
}

func diameterHistogram(diameters []float64) (*plot.Plot, error) {
	p := newPlot("Tree Diameter Distribution")
	p.X.Label.Text = "Diameter (cm)"
	p.Y.Label.Text = "Frequency"
	addGrid(p)

	h, err := plotter.NewHist(plotter.Values(diameters), diameterBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = withAlpha(colorApricot, 0.7)
	h.LineStyle.Color = color.Black
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)

	return p, nil
}

func nativePie(labels []string, counts []float64) (*plot.Plot, error) {
	pie, err := NewPie(counts, labels, []color.Color{colorSage, colorPlum})
	if err != nil {
		return nil, err
	}

	p := newPlot("Native vs Non-native Trees")
	p.HideAxes()
	p.Add(pie)

	return p, nil
}
