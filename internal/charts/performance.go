// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Reported performance figures for the two models.
var (
	performanceModels = []string{"KNN\nRecommender", "CNN\nClassifier"}
	datasetSizes      = []float64{1380000, 1454}
	responseSeconds   = []float64{0.5, 2.3}
)

const barHalfWidth = 0.3

// PerformanceMetrics returns the dataset size panel (log scale) and the
// response time panel, left to right.
func PerformanceMetrics() ([]*plot.Plot, error) {
	sizes := newPlot("Dataset Sizes by Model")
	sizes.Y.Label.Text = "Dataset Size (log scale)"
	sizes.Y.Scale = plot.LogScale{}
	sizes.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	sizeLabels := make([]string, len(datasetSizes))
	for i, v := range datasetSizes {
		sizeLabels[i] = humanize.Comma(int64(v))
	}
	if err := valueBars(sizes, performanceModels, datasetSizes, 1, []color.NRGBA{colorTeal, colorCoral}, sizeLabels); err != nil {
		return nil, fmt.Errorf("dataset size bars: %w", err)
	}
	sizes.Y.Min, sizes.Y.Max = 1, maxOf(datasetSizes)*5

	times := newPlot("Model Response Times")
	times.Y.Label.Text = "Response Time (seconds)"

	timeLabels := make([]string, len(responseSeconds))
	for i, v := range responseSeconds {
		timeLabels[i] = fmt.Sprintf("%gs", v)
	}
	if err := valueBars(times, performanceModels, responseSeconds, 0, []color.NRGBA{colorSky, colorSage}, timeLabels); err != nil {
		return nil, fmt.Errorf("response time bars: %w", err)
	}
	times.Y.Min, times.Y.Max = 0, maxOf(responseSeconds)*1.2

	return []*plot.Plot{sizes, times}, nil
}

// valueBars draws one vertical bar per value rising from base, labels each
// bar top, and names the bars on the X axis. Bars are polygons so the
// baseline can sit above zero on a log axis.
func valueBars(p *plot.Plot, names []string, values []float64, base float64, colors []color.NRGBA, labels []string) error {
	addGrid(p)

	tops := make(plotter.XYs, len(values))
	for i, v := range values {
		x := float64(i)
		bar, err := rect(x-barHalfWidth, base, x+barHalfWidth, v, withAlpha(colors[i%len(colors)], 0.8), false)
		if err != nil {
			return err
		}
		p.Add(bar)
		tops[i] = plotter.XY{X: x, Y: v}
	}

	sty := labelStyle(vg.Points(11))
	sty.YAlign = text.YBottom
	valueLabels, err := centredLabels(tops, labels, sty)
	if err != nil {
		return err
	}
	valueLabels.Offset = vg.Point{Y: vg.Points(3)}
	p.Add(valueLabels)

	p.NominalX(names...)
	p.X.Min, p.X.Max = -0.6, float64(len(values))-0.4
	return nil
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
