// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie is a plot.Plotter drawing wedges proportional to Values. The pie is
// sized from the canvas rather than the axes so it stays circular in any
// cell; hide the axes of a plot holding one.
type Pie struct {
	Values []float64
	Labels []string
	Colors []color.Color

	// StartAngle is where the first wedge begins, in degrees counter-clockwise
	// from three o'clock. Wedges follow counter-clockwise.
	StartAngle float64

	LineStyle  draw.LineStyle
	LabelStyle text.Style
	// PercentFormat renders each wedge's share in its interior.
	PercentFormat string
}

// NewPie returns a pie over non-negative values with a positive sum.
func NewPie(values []float64, labels []string, colors []color.Color) (*Pie, error) {
	if len(values) == 0 {
		return nil, errors.New("charts: pie needs at least one value")
	}
	if len(labels) != len(values) || len(colors) != len(values) {
		return nil, fmt.Errorf("charts: pie has %d values, %d labels and %d colours", len(values), len(labels), len(colors))
	}

	var total float64
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("charts: invalid pie value %v", v)
		}
		total += v
	}
	if total == 0 {
		return nil, errors.New("charts: pie values sum to zero")
	}

	return &Pie{
		Values:        values,
		Labels:        labels,
		Colors:        colors,
		StartAngle:    90,
		LineStyle:     draw.LineStyle{Color: color.White, Width: vg.Points(1)},
		LabelStyle:    labelStyle(vg.Points(11)),
		PercentFormat: "%.1f%%",
	}, nil
}

// Shares returns each value as a percentage of the total.
func (p *Pie) Shares() []float64 {
	var total float64
	for _, v := range p.Values {
		total += v
	}
	shares := make([]float64, len(p.Values))
	for i, v := range p.Values {
		shares[i] = v / total * 100
	}
	return shares
}

// Plot implements plot.Plotter.
func (p *Pie) Plot(c draw.Canvas, _ *plot.Plot) {
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	r := 0.38 * min(w, h)
	centre := vg.Point{X: c.Min.X + w/2, Y: c.Min.Y + h/2}

	at := func(angle float64, radius vg.Length) vg.Point {
		return vg.Point{
			X: centre.X + radius*vg.Length(math.Cos(angle)),
			Y: centre.Y + radius*vg.Length(math.Sin(angle)),
		}
	}

	const step = math.Pi / 90
	angle := p.StartAngle * math.Pi / 180

	for i, share := range p.Shares() {
		sweep := share / 100 * 2 * math.Pi

		n := max(2, int(math.Ceil(sweep/step)))
		wedge := make([]vg.Point, 0, n+2)
		wedge = append(wedge, centre)
		for s := 0; s <= n; s++ {
			wedge = append(wedge, at(angle+sweep*float64(s)/float64(n), r))
		}
		c.FillPolygon(p.Colors[i], wedge)
		c.StrokeLines(p.LineStyle, append(wedge, centre))

		mid := angle + sweep/2

		name := p.LabelStyle
		if math.Cos(mid) < 0 {
			name.XAlign = text.XRight
		} else {
			name.XAlign = text.XLeft
		}
		c.FillText(name, at(mid, 1.1*r), p.Labels[i])

		if p.PercentFormat != "" {
			c.FillText(p.LabelStyle, at(mid, 0.6*r), fmt.Sprintf(p.PercentFormat, share))
		}

		angle += sweep
	}
}
