// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Figure colours.
var (
	colorCoral    = hexColor("#FF6B6B")
	colorTeal     = hexColor("#4ECDC4")
	colorSky      = hexColor("#45B7D1")
	colorSage     = hexColor("#96CEB4")
	colorSand     = hexColor("#FFEAA7")
	colorPlum     = hexColor("#DDA0DD")
	colorApricot  = hexColor("#FFB347")
	colorGridLine = color.NRGBA{R: 176, G: 176, B: 176, A: 77}
)

// hexColor parses "#RRGGBB". It panics on malformed input and is only used
// for the constants above.
func hexColor(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		panic(fmt.Sprintf("charts: bad colour %q", s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("charts: bad colour %q: %v", s, err))
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// withAlpha returns c with opacity a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*255 + 0.5)
	return c
}

// newPlot returns a plot with a bold-sized title.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(6)
	return p
}

// addGrid draws light grid lines behind the data.
func addGrid(p *plot.Plot) {
	g := plotter.NewGrid()
	g.Vertical.Color = colorGridLine
	g.Horizontal.Color = colorGridLine
	p.Add(g)
}

// labelStyle is a centred text style at the given size.
func labelStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
	}
}

// rect returns a filled, outlined rectangle from (x0, y0) to (x1, y1).
func rect(x0, y0, x1, y1 float64, fill color.Color, outline bool) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	if outline {
		poly.LineStyle.Color = color.Black
		poly.LineStyle.Width = vg.Points(1)
	} else {
		poly.LineStyle.Width = 0
	}
	return poly, nil
}

// centredLabels places each text at its point, re-styled with sty.
func centredLabels(xys plotter.XYs, texts []string, sty text.Style) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i] = sty
	}
	return labels, nil
}
