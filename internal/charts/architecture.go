// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tomtom215/arboretum/internal/classifier"
)

// blockColors cycle across the diagram boxes from input to output.
var blockColors = []color.NRGBA{
	colorCoral, colorTeal, colorSky, colorSage, colorSand, colorPlum, colorApricot,
}

// Diagram geometry in data units.
const (
	blockSpacing = 2.0
	blockWidth   = 1.6
	blockHeight  = 1.0
	blockRow     = 4.0
	arrowHead    = 0.15
)

// ArchitectureDiagram draws one labelled box per block with arrows between
// neighbours. Axes are hidden.
func ArchitectureDiagram(blocks []classifier.Block) (*plot.Plot, error) {
	if len(blocks) == 0 {
		return nil, errors.New("charts: architecture diagram needs at least one block")
	}

	p := newPlot("CNN Architecture for Tree Species Classification")
	p.HideAxes()

	centres := make(plotter.XYs, len(blocks))
	texts := make([]string, len(blocks))

	for i, b := range blocks {
		x := 1 + blockSpacing*float64(i)
		centres[i] = plotter.XY{X: x, Y: blockRow}
		texts[i] = b.Label

		box, err := rect(x-blockWidth/2, blockRow-blockHeight/2, x+blockWidth/2, blockRow+blockHeight/2,
			withAlpha(blockColors[i%len(blockColors)], 0.7), true)
		if err != nil {
			return nil, err
		}
		p.Add(box)

		if i == len(blocks)-1 {
			continue
		}
		if err := addArrow(p, x+blockWidth/2, x+blockSpacing-blockWidth/2, blockRow); err != nil {
			return nil, err
		}
	}

	labels, err := centredLabels(centres, texts, labelStyle(vg.Points(9)))
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min, p.X.Max = 0, blockSpacing*float64(len(blocks))
	p.Y.Min, p.Y.Max = 2, 6

	return p, nil
}

// addArrow draws a horizontal arrow from x0 to x1 at height y.
func addArrow(p *plot.Plot, x0, x1, y float64) error {
	shaft, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1 - arrowHead, Y: y}})
	if err != nil {
		return err
	}
	shaft.LineStyle.Width = vg.Points(1.5)
	shaft.LineStyle.Color = color.Black

	head, err := plotter.NewPolygon(plotter.XYs{
		{X: x1 - arrowHead, Y: y - arrowHead/2},
		{X: x1, Y: y},
		{X: x1 - arrowHead, Y: y + arrowHead/2},
	})
	if err != nil {
		return err
	}
	head.Color = color.Black
	head.LineStyle.Width = 0

	p.Add(shaft, head)
	return nil
}
