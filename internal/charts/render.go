// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/tomtom215/arboretum/internal/classifier"
	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/logging"
)

// Output file names, in generation order.
const (
	ArchitectureFile = "cnn_architecture.png"
	PerformanceFile  = "performance_metrics.png"
	DistributionFile = "data_distribution.png"
)

// Figure is one output image: a grid of panels drawn at a fixed size.
type Figure struct {
	Name   string
	Width  vg.Length
	Height vg.Length
	Panels [][]*plot.Plot
}

// Figures builds the three documentation figures. The distribution panels
// are drawn from SyntheticData(seed).
func Figures(seed uint64) ([]Figure, error) {
	arch, err := ArchitectureDiagram(classifier.Blocks(classifier.DefaultArchitecture()))
	if err != nil {
		return nil, fmt.Errorf("architecture diagram: %w", err)
	}

	perf, err := PerformanceMetrics()
	if err != nil {
		return nil, fmt.Errorf("performance metrics: %w", err)
	}

	dist, err := DataDistribution(SyntheticData(seed))
	if err != nil {
		return nil, fmt.Errorf("data distribution: %w", err)
	}

	return []Figure{
		{Name: ArchitectureFile, Width: 12 * vg.Inch, Height: 8 * vg.Inch, Panels: [][]*plot.Plot{{arch}}},
		{Name: PerformanceFile, Width: 15 * vg.Inch, Height: 6 * vg.Inch, Panels: [][]*plot.Plot{perf}},
		{Name: DistributionFile, Width: 15 * vg.Inch, Height: 10 * vg.Inch, Panels: dist},
	}, nil
}

// Render draws the figure as a PNG at the given resolution.
//
//nolint:gocritic // Figure is small and read only
func (f Figure) Render(w io.Writer, dpi int) error {
	if len(f.Panels) == 0 || len(f.Panels[0]) == 0 {
		return errors.New("charts: figure has no panels")
	}
	cols := len(f.Panels[0])
	for _, row := range f.Panels {
		if len(row) != cols {
			return errors.New("charts: figure rows have different lengths")
		}
	}

	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	if len(f.Panels) == 1 && cols == 1 {
		f.Panels[0][0].Draw(dc)
	} else {
		pad := vg.Points(18)
		tiles := draw.Tiles{
			Rows:      len(f.Panels),
			Cols:      cols,
			PadX:      pad,
			PadY:      pad,
			PadTop:    pad / 2,
			PadBottom: pad / 2,
			PadLeft:   pad / 2,
			PadRight:  pad / 2,
		}
		canvases := plot.Align(f.Panels, tiles, dc)
		for j := range f.Panels {
			for i := range f.Panels[j] {
				f.Panels[j][i].Draw(canvases[j][i])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Generate writes every figure into cfg.OutputDir and returns the written
// paths in order. The first error aborts generation.
func Generate(ctx context.Context, cfg config.DocsConfig) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	figures, err := Figures(cfg.Seed)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(figures))
	for _, fig := range figures {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		start := time.Now()
		path := filepath.Join(cfg.OutputDir, fig.Name)
		if err := writeFigure(path, fig, cfg.DPI); err != nil {
			return paths, fmt.Errorf("write %s: %w", fig.Name, err)
		}
		paths = append(paths, path)

		logging.Ctx(ctx).Debug().
			Str("path", path).
			Int("dpi", cfg.DPI).
			Dur("duration", time.Since(start)).
			Msg("Figure written")
	}

	return paths, nil
}

//nolint:gocritic // Figure is small and read only
func writeFigure(path string, fig Figure, dpi int) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from configuration
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fig.Render(f, dpi)
}
