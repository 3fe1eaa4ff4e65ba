// Package render draws degree-distribution fit plots with gonum.org/v1/plot.
package render

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/JesusPetro/mantra/internal/contract"
	"github.com/JesusPetro/mantra/schema"
)

// FitPlot renders one fitted series as a log-log scatter with the
// regression line overlaid across the fit window.
type FitPlot struct {
	Width  vg.Length
	Height vg.Length
}

// NewFitPlot returns a renderer with the default page size.
func NewFitPlot() *FitPlot {
	return &FitPlot{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

var _ contract.Renderer = &FitPlot{}

// PlotPath returns the output path for one series under plotDir.
func PlotPath(plotDir string, id int64) string {
	return filepath.Join(plotDir, fmt.Sprintf("%d.pdf", id))
}

// RenderFit writes the plot for a single fitted series to outPath.
// The file format follows the extension, e.g. .pdf or .png.
func (fp *FitPlot) RenderFit(result schema.AlphaResult, window schema.FitWindow, outPath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %d (alpha = %.2f)", result.Name, result.ID, result.Alpha)
	p.X.Label.Text = "log10 k"
	p.Y.Label.Text = "log10 P(k)"

	pts := make(plotter.XYs, len(result.Fit.XLog))
	for i := range result.Fit.XLog {
		pts[i].X = result.Fit.XLog[i]
		pts[i].Y = result.Fit.YLog[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2)

	fit := plotter.NewFunction(func(x float64) float64 {
		return result.Fit.Slope*x + result.Fit.Intercept
	})
	fit.XMin = window.Lower
	fit.XMax = window.Upper

	p.Add(scatter, fit)
	p.Legend.Add("observed", scatter)
	p.Legend.Add("fit", fit)

	if err := p.Save(fp.Width, fp.Height, outPath); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
