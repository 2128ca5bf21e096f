/*
PURPOSE:
  Renders baseline-vs-VPN comparison charts as PNG images.

REQUIREMENTS:
  User-specified:
  - Side-by-side bars of baseline and VPN values per test.
  - A second panel with overhead/efficiency per test, colored by rating,
    with dashed reference lines at the rating thresholds.

  Implementation-discovered:
  - gonum/plot has no subplot API; plot.Align tiles two plots on one canvas.
  - gonum BarChart has one color per chart, so tier-colored bars are drawn
    as one single-value BarChart each.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model comparisons

ERROR HANDLING:
  - ErrNoData when there is nothing to draw; the caller logs and skips.
  - File creation / encoding errors are returned.

IMPLEMENTATION RULES:
  - Style is passed in. No package-level plotting state.
  - Tests are drawn in name order so identical input gives identical images.

USAGE:
  err := chart.LatencyChart(res.Latency, "latency.png", chart.DefaultStyle())

RELATED FILES:
  - internal/chart/latency.go
  - internal/chart/bandwidth.go
*/

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/daryltucker/vpn-analyzer/internal/model"
)

// ErrNoData is returned when a chart has no comparisons to draw.
var ErrNoData = errors.New("no data available for charting")

// Style controls the size and resolution of rendered charts.
type Style struct {
	WidthInches  float64 `yaml:"width_in"`
	HeightInches float64 `yaml:"height_in"`
	DPI          int     `yaml:"dpi"`
}

// DefaultStyle returns a 15x6 inch canvas at 300 DPI.
func DefaultStyle() Style {
	return Style{WidthInches: 15, HeightInches: 6, DPI: 300}
}

var (
	colorBaseline  = color.RGBA{R: 54, G: 162, B: 235, A: 255}  // blue
	colorVPN       = color.RGBA{R: 255, G: 159, B: 64, A: 255}  // orange
	colorExcellent = color.RGBA{R: 46, G: 160, B: 67, A: 255}   // green
	colorGood      = color.RGBA{R: 255, G: 140, B: 0, A: 255}   // dark orange
	colorPoor      = color.RGBA{R: 220, G: 53, B: 69, A: 255}   // red
	colorGrid      = color.RGBA{R: 200, G: 200, B: 200, A: 255} // light gray
)

func ratingColor(r model.Rating) color.Color {
	switch r {
	case model.RatingExcellent:
		return colorExcellent
	case model.RatingGood:
		return colorGood
	default:
		return colorPoor
	}
}

// threshold is a dashed horizontal reference line.
type threshold struct {
	value float64
	label string
	color color.Color
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Label.Rotation = math.Pi / 4

	grid := plotter.NewGrid()
	grid.Vertical.Color = colorGrid
	grid.Horizontal.Color = colorGrid
	p.Add(grid)
	return p
}

// barWidth sizes bars so a group of two takes roughly 70% of its slot.
func barWidth(s Style, n int) vg.Length {
	panel := vg.Length(s.WidthInches/2) * vg.Inch
	return panel * 0.8 / vg.Length(max(n, 1)) * 0.35
}

// groupedBars draws baseline and VPN values next to each other per test.
func groupedBars(p *plot.Plot, labels []string, baseline, vpn plotter.Values, width vg.Length) error {
	base, err := plotter.NewBarChart(baseline, width)
	if err != nil {
		return fmt.Errorf("baseline bars: %w", err)
	}
	base.Color = colorBaseline
	base.LineStyle.Width = 0
	base.Offset = -width / 2

	over, err := plotter.NewBarChart(vpn, width)
	if err != nil {
		return fmt.Errorf("vpn bars: %w", err)
	}
	over.Color = colorVPN
	over.LineStyle.Width = 0
	over.Offset = width / 2

	p.Add(base, over)
	p.Legend.Add("Baseline", base)
	p.Legend.Add("VPN", over)
	p.Legend.Top = true

	p.NominalX(labels...)
	p.X.Min = -0.5
	p.X.Max = float64(len(labels)) - 0.5
	return nil
}

// ratedBars draws one bar per value, colored by its rating, plus the
// threshold reference lines.
func ratedBars(p *plot.Plot, labels []string, values []float64, ratings []model.Rating, width vg.Length, lines []threshold) error {
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, width*2)
		if err != nil {
			return fmt.Errorf("bar %q: %w", labels[i], err)
		}
		bar.XMin = float64(i)
		bar.Color = ratingColor(ratings[i])
		bar.LineStyle.Width = 0
		p.Add(bar)
	}

	top := p.Y.Max
	for _, t := range lines {
		fn := plotter.NewFunction(func(float64) float64 { return t.value })
		fn.Color = t.color
		fn.Width = vg.Points(1.5)
		fn.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(fn)
		p.Legend.Add(t.label, fn)
		top = math.Max(top, t.value*1.1)
	}
	p.Legend.Top = true

	// Functions have no data range, keep the reference lines in view.
	p.Y.Max = top
	p.Y.Min = math.Min(p.Y.Min, 0)

	p.NominalX(labels...)
	p.X.Min = -0.5
	p.X.Max = float64(len(labels)) - 0.5
	return nil
}

// save renders two plots side by side into a PNG file.
func save(path string, s Style, left, right *plot.Plot) error {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(s.WidthInches)*vg.Inch, vg.Length(s.HeightInches)*vg.Inch),
		vgimg.UseDPI(s.DPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(plots, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
