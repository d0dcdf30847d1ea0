package chart

import (
	"errors"
	"image/color"

	"github.com/orbitlab/binplot/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const legendFontSize = vg.Length(8)

// massPanel draws the system mass plus the per-body total, He-core and
// CO-core masses.
func massPanel(data *schema.FigureData) (*plot.Plot, error) {
	p := newPanel("a)")
	p.X.Label.Text = "Time / Myr"
	p.Y.Label.Text = "Mass / Msun"

	series := []struct {
		label  string
		values []float64
		style  draw.LineStyle
	}{
		{"System Mass", data.TotalMass, lineStyle(seriesBlack, dashSolid)},
		{"Total Mass 1", data.Mass1, lineStyle(seriesRed, dashSolid)},
		{"He Core 1", data.MassHe1, lineStyle(seriesRed, dashDashed)},
		{"CO Core 1", data.MassCO1, lineStyle(seriesRed, dashDotted)},
		{"Total Mass 2", data.Mass2, lineStyle(seriesBlue, dashSolid)},
		{"He Core 2", data.MassHe2, lineStyle(seriesBlue, dashDashed)},
		{"CO Core 2", data.MassCO2, lineStyle(seriesBlue, dashDotted)},
	}
	for _, s := range series {
		if err := addLine(p, data.Time, s.values, s.style, s.label); err != nil {
			return nil, err
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// radiusPanel draws orbital separation, stellar radii and Roche-lobe filling
// ratios on a log scale.
func radiusPanel(data *schema.FigureData) (*plot.Plot, error) {
	p := newPanel("b)")
	p.X.Label.Text = "Time / Myr"
	p.Y.Label.Text = "Radius / Rsun"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	series := []struct {
		label  string
		values []float64
		style  draw.LineStyle
	}{
		{"Semi-Major Axis", data.SemiMajorAxis, lineStyle(seriesBlack, dashSolid)},
		{"Roche Radius 1", data.RocheRatio1, lineStyle(seriesRed, dashDashed)},
		{"Roche Radius 2", data.RocheRatio2, lineStyle(seriesBlue, dashDashed)},
		{"Stellar Radius 1", data.Radius1, lineStyle(seriesRed, dashSolid)},
		{"Stellar Radius 2", data.Radius2, lineStyle(seriesBlue, dashSolid)},
	}
	plotted := 0
	for _, s := range series {
		n, err := addPositiveLine(p, data.Time, s.values, s.style, s.label)
		if err != nil {
			return nil, err
		}
		plotted += n
	}
	if plotted == 0 {
		return nil, errors.New("radius panel has no positive values to draw on a log scale")
	}

	p.Legend.Top = true
	return p, nil
}

// eccentricityPanel draws orbital eccentricity with a fixed [-0.05, 1.05]
// range so circular and disrupted orbits read at a glance.
func eccentricityPanel(data *schema.FigureData) (*plot.Plot, error) {
	p := newPanel("c)")
	p.X.Label.Text = "Time / Myr"
	p.Y.Label.Text = "Eccentricity"
	p.Y.Min = -0.05
	p.Y.Max = 1.05

	if err := addLine(p, data.Time, data.Eccentricity, lineStyle(seriesBlack, dashSolid), ""); err != nil {
		return nil, err
	}
	return p, nil
}

// typePanel draws the compacted stellar-type ranks for both bodies, with one
// tick label per observed type.
func typePanel(data *schema.FigureData) (*plot.Plot, error) {
	p := newPanel("d)")
	p.X.Label.Text = "Time / Myr"
	p.Y.Label.Text = "Stellar Type"

	ticks := make(plot.ConstantTicks, len(data.TypeLabels))
	for i, label := range data.TypeLabels {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.Y.Tick.Marker = ticks
	p.Y.Min = -0.5
	p.Y.Max = float64(len(data.TypeLabels)) - 0.5

	if err := addLine(p, data.Time, data.TypeRank1, lineStyle(seriesRed, dashSolid), "Stellar Type 1"); err != nil {
		return nil, err
	}
	if err := addLine(p, data.Time, data.TypeRank2, lineStyle(seriesBlue, dashSolid), "Stellar Type 2"); err != nil {
		return nil, err
	}

	p.Legend.Left = true
	return p, nil
}

// newPanel creates a plot with the shared grid and panel letter.
func newPanel(letter string) *plot.Plot {
	p := plot.New()
	p.Title.Text = letter
	p.Legend.TextStyle.Font.Size = legendFontSize

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridGray
	grid.Vertical.Dashes = dashDotted
	grid.Horizontal.Color = gridGray
	grid.Horizontal.Dashes = dashDotted
	p.Add(grid)

	return p
}

func lineStyle(c color.Color, dashes []vg.Length) draw.LineStyle {
	return draw.LineStyle{
		Color:  c,
		Width:  vg.Points(1),
		Dashes: dashes,
	}
}

// addPositiveLine appends one time series to the plot, dropping points with a
// non-positive value. Log axes reject them, and zero radii are legitimate data
// for massless or merged remnants. Returns the number of points kept.
func addPositiveLine(p *plot.Plot, xs, ys []float64, style draw.LineStyle, label string) (int, error) {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if ys[i] <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return 0, err
	}
	line.LineStyle = style
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return len(pts), nil
}

// addLine appends one time series to the plot, registering a legend entry
// when a label is given.
func addLine(p *plot.Plot, xs, ys []float64, style draw.LineStyle, label string) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle = style
	p.Add(line)
	if label != "" {
		p.Legend.Add(label, line)
	}
	return nil
}
