// Package chart renders the four-panel detailed-evolution figure with
// gonum.org/v1/plot.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/orbitlab/binplot/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options control figure geometry and raster resolution.
type Options struct {
	WidthIn  float64 // inches
	HeightIn float64 // inches
	DPI      int
}

// Palette matching the reference figure: black for system-level series, red
// for body 1, blue for body 2.
var (
	seriesBlack = color.Black
	seriesRed   = color.RGBA{R: 0xcc, A: 0xff}
	seriesBlue  = color.RGBA{B: 0xcc, A: 0xff}
	gridGray    = color.Gray{Y: 0x80}
)

// Dash patterns for line styles.
var (
	dashSolid  []vg.Length // nil means solid
	dashDashed = []vg.Length{vg.Points(6), vg.Points(3)}
	dashDotted = []vg.Length{vg.Points(1), vg.Points(2.5)}
)

// Render draws the figure and writes it to dir in the requested format(s).
// It returns the written paths in write order.
func Render(data *schema.FigureData, dir string, format schema.ImageFormat, opts Options) ([]string, error) {
	fig, err := newFigure(data, opts)
	if err != nil {
		return nil, fmt.Errorf("building figure: %w", err)
	}

	var written []string
	if format == schema.PNGFormat || format == schema.BothFormat {
		path := filepath.Join(dir, schema.FigurePNGName)
		if err := fig.savePNG(path); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	if format == schema.EPSFormat || format == schema.BothFormat {
		path := filepath.Join(dir, schema.FigureEPSName)
		if err := fig.saveEPS(path); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// figure bundles the four aligned panels.
type figure struct {
	panels [2][2]*plot.Plot
	width  vg.Length
	height vg.Length
	dpi    int
}

func newFigure(data *schema.FigureData, opts Options) (*figure, error) {
	mass, err := massPanel(data)
	if err != nil {
		return nil, err
	}
	radius, err := radiusPanel(data)
	if err != nil {
		return nil, err
	}
	ecc, err := eccentricityPanel(data)
	if err != nil {
		return nil, err
	}
	types, err := typePanel(data)
	if err != nil {
		return nil, err
	}

	return &figure{
		panels: [2][2]*plot.Plot{{mass, radius}, {ecc, types}},
		width:  vg.Length(opts.WidthIn) * vg.Inch,
		height: vg.Length(opts.HeightIn) * vg.Inch,
		dpi:    opts.DPI,
	}, nil
}

// draw lays the panels out on a 2x2 tile grid and draws them.
func (f *figure) draw(dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows: 2,
		Cols: 2,
		PadX: vg.Millimeter * 6,
		PadY: vg.Millimeter * 4,
	}
	plots := [][]*plot.Plot{
		{f.panels[0][0], f.panels[0][1]},
		{f.panels[1][0], f.panels[1][1]},
	}
	canvases := plot.Align(plots, tiles, dc)
	for row := range plots {
		for col := range plots[row] {
			plots[row][col].Draw(canvases[row][col])
		}
	}
}

func (f *figure) savePNG(path string) error {
	img := vgimg.NewWith(vgimg.UseWH(f.width, f.height), vgimg.UseDPI(f.dpi))
	f.draw(draw.New(img))

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func (f *figure) saveEPS(path string) error {
	eps := vgeps.New(f.width, f.height)
	f.draw(draw.New(eps))

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := eps.WriteTo(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
