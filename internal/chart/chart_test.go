package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orbitlab/binplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFigureData builds a small but complete figure input with strictly
// positive radii so the log-scale panel is well defined.
func testFigureData() *schema.FigureData {
	return &schema.FigureData{
		Time:          []float64{0, 1, 2, 3},
		TotalMass:     []float64{35, 34, 33, 30},
		Mass1:         []float64{20, 19, 18, 16},
		MassHe1:       []float64{0, 1, 2, 3},
		MassCO1:       []float64{0, 0, 1, 2},
		Mass2:         []float64{15, 15, 15, 14},
		MassHe2:       []float64{0, 0, 1, 1},
		MassCO2:       []float64{0, 0, 0, 1},
		SemiMajorAxis: []float64{50, 48, 40, 60},
		Radius1:       []float64{5, 6, 9, 2},
		Radius2:       []float64{4, 4, 5, 5},
		RocheRatio1:   []float64{0.5, 0.6, 0.9, 0.2},
		RocheRatio2:   []float64{0.5, 0.5, 0.6, 0.5},
		Eccentricity:  []float64{0.1, 0.05, 0.02, 0.4},
		TypeRank1:     []float64{0, 0, 1, 2},
		TypeRank2:     []float64{0, 0, 0, 1},
		TypeLabels:    []string{"MS", "HG", "BH"},
	}
}

func testOptions() Options {
	return Options{WidthIn: 10, HeightIn: 6, DPI: 72}
}

func TestRenderBoth(t *testing.T) {
	dir := t.TempDir()

	written, err := Render(testFigureData(), dir, schema.BothFormat, testOptions())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, schema.FigurePNGName),
		filepath.Join(dir, schema.FigureEPSName),
	}, written)

	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "%s should not be empty", path)
	}
}

func TestRenderSingleFormat(t *testing.T) {
	tests := []struct {
		name   string
		format schema.ImageFormat
		want   string
	}{
		{"png only", schema.PNGFormat, schema.FigurePNGName},
		{"eps only", schema.EPSFormat, schema.FigureEPSName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			written, err := Render(testFigureData(), dir, tt.format, testOptions())
			require.NoError(t, err)
			require.Len(t, written, 1)
			assert.Equal(t, filepath.Join(dir, tt.want), written[0])
		})
	}
}

func TestRenderZeroRadius(t *testing.T) {
	// Zero radii happen for massless and merged remnants; the log panel
	// drops those points instead of aborting
	data := testFigureData()
	data.Radius1[3] = 0
	data.Radius2[0] = 0
	dir := t.TempDir()

	written, err := Render(data, dir, schema.PNGFormat, testOptions())
	require.NoError(t, err)
	require.Len(t, written, 1)

	info, err := os.Stat(written[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderAllNonPositiveRadii(t *testing.T) {
	// With nothing left to draw the radius panel reports an error rather
	// than handing an empty range to the log axis
	data := testFigureData()
	zeros := make([]float64, len(data.Time))
	data.SemiMajorAxis = zeros
	data.Radius1 = zeros
	data.Radius2 = zeros
	data.RocheRatio1 = zeros
	data.RocheRatio2 = zeros

	_, err := Render(data, t.TempDir(), schema.PNGFormat, testOptions())
	assert.Error(t, err)
}

func TestRenderBadDirectory(t *testing.T) {
	// A nonexistent output directory surfaces as a write error
	dir := filepath.Join(t.TempDir(), "missing", "nested")

	_, err := Render(testFigureData(), dir, schema.PNGFormat, testOptions())
	assert.Error(t, err)
}
