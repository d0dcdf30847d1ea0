package dataio

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/orbitlab/binplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestCSV writes a dataset with the given rows to a temp file and
// returns its path. Every required column carries the row's base value,
// except the type columns which carry fixed valid codes.
func writeTestCSV(t *testing.T, rows int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "detailed.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	header := make([]string, len(schema.RequiredColumns))
	for i, key := range schema.RequiredColumns {
		header[i] = string(key)
	}
	require.NoError(t, writer.Write(header))

	for r := 0; r < rows; r++ {
		record := make([]string, len(schema.RequiredColumns))
		for i, key := range schema.RequiredColumns {
			switch key {
			case schema.ColStellarType1:
				record[i] = "1"
			case schema.ColStellarType2:
				record[i] = "2"
			default:
				record[i] = strconv.FormatFloat(float64(r+1), 'f', -1, 64)
			}
		}
		require.NoError(t, writer.Write(record))
	}
	writer.Flush()
	require.NoError(t, writer.Error())
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTestCSV(t, 3)

	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	timeSeries, err := ds.Series(schema.ColTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, timeSeries)

	types, err := ds.TypeCodes(schema.ColStellarType2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, types)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	content := "Time,Mass(1)\n0.0,10.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mass(2)", "the first missing column should be named")
}

func TestLoadCSVEmptyDataset(t *testing.T) {
	// Header only: zero time steps is a fatal load error
	path := writeTestCSV(t, 0)

	_, err := LoadCSV(path)
	assert.Error(t, err)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadDispatch(t *testing.T) {
	// Extension routing: unknown extensions are rejected up front
	_, err := Load("detailed.hdf5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".hdf5")

	path := writeTestCSV(t, 2)
	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}
