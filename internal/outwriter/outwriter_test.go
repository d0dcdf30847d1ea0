package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() schema.SummaryResult {
	return schema.SummaryResult{
		InputPath: "run.parquet",
		Rows:      3,
		TimeStart: 0,
		TimeEnd:   7,
		Columns: []schema.ColumnStats{
			{Column: schema.ColTime, Min: 0, Max: 7, First: 0, Last: 7},
			{Column: schema.ColMass1, Min: 16, Max: 20, First: 20, Last: 16},
		},
		ObservedTypes: []int{1, 2, 14},
		TypeNames:     []string{"MS", "HG", "BH"},
	}
}

func TestWriteCSVSummary(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	require.NoError(t, writeCSVSummary(&buf, testSummary(), fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "column,min,max,first,last", lines[0])
	assert.Equal(t, "Time,0.0,7.0,0.0,7.0", lines[1])
	assert.Equal(t, "Mass(1),16.0,20.0,20.0,16.0", lines[2])
}

func TestFormatObservedTypes(t *testing.T) {
	// Plain labels, no ANSI escapes when color is off
	got := formatObservedTypes(testSummary(), false)
	assert.Equal(t, "MS [MainSeq], HG [Evolved], BH [Remnant]", got)
}

func TestWriteCSVDerived(t *testing.T) {
	records := []schema.DerivedRecord{
		{Time: 0, TotalMass: 35, RocheRatio1: 0.5, RocheRatio2: 0.25, TypeRank1: 0, TypeRank2: 1},
	}
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	require.NoError(t, writeCSVDerived(&buf, records, fmtFloat, intFmt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "time,total_mass,roche_ratio_1,roche_ratio_2,type_rank_1,type_rank_2", lines[0])
	assert.Equal(t, "0.00,35.00,0.50,0.25,0,1", lines[1])
}

func TestPrintDerivedRecordsJSONFile(t *testing.T) {
	records := []schema.DerivedRecord{{Time: 1, TotalMass: 30}}
	outPath := filepath.Join(t.TempDir(), "derived.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outPath, Precision: 2}

	require.NoError(t, PrintDerivedRecords(records, cfg))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var readBack []schema.DerivedRecord
	require.NoError(t, json.Unmarshal(data, &readBack))
	assert.Equal(t, records, readBack)
}

func TestPrintDerivedRecordsParquetNeedsFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut}

	err := PrintDerivedRecords(nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}

func TestGetTerminalWidthOverride(t *testing.T) {
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 120, GetTerminalWidth(cfg))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.csv", truncatePath("short.csv", 20))
	assert.Equal(t, "...Output_0.parquet", truncatePath("COMPAS_Output/Detailed_Output/BSE_Detailed_Output_0.parquet", 19))
	// Widths at or below the ellipsis collapse instead of slicing past the end
	assert.Equal(t, "...", truncatePath("long_enough_path.csv", 3))
	assert.Equal(t, "...", truncatePath("long_enough_path.csv", 1))
	assert.Equal(t, "...", truncatePath("long_enough_path.csv", 0))
}
