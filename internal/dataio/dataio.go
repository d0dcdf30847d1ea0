// Package dataio loads detailed-evolution datasets from Parquet or CSV files
// into the shared column container.
package dataio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/orbitlab/binplot/schema"
)

// Load reads one dataset, selecting the reader by file extension.
func Load(path string) (*schema.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return LoadParquet(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input extension %q (want .parquet or .csv)", filepath.Ext(path))
	}
}
