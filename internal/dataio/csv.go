package dataio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/orbitlab/binplot/schema"
)

// LoadCSV reads a CSV detailed-output file into a Dataset. The first row must
// be a header carrying the upstream column names; every required column must
// be present. encoding/csv already rejects ragged rows.
func LoadCSV(path string) (*schema.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv file %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file %q has no header row", path)
	}

	header := rows[0]
	index := make(map[schema.Column]int, len(header))
	for i, name := range header {
		index[schema.Column(name)] = i
	}
	for _, key := range schema.RequiredColumns {
		if _, ok := index[key]; !ok {
			return nil, fmt.Errorf("csv file %q has no column %q", path, key)
		}
	}

	data := rows[1:]
	columns := make(map[schema.Column][]float64, len(schema.RequiredColumns))
	for _, key := range schema.RequiredColumns {
		col := index[key]
		values := make([]float64, len(data))
		for i, row := range data {
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("csv file %q column %q row %d: %w", path, key, i+1, err)
			}
			values[i] = v
		}
		columns[key] = values
	}

	ds, err := schema.NewDataset(columns)
	if err != nil {
		return nil, fmt.Errorf("csv file %q: %w", path, err)
	}
	return ds, nil
}
