package dataio

import (
	"fmt"
	"os"

	"github.com/orbitlab/binplot/schema"
	"github.com/parquet-go/parquet-go"
)

// detailedRow mirrors one time step of a COMPAS detailed-output file.
// The parquet tags carry the upstream column names verbatim so the schema is
// inferred from struct tags, the same way the export writer works.
type detailedRow struct {
	Time          float64 `parquet:"Time"`
	Mass1         float64 `parquet:"Mass(1)"`
	Mass2         float64 `parquet:"Mass(2)"`
	MassHeCore1   float64 `parquet:"Mass_He_Core(1)"`
	MassHeCore2   float64 `parquet:"Mass_He_Core(2)"`
	MassCOCore1   float64 `parquet:"Mass_CO_Core(1)"`
	MassCOCore2   float64 `parquet:"Mass_CO_Core(2)"`
	SemiMajorAxis float64 `parquet:"SemiMajorAxis"`
	Radius1       float64 `parquet:"Radius(1)"`
	Radius2       float64 `parquet:"Radius(2)"`
	RadiusRL1     float64 `parquet:"Radius(1)|RL"`
	RadiusRL2     float64 `parquet:"Radius(2)|RL"`
	Eccentricity  float64 `parquet:"Eccentricity"`
	StellarType1  int32   `parquet:"Stellar_Type(1)"`
	StellarType2  int32   `parquet:"Stellar_Type(2)"`
}

// LoadParquet reads a Parquet detailed-output file into a Dataset. The file
// schema must carry every required column: the generic reader leaves unmatched
// struct fields at their zero value, which would silently fabricate a column.
func LoadParquet(path string) (*schema.Dataset, error) {
	if err := checkParquetColumns(path); err != nil {
		return nil, err
	}

	rows, err := parquet.ReadFile[detailedRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file %q: %w", path, err)
	}

	columns := make(map[schema.Column][]float64, len(schema.RequiredColumns))
	for _, key := range schema.RequiredColumns {
		columns[key] = make([]float64, len(rows))
	}
	for i, row := range rows {
		columns[schema.ColTime][i] = row.Time
		columns[schema.ColMass1][i] = row.Mass1
		columns[schema.ColMass2][i] = row.Mass2
		columns[schema.ColMassHeCore1][i] = row.MassHeCore1
		columns[schema.ColMassHeCore2][i] = row.MassHeCore2
		columns[schema.ColMassCOCore1][i] = row.MassCOCore1
		columns[schema.ColMassCOCore2][i] = row.MassCOCore2
		columns[schema.ColSemiMajorAxis][i] = row.SemiMajorAxis
		columns[schema.ColRadius1][i] = row.Radius1
		columns[schema.ColRadius2][i] = row.Radius2
		columns[schema.ColRadiusRL1][i] = row.RadiusRL1
		columns[schema.ColRadiusRL2][i] = row.RadiusRL2
		columns[schema.ColEccentricity][i] = row.Eccentricity
		columns[schema.ColStellarType1][i] = float64(row.StellarType1)
		columns[schema.ColStellarType2][i] = float64(row.StellarType2)
	}

	ds, err := schema.NewDataset(columns)
	if err != nil {
		return nil, fmt.Errorf("parquet file %q: %w", path, err)
	}
	return ds, nil
}

// checkParquetColumns verifies the file schema against the required columns,
// erroring on the first one absent.
func checkParquetColumns(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open parquet file %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat parquet file %q: %w", path, err)
	}
	pf, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return fmt.Errorf("failed to read parquet file %q: %w", path, err)
	}

	present := make(map[string]bool)
	for _, field := range pf.Schema().Fields() {
		present[field.Name()] = true
	}
	for _, key := range schema.RequiredColumns {
		if !present[string(key)] {
			return fmt.Errorf("parquet file %q has no column %q", path, key)
		}
	}
	return nil
}

// WriteDerivedParquet writes derived export records to a Parquet file using
// struct-tag schema inference.
func WriteDerivedParquet(records []schema.DerivedRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[schema.DerivedRecord](file)
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
