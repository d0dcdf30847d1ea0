package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/internal/dataio"
	"github.com/orbitlab/binplot/schema"
)

// PrintDerivedRecords outputs the derived series, dispatching based on the
// output format configured. Parquet output requires an output file since the
// format is binary.
func PrintDerivedRecords(records []schema.DerivedRecord, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "JSON derived series")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := dataio.WriteDerivedParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	default:
		// CSV is the default for export; a text table of every time step
		// would be unreadable.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDerived(w, records, fmtFloat, intFmt)
		}, "CSV derived series")
	}
}

func writeCSVDerived(w io.Writer, records []schema.DerivedRecord, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"time", "total_mass", "roche_ratio_1", "roche_ratio_2", "type_rank_1", "type_rank_2"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range records {
			row := []string{
				fmtFloat(r.Time),
				fmtFloat(r.TotalMass),
				fmtFloat(r.RocheRatio1),
				fmtFloat(r.RocheRatio2),
				fmt.Sprintf(intFmt, r.TypeRank1),
				fmt.Sprintf(intFmt, r.TypeRank2),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
