package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"
)

// PrintSummaryResults outputs the dataset summary, dispatching based on the
// output format configured.
func PrintSummaryResults(result schema.SummaryResult, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "JSON summary")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSummary(w, result, fmtFloat)
		}, "CSV summary")
	default:
		// Default to human-readable table
		if err := printSummaryTable(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing summary table output: %w", err)
		}
		return nil
	}
}

// writeCSVSummary emits one row per column with its statistics.
func writeCSVSummary(w io.Writer, result schema.SummaryResult, fmtFloat func(float64) string) error {
	header := []string{"column", "min", "max", "first", "last"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, cs := range result.Columns {
			row := []string{
				string(cs.Column),
				fmtFloat(cs.Min),
				fmtFloat(cs.Max),
				fmtFloat(cs.First),
				fmtFloat(cs.Last),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// printSummaryTable prints the per-column statistics table plus the observed
// stellar types.
func printSummaryTable(result schema.SummaryResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	fmt.Printf("Dataset: %s\n", result.InputPath)
	fmt.Printf("Rows: %d, Time: %s to %s Myr\n\n", result.Rows, fmtFloat(result.TimeStart), fmtFloat(result.TimeEnd))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Column", "Min", "Max", "First", "Last"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cs := range result.Columns {
		data = append(data, []string{
			string(cs.Column),
			fmtFloat(cs.Min),
			fmtFloat(cs.Max),
			fmtFloat(cs.First),
			fmtFloat(cs.Last),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("\nObserved stellar types: %s\n", formatObservedTypes(result, cfg.Color))
	return nil
}

// formatObservedTypes renders the observed types as "name [Stage]" pairs,
// colorized for terminals when enabled.
func formatObservedTypes(result schema.SummaryResult, colorize bool) string {
	parts := make([]string, len(result.ObservedTypes))
	for i, code := range result.ObservedTypes {
		label := contract.GetPlainStageLabel(code)
		if colorize {
			label = contract.GetColorStageLabel(code)
		}
		parts[i] = fmt.Sprintf("%s [%s]", result.TypeNames[i], label)
	}
	return strings.Join(parts, ", ")
}
