package cmd

import (
	"github.com/orbitlab/binplot/core"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/internal/outwriter"
	"github.com/spf13/cobra"
)

// summaryCmd prints per-column statistics for one dataset.
var summaryCmd = &cobra.Command{
	Use:   "summary [input-file]",
	Short: "Summarize a detailed-evolution dataset",
	Long: `Print per-column statistics (min, max, first, last) for one dataset,
plus the row count, time span, and the stellar types observed in the run.

Useful for a quick sanity check before rendering, or for spotting which
evolutionary stages a given binary passes through.

Examples:
  # Summarize the default COMPAS detailed output
  binplot summary

  # Machine-readable summary
  binplot summary run42.parquet --output json

  # Summary statistics as CSV into a file
  binplot summary run42.csv --output csv --output-file stats.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot summarize dataset", err)
		}
	},
}
