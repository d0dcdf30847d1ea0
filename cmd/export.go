package cmd

import (
	"github.com/orbitlab/binplot/core"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/internal/outwriter"
	"github.com/spf13/cobra"
)

// exportCmd writes the derived series to csv, json or parquet.
var exportCmd = &cobra.Command{
	Use:   "export [input-file]",
	Short: "Export the derived series (total mass, Roche ratios, type ranks)",
	Long: `Derive the plotted series from one dataset and write them out:

  time, total_mass, roche_ratio_1, roche_ratio_2, type_rank_1, type_rank_2

The derivations match what the figure draws: total mass is the element-wise
sum of both bodies' masses, Roche ratios are stellar radius over Roche-lobe
radius, and type ranks are the compacted stellar-type positions.

Examples:
  # Derived series as CSV on stdout
  binplot export run42.parquet --output csv

  # Parquet export for downstream analysis
  binplot export run42.parquet --output parquet --output-file derived.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot export derived series", err)
		}
	},
}
