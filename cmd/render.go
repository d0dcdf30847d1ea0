package cmd

import (
	"github.com/orbitlab/binplot/core"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/spf13/cobra"
)

// renderCmd draws the four-panel detailed-evolution figure.
var renderCmd = &cobra.Command{
	Use:   "render [input-file]",
	Short: "Render the four-panel detailed-evolution figure",
	Long: `Read one detailed-evolution dataset and render the fixed four-panel figure:

  a) mass evolution (system, per-body total, He core, CO core)
  b) radius evolution (semi-major axis, stellar radii, Roche-lobe filling), log scale
  c) orbital eccentricity
  d) stellar-type history, compacted to the types that actually occur

The figure is written as detailed_evolution.png and detailed_evolution.eps.
Input is Parquet or CSV, selected by file extension.

Examples:
  # Render the default COMPAS detailed output
  binplot render

  # Render a specific file to a chosen directory, PNG only
  binplot render run42.parquet --output-dir figures --format png

  # Wider figure for a two-column layout
  binplot render run42.csv --fig-width 14 --fig-height 7`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRender(cfg, runStore); err != nil {
			contract.LogFatal("Cannot render figure", err)
		}
	},
}
