// Package cmd defines the command-line interface for binplot.
package cmd

import (
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("output-dir", "o", ".", "Directory to write figure files to")
	rootCmd.PersistentFlags().String("format", string(schema.BothFormat), "Image format: png or eps or both")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write tabular output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Float64("fig-width", contract.DefaultFigWidth, "Figure width in inches")
	rootCmd.PersistentFlags().Float64("fig-height", contract.DefaultFigHeight, "Figure height in inches")
	rootCmd.PersistentFlags().Int("dpi", contract.DefaultDPI, "Raster resolution for PNG output")
	rootCmd.PersistentFlags().String("runs-backend", string(schema.SQLiteBackend), "Run history backend: sqlite or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "SQLite database path for run history (default: ~/.binplot_runs.db)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
