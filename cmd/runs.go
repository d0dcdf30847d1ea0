package cmd

import (
	"fmt"

	"github.com/orbitlab/binplot/core"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/internal/outwriter"
	"github.com/orbitlab/binplot/internal/runstore"
	"github.com/orbitlab/binplot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run-history operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("runs-backend"))
	connStr := viper.GetString("runs-db-connect")
	if _, ok := schema.ValidRunBackends[backend]; !ok {
		return fmt.Errorf("invalid runs backend %q (valid: sqlite, none)", backend)
	}

	store, err := runstore.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	runStore = store

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsCmd focused on run-history management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by dataset commands. This avoids input-path
// validation for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage recorded render runs",
	Long: `Manage the local history of render runs.

Every successful render is recorded with its input path, row count, duration
and written outputs, in a SQLite file in your home directory.

Subcommands:
  status  - Show store statistics and recent runs
  clear   - Remove all recorded runs
  migrate - Apply or roll back store schema migrations

Examples:
  # Check what was rendered recently
  binplot runs status

  # Start fresh
  binplot runs clear`,
}

// runsStatusCmd shows run-history status.
var runsStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display run-history statistics and recent runs",
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRunsStatus(cfg, runStore, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot read run history", err)
		}
	},
}

// runsClearCmd clears the run history.
var runsClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all recorded runs",
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRunsClear(runStore); err != nil {
			contract.LogFatal("Cannot clear run history", err)
		}
	},
}

// runsMigrateCmd applies schema migrations to the run-history store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply run-history schema migrations",
	Long: `Apply or roll back schema migrations for the run-history store.

Use --target-version to pick a schema version: -1 migrates to the latest,
0 rolls back everything, and a positive number targets that version.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := loadConfigFile(); err != nil {
			contract.LogFatal("Cannot load config", err)
		}
		backend := schema.DatabaseBackend(viper.GetString("runs-backend"))
		connStr := viper.GetString("runs-db-connect")
		target := viper.GetInt("target-version")
		if err := runstore.Migrate(backend, connStr, target); err != nil {
			contract.LogFatal("Cannot migrate run history", err)
		}
		fmt.Println("Run history migrated successfully.")
	},
}
