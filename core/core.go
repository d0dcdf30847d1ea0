// Package core holds the derivation and orchestration logic for binplot.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/orbitlab/binplot/internal/chart"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/internal/dataio"
	"github.com/orbitlab/binplot/internal/outwriter"
	"github.com/orbitlab/binplot/schema"
)

// runsListLimit caps how many recent runs the status table shows.
const runsListLimit = 10

// ExecuteRender loads the dataset, derives every plotted series and writes
// the four-panel figure. The run is recorded in the run store; a store
// failure is a warning, not an abort, since the figure already exists.
func ExecuteRender(cfg *contract.Config, store contract.RunStore) error {
	start := time.Now()

	ds, err := dataio.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	fig, err := BuildFigureData(ds)
	if err != nil {
		return err
	}

	written, err := chart.Render(fig, cfg.OutputDir, cfg.Format, chart.Options{
		WidthIn:  cfg.FigWidth,
		HeightIn: cfg.FigHeight,
		DPI:      cfg.DPI,
	})
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}

	record := schema.RunRecord{
		StartedAt:  start,
		DurationMs: time.Since(start).Milliseconds(),
		InputPath:  cfg.InputPath,
		Rows:       ds.Len(),
		Outputs:    strings.Join(written, ","),
	}
	if err := store.RecordRun(record); err != nil {
		contract.LogWarn("could not record run", err)
	}
	return nil
}

// ExecuteSummary loads the dataset and prints per-column statistics plus the
// observed stellar types.
func ExecuteSummary(cfg *contract.Config, ow *outwriter.OutWriter) error {
	ds, err := dataio.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	result, err := BuildSummary(ds, cfg.InputPath)
	if err != nil {
		return err
	}
	return ow.WriteSummary(result, cfg)
}

// ExecuteExport loads the dataset and writes the derived series in the
// configured output format.
func ExecuteExport(cfg *contract.Config, ow *outwriter.OutWriter) error {
	ds, err := dataio.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	records, err := BuildDerived(ds)
	if err != nil {
		return err
	}
	return ow.WriteDerived(records, cfg)
}

// ExecuteRunsStatus prints run-history status and the most recent runs.
func ExecuteRunsStatus(cfg *contract.Config, store contract.RunStore, ow *outwriter.OutWriter) error {
	status, err := store.GetStatus()
	if err != nil {
		return err
	}
	runs, err := store.ListRuns(runsListLimit)
	if err != nil {
		return err
	}
	return ow.WriteRunStatus(status, runs, cfg)
}

// ExecuteRunsClear drops all recorded runs.
func ExecuteRunsClear(store contract.RunStore) error {
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Run history cleared.")
	return nil
}
