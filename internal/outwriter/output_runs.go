package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"
)

// PrintRunStatus outputs run-history status plus recent runs.
func PrintRunStatus(status schema.RunStatus, runs []schema.RunRecord, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		payload := struct {
			Status schema.RunStatus   `json:"status"`
			Runs   []schema.RunRecord `json:"runs"`
		}{status, runs}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, payload)
		}, "JSON run status")
	}

	fmt.Printf("Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Run history is disabled.")
		return nil
	}
	fmt.Printf("Location: %s (%d bytes)\n", status.Location, status.SizeBytes)
	fmt.Printf("Recorded runs: %d\n", status.RunCount)
	if status.LastRun != nil {
		fmt.Printf("Last run: %s\n", status.LastRun.Format(time.RFC3339))
	}

	if len(runs) == 0 {
		return nil
	}
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Run", "Started", "Duration", "Input", "Rows", "Outputs"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Long dataset paths get a third of the terminal at most
	maxPathWidth := GetTerminalWidth(cfg) / 3

	var data [][]string
	for _, r := range runs {
		data = append(data, []string{
			fmt.Sprintf("%d", r.RunID),
			r.StartedAt.Format(time.RFC3339),
			(time.Duration(r.DurationMs) * time.Millisecond).String(),
			truncatePath(r.InputPath, maxPathWidth),
			fmt.Sprintf("%d", r.Rows),
			r.Outputs,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
