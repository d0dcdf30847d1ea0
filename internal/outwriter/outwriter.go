// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the
// core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints a dataset summary using the configured output format.
func (ow *OutWriter) WriteSummary(result schema.SummaryResult, cfg *contract.Config) error {
	return PrintSummaryResults(result, cfg)
}

// WriteDerived prints derived export records using the configured output format.
func (ow *OutWriter) WriteDerived(records []schema.DerivedRecord, cfg *contract.Config) error {
	return PrintDerivedRecords(records, cfg)
}

// WriteRunStatus prints run-history status using the configured output format.
func (ow *OutWriter) WriteRunStatus(status schema.RunStatus, runs []schema.RunRecord, cfg *contract.Config) error {
	return PrintRunStatus(status, runs, cfg)
}

// GetTerminalWidth returns the usable terminal width, honoring the config
// override and falling back to a conservative default for CI.
func GetTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}
