// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/orbitlab/binplot/schema"
)

// RunStore defines the interface for the render run-history store.
// This allows the store to be mocked for testing.
type RunStore interface {
	// RecordRun persists one completed render run.
	RecordRun(record schema.RunRecord) error

	// ListRuns returns the recorded runs, newest first, up to limit.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.RunStatus, error)

	// Clear drops all recorded runs.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
