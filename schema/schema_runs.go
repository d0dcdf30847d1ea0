package schema

import "time"

// RunRecord describes one recorded render run.
type RunRecord struct {
	RunID      int64     `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
	InputPath  string    `json:"input_path"`
	Rows       int       `json:"rows"`
	Outputs    string    `json:"outputs"` // comma-separated written paths
}

// RunStatus holds status information about the run-history store.
type RunStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Location  string          `json:"location"`
	RunCount  int             `json:"run_count"`
	LastRun   *time.Time      `json:"last_run,omitempty"`
	SizeBytes int64           `json:"size_bytes"`
}
