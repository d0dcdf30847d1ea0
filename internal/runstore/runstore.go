// Package runstore persists render run history in a local SQLite database.
package runstore

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/orbitlab/binplot/internal/contract"
	"github.com/orbitlab/binplot/schema"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// runsTable is the run-history table name.
const runsTable = "binplot_runs"

// Store implements the RunStore interface on database/sql.
type Store struct {
	db       *sql.DB
	backend  schema.DatabaseBackend
	location string
}

var _ contract.RunStore = &Store{} // Compile-time check

// NewStore creates a run-history store with the specified backend. The none
// backend returns a no-op store so callers never branch on it.
func NewStore(backend schema.DatabaseBackend, connStr string) (contract.RunStore, error) {
	switch backend {
	case schema.NoneBackend:
		return &Store{backend: backend}, nil

	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetRunsDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to SQLite database at %q: %w", dbPath, err)
		}
		if err := createRunsTable(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create runs table: %w", err)
		}
		return &Store{db: db, backend: backend, location: dbPath}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

func createRunsTable(db *sql.DB) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			run_id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			input_path TEXT NOT NULL,
			rows INTEGER NOT NULL,
			outputs TEXT NOT NULL
		)`, runsTable)
	_, err := db.Exec(query)
	return err
}

// RecordRun persists one completed render run.
func (s *Store) RecordRun(record schema.RunRecord) error {
	if s.db == nil {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (started_at, duration_ms, input_path, rows, outputs)
		VALUES (?, ?, ?, ?, ?)`, runsTable)
	_, err := s.db.Exec(query,
		record.StartedAt.UnixMilli(), record.DurationMs, record.InputPath, record.Rows, record.Outputs)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns the recorded runs, newest first, up to limit.
func (s *Store) ListRuns(limit int) ([]schema.RunRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf(`
		SELECT run_id, started_at, duration_ms, input_path, rows, outputs
		FROM %s ORDER BY started_at DESC, run_id DESC LIMIT ?`, runsTable)
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.RunRecord
	for rows.Next() {
		var r schema.RunRecord
		var startedMs int64
		if err := rows.Scan(&r.RunID, &startedMs, &r.DurationMs, &r.InputPath, &r.Rows, &r.Outputs); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		r.StartedAt = time.UnixMilli(startedMs)
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetStatus returns status information about the store.
func (s *Store) GetStatus() (schema.RunStatus, error) {
	status := schema.RunStatus{Backend: s.backend, Location: s.location}
	if s.db == nil {
		return status, nil
	}

	var count int
	var lastMs sql.NullInt64
	query := fmt.Sprintf("SELECT COUNT(*), MAX(started_at) FROM %s", runsTable)
	if err := s.db.QueryRow(query).Scan(&count, &lastMs); err != nil {
		return status, fmt.Errorf("failed to query run status: %w", err)
	}
	status.RunCount = count
	if lastMs.Valid {
		last := time.UnixMilli(lastMs.Int64)
		status.LastRun = &last
	}

	if info, err := os.Stat(s.location); err == nil {
		status.SizeBytes = info.Size()
	}
	return status, nil
}

// Clear drops all recorded runs.
func (s *Store) Clear() error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", runsTable)); err != nil {
		return fmt.Errorf("failed to clear runs: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
