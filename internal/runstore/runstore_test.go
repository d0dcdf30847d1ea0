package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/orbitlab/binplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*Store)
}

func TestStoreRecordAndList(t *testing.T) {
	store := newTestStore(t)

	first := schema.RunRecord{
		StartedAt:  time.UnixMilli(1000),
		DurationMs: 250,
		InputPath:  "a.parquet",
		Rows:       100,
		Outputs:    "detailed_evolution.png,detailed_evolution.eps",
	}
	second := schema.RunRecord{
		StartedAt:  time.UnixMilli(2000),
		DurationMs: 300,
		InputPath:  "b.csv",
		Rows:       50,
		Outputs:    "detailed_evolution.png",
	}
	require.NoError(t, store.RecordRun(first))
	require.NoError(t, store.RecordRun(second))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, "b.csv", runs[0].InputPath)
	assert.Equal(t, "a.parquet", runs[1].InputPath)
	assert.Equal(t, time.UnixMilli(2000), runs[0].StartedAt)
	assert.Equal(t, int64(300), runs[0].DurationMs)
	assert.Equal(t, 50, runs[0].Rows)

	// Limit applies
	runs, err = store.ListRuns(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStoreStatusAndClear(t *testing.T) {
	store := newTestStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, 0, status.RunCount)
	assert.Nil(t, status.LastRun)

	started := time.UnixMilli(5000)
	require.NoError(t, store.RecordRun(schema.RunRecord{StartedAt: started, InputPath: "a.parquet", Outputs: "x.png"}))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.RunCount)
	require.NotNil(t, status.LastRun)
	assert.Equal(t, started, *status.LastRun)
	assert.Positive(t, status.SizeBytes)

	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.RunCount)
}

func TestNoneBackendIsNoop(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.RecordRun(schema.RunRecord{InputPath: "a.parquet"}))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

func TestMigrateUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	// Up to latest, then all the way back down
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, Migrate(schema.SQLiteBackend, dbPath, 0))

	// Unsupported backend is rejected
	assert.Error(t, Migrate(schema.NoneBackend, "", -1))
}
