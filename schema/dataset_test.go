package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	tests := []struct {
		name    string
		columns map[Column][]float64
		wantErr bool
	}{
		// Valid two-column dataset
		{"valid", map[Column][]float64{ColTime: {0, 1}, ColMass1: {5, 4}}, false},
		// No columns at all
		{"no columns", map[Column][]float64{}, true},
		// A zero-length time series has no defined evolution
		{"empty columns", map[Column][]float64{ColTime: {}, ColMass1: {}}, true},
		// Columns disagreeing on length
		{"ragged columns", map[Column][]float64{ColTime: {0, 1}, ColMass1: {5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataset(tt.columns)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 2, ds.Len())
			}
		})
	}
}

func TestDatasetSeries(t *testing.T) {
	ds, err := NewDataset(map[Column][]float64{ColTime: {0, 1, 2}})
	require.NoError(t, err)

	values, err := ds.Series(ColTime)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, values)

	_, err = ds.Series(ColMass1)
	assert.Error(t, err, "a missing key should surface as an error")
	assert.False(t, ds.HasColumn(ColMass1))
}

func TestDatasetTypeCodes(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		want    []int
		wantErr bool
	}{
		// Plain integral codes convert cleanly
		{"valid codes", []float64{0, 13, 15}, []int{0, 13, 15}, false},
		// A fractional value means the column is not a type code
		{"fractional", []float64{1.5}, nil, true},
		// Codes outside the taxonomy are rejected
		{"too large", []float64{16}, nil, true},
		{"negative", []float64{-1}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataset(map[Column][]float64{ColStellarType1: tt.values})
			require.NoError(t, err)

			codes, err := ds.TypeCodes(ColStellarType1)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, codes)
			}
		})
	}
}

func TestStellarTypeNamesIsolated(t *testing.T) {
	// Callers get a fresh copy each time, so rewriting the merge entries
	// cannot leak into later calls.
	names := StellarTypeNames()
	names[0] = MergedMSName
	names[1] = MergedMSName

	fresh := StellarTypeNames()
	assert.Equal(t, "MS<0.7Msun", fresh[0])
	assert.Equal(t, "MS>=0.7Msun", fresh[1])
	assert.Len(t, fresh, NumStellarTypes)
}
