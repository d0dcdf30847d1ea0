package schema

import (
	"fmt"
	"math"
)

// Dataset holds the named numeric columns of one detailed-evolution run.
// All columns share the same length and implicit time index.
type Dataset struct {
	columns map[Column][]float64
	length  int
}

// NewDataset builds a Dataset from named columns. Every column must have the
// same nonzero length; a zero-length dataset has no defined evolution and is
// rejected here rather than at plot time.
func NewDataset(columns map[Column][]float64) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}

	length := -1
	for key, values := range columns {
		if length == -1 {
			length = len(values)
		} else if len(values) != length {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", key, len(values), length)
		}
	}
	if length == 0 {
		return nil, fmt.Errorf("dataset is empty (0 time steps)")
	}

	return &Dataset{columns: columns, length: length}, nil
}

// Len returns the number of time steps in the dataset.
func (d *Dataset) Len() int {
	return d.length
}

// Series returns the named column, or an error if the key is absent.
func (d *Dataset) Series(key Column) ([]float64, error) {
	values, ok := d.columns[key]
	if !ok {
		return nil, fmt.Errorf("dataset has no column %q", key)
	}
	return values, nil
}

// TypeCodes returns the named column converted to integer stellar-type codes.
// Non-integral values and codes outside [0, NumStellarTypes) are rejected so a
// corrupt column fails here instead of producing a wrong tick label.
func (d *Dataset) TypeCodes(key Column) ([]int, error) {
	values, err := d.Series(key)
	if err != nil {
		return nil, err
	}

	codes := make([]int, len(values))
	for i, v := range values {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("column %q row %d: %v is not an integer type code", key, i, v)
		}
		code := int(v)
		if code < 0 || code >= NumStellarTypes {
			return nil, fmt.Errorf("column %q row %d: type code %d outside [0, %d)", key, i, code, NumStellarTypes)
		}
		codes[i] = code
	}
	return codes, nil
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(key Column) bool {
	_, ok := d.columns[key]
	return ok
}
