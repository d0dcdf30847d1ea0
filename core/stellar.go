package core

import (
	"fmt"
	"sort"

	"github.com/orbitlab/binplot/schema"
)

// TypeUsage describes the stellar types that actually occur in one run.
// It compacts the fixed 16-entry Hurley taxonomy down to the observed subset
// so the type-history axis only carries labels that appear in the data.
type TypeUsage struct {
	// Names is the full category-name list, with the two main-sequence
	// entries merged when the XOR rule applies.
	Names []string

	// Observed is the sorted distinct set of raw codes seen across both
	// bodies' histories.
	Observed []int

	rank map[int]int
}

// BuildTypeUsage extracts the observed stellar types from both bodies'
// histories. The inputs may differ in length but their union must be
// nonempty, and every code must be a valid Hurley type.
//
// Merge rule: when exactly one of the two main-sequence codes {0, 1} occurs,
// both name entries collapse to "MS" so the axis does not show a misleading
// second main-sequence label.
func BuildTypeUsage(types1, types2 []int) (*TypeUsage, error) {
	if len(types1) == 0 && len(types2) == 0 {
		return nil, fmt.Errorf("no stellar types observed: both histories are empty")
	}

	seen := make(map[int]struct{})
	for _, seq := range [][]int{types1, types2} {
		for i, code := range seq {
			if code < 0 || code >= schema.NumStellarTypes {
				return nil, fmt.Errorf("stellar type code %d at step %d outside [0, %d)", code, i, schema.NumStellarTypes)
			}
			seen[code] = struct{}{}
		}
	}

	observed := make([]int, 0, len(seen))
	for code := range seen {
		observed = append(observed, code)
	}
	sort.Ints(observed)

	names := schema.StellarTypeNames()
	_, has0 := seen[0]
	_, has1 := seen[1]
	if has0 != has1 { // XOR: only one main-sequence flavor occurs
		names[0] = schema.MergedMSName
		names[1] = schema.MergedMSName
	}

	rank := make(map[int]int, len(observed))
	for i, code := range observed {
		rank[code] = i
	}

	return &TypeUsage{Names: names, Observed: observed, rank: rank}, nil
}

// Rank returns the 0-based position of a raw code within the sorted observed
// set. A code that never occurred in the run is an error, not a neighboring
// rank.
func (u *TypeUsage) Rank(code int) (int, error) {
	r, ok := u.rank[code]
	if !ok {
		return 0, fmt.Errorf("stellar type code %d was not observed in this run", code)
	}
	return r, nil
}

// RankSeries maps a whole type-code history through Rank.
func (u *TypeUsage) RankSeries(codes []int) ([]float64, error) {
	ranks := make([]float64, len(codes))
	for i, code := range codes {
		r, err := u.Rank(code)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		ranks[i] = float64(r)
	}
	return ranks, nil
}

// ObservedNames returns the display name for each observed code, in rank
// order. These are the tick labels of the type-history panel.
func (u *TypeUsage) ObservedNames() []string {
	names := make([]string, len(u.Observed))
	for i, code := range u.Observed {
		names[i] = u.Names[code]
	}
	return names
}
