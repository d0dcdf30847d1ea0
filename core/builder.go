package core

import (
	"fmt"

	"github.com/orbitlab/binplot/schema"
)

// BuildFigureData derives every series the four-panel figure needs from one
// loaded dataset. All derivations happen here; chart code only draws.
func BuildFigureData(ds *schema.Dataset) (*schema.FigureData, error) {
	series := make(map[schema.Column][]float64, len(schema.RequiredColumns))
	for _, key := range schema.RequiredColumns {
		values, err := ds.Series(key)
		if err != nil {
			return nil, err
		}
		series[key] = values
	}

	totalMass, err := TotalMass(series[schema.ColMass1], series[schema.ColMass2])
	if err != nil {
		return nil, fmt.Errorf("deriving total mass: %w", err)
	}

	roche1, err := RocheRatio(series[schema.ColRadius1], series[schema.ColRadiusRL1])
	if err != nil {
		return nil, fmt.Errorf("deriving Roche ratio for body 1: %w", err)
	}
	roche2, err := RocheRatio(series[schema.ColRadius2], series[schema.ColRadiusRL2])
	if err != nil {
		return nil, fmt.Errorf("deriving Roche ratio for body 2: %w", err)
	}

	types1, err := ds.TypeCodes(schema.ColStellarType1)
	if err != nil {
		return nil, err
	}
	types2, err := ds.TypeCodes(schema.ColStellarType2)
	if err != nil {
		return nil, err
	}

	usage, err := BuildTypeUsage(types1, types2)
	if err != nil {
		return nil, err
	}
	rank1, err := usage.RankSeries(types1)
	if err != nil {
		return nil, fmt.Errorf("ranking types for body 1: %w", err)
	}
	rank2, err := usage.RankSeries(types2)
	if err != nil {
		return nil, fmt.Errorf("ranking types for body 2: %w", err)
	}

	return &schema.FigureData{
		Time:          series[schema.ColTime],
		TotalMass:     totalMass,
		Mass1:         series[schema.ColMass1],
		MassHe1:       series[schema.ColMassHeCore1],
		MassCO1:       series[schema.ColMassCOCore1],
		Mass2:         series[schema.ColMass2],
		MassHe2:       series[schema.ColMassHeCore2],
		MassCO2:       series[schema.ColMassCOCore2],
		SemiMajorAxis: series[schema.ColSemiMajorAxis],
		Radius1:       series[schema.ColRadius1],
		Radius2:       series[schema.ColRadius2],
		RocheRatio1:   roche1,
		RocheRatio2:   roche2,
		Eccentricity:  series[schema.ColEccentricity],
		TypeRank1:     rank1,
		TypeRank2:     rank2,
		TypeLabels:    usage.ObservedNames(),
	}, nil
}

// BuildDerived packs the derived series into export records.
func BuildDerived(ds *schema.Dataset) ([]schema.DerivedRecord, error) {
	fig, err := BuildFigureData(ds)
	if err != nil {
		return nil, err
	}

	records := make([]schema.DerivedRecord, len(fig.Time))
	for i := range fig.Time {
		records[i] = schema.DerivedRecord{
			Time:        fig.Time[i],
			TotalMass:   fig.TotalMass[i],
			RocheRatio1: fig.RocheRatio1[i],
			RocheRatio2: fig.RocheRatio2[i],
			TypeRank1:   int32(fig.TypeRank1[i]),
			TypeRank2:   int32(fig.TypeRank2[i]),
		}
	}
	return records, nil
}

// BuildSummary computes per-column statistics and the observed stellar types
// for one dataset.
func BuildSummary(ds *schema.Dataset, inputPath string) (schema.SummaryResult, error) {
	var result schema.SummaryResult

	stats := make([]schema.ColumnStats, 0, len(schema.RequiredColumns))
	for _, key := range schema.RequiredColumns {
		values, err := ds.Series(key)
		if err != nil {
			return result, err
		}
		cs := schema.ColumnStats{Column: key, Min: values[0], Max: values[0], First: values[0], Last: values[len(values)-1]}
		for _, v := range values {
			if v < cs.Min {
				cs.Min = v
			}
			if v > cs.Max {
				cs.Max = v
			}
		}
		stats = append(stats, cs)
	}

	types1, err := ds.TypeCodes(schema.ColStellarType1)
	if err != nil {
		return result, err
	}
	types2, err := ds.TypeCodes(schema.ColStellarType2)
	if err != nil {
		return result, err
	}
	usage, err := BuildTypeUsage(types1, types2)
	if err != nil {
		return result, err
	}

	timeSeries, err := ds.Series(schema.ColTime)
	if err != nil {
		return result, err
	}

	result = schema.SummaryResult{
		InputPath:     inputPath,
		Rows:          ds.Len(),
		TimeStart:     timeSeries[0],
		TimeEnd:       timeSeries[len(timeSeries)-1],
		Columns:       stats,
		ObservedTypes: usage.Observed,
		TypeNames:     usage.ObservedNames(),
	}
	return result, nil
}
