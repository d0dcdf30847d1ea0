package schema

// FigureData holds every series the four-panel figure draws, already derived
// and validated. Chart code consumes this without touching the raw dataset.
type FigureData struct {
	Time []float64 // Myr

	// Panel a: masses, in solar masses.
	TotalMass []float64
	Mass1     []float64
	MassHe1   []float64
	MassCO1   []float64
	Mass2     []float64
	MassHe2   []float64
	MassCO2   []float64

	// Panel b: radii, in solar radii (ratios are dimensionless).
	SemiMajorAxis []float64
	Radius1       []float64
	Radius2       []float64
	RocheRatio1   []float64
	RocheRatio2   []float64

	// Panel c.
	Eccentricity []float64

	// Panel d: compacted type ranks plus the tick labels for each rank.
	TypeRank1  []float64
	TypeRank2  []float64
	TypeLabels []string
}
