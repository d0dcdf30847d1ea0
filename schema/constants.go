package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of tabular output.
	OutputMode string

	// ImageFormat represents the image format for rendered figures.
	ImageFormat string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string

	// Column represents a named column key in a detailed-evolution dataset.
	Column string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All image formats supported.
const (
	PNGFormat  ImageFormat = "png"
	EPSFormat  ImageFormat = "eps"
	BothFormat ImageFormat = "both" // default
)

// All run-history backends supported.
const (
	SQLiteBackend DatabaseBackend = "sqlite" // default
	NoneBackend   DatabaseBackend = "none"
)

// Column keys of a COMPAS detailed-evolution dataset. The names follow the
// upstream output files verbatim, parentheses and pipes included.
const (
	ColTime          Column = "Time"
	ColMass1         Column = "Mass(1)"
	ColMass2         Column = "Mass(2)"
	ColMassHeCore1   Column = "Mass_He_Core(1)"
	ColMassHeCore2   Column = "Mass_He_Core(2)"
	ColMassCOCore1   Column = "Mass_CO_Core(1)"
	ColMassCOCore2   Column = "Mass_CO_Core(2)"
	ColSemiMajorAxis Column = "SemiMajorAxis"
	ColRadius1       Column = "Radius(1)"
	ColRadius2       Column = "Radius(2)"
	ColRadiusRL1     Column = "Radius(1)|RL"
	ColRadiusRL2     Column = "Radius(2)|RL"
	ColEccentricity  Column = "Eccentricity"
	ColStellarType1  Column = "Stellar_Type(1)"
	ColStellarType2  Column = "Stellar_Type(2)"
)

// RequiredColumns lists every column a dataset must provide, in display order.
var RequiredColumns = []Column{
	ColTime,
	ColMass1,
	ColMass2,
	ColMassHeCore1,
	ColMassHeCore2,
	ColMassCOCore1,
	ColMassCOCore2,
	ColSemiMajorAxis,
	ColRadius1,
	ColRadius2,
	ColRadiusRL1,
	ColRadiusRL2,
	ColEccentricity,
	ColStellarType1,
	ColStellarType2,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidImageFormats lists all valid image formats.
var ValidImageFormats = map[ImageFormat]struct{}{
	PNGFormat:  {},
	EPSFormat:  {},
	BothFormat: {},
}

// ValidRunBackends lists all valid run-history backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend: {},
	NoneBackend:   {},
}

// DefaultInputPath is where COMPAS leaves the first detailed-output file,
// relative to the working directory.
const DefaultInputPath = "COMPAS_Output/Detailed_Output/BSE_Detailed_Output_0.parquet"

// Fixed basenames of the rendered figure.
const (
	FigurePNGName = "detailed_evolution.png"
	FigureEPSName = "detailed_evolution.eps"
)
