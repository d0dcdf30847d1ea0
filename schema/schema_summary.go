package schema

// ColumnStats holds per-column summary statistics for one dataset column.
type ColumnStats struct {
	Column Column  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
}

// SummaryResult holds the dataset summary for one run.
type SummaryResult struct {
	InputPath     string        `json:"input_path"`
	Rows          int           `json:"rows"`
	TimeStart     float64       `json:"time_start"` // Myr
	TimeEnd       float64       `json:"time_end"`   // Myr
	Columns       []ColumnStats `json:"columns"`
	ObservedTypes []int         `json:"observed_types"` // sorted raw codes
	TypeNames     []string      `json:"type_names"`     // display names for ObservedTypes
}
