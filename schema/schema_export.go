package schema

// DerivedRecord is one time step of the derived series written by export.
type DerivedRecord struct {
	// Time is the simulation time in Myr.
	Time float64 `json:"time" parquet:"time,snappy"`

	// TotalMass is Mass(1)+Mass(2) in solar masses.
	TotalMass float64 `json:"total_mass" parquet:"total_mass,snappy"`

	// RocheRatio1 is Radius(1)/Radius(1)|RL, the Roche-lobe filling factor.
	RocheRatio1 float64 `json:"roche_ratio_1" parquet:"roche_ratio_1,snappy"`

	// RocheRatio2 is Radius(2)/Radius(2)|RL.
	RocheRatio2 float64 `json:"roche_ratio_2" parquet:"roche_ratio_2,snappy"`

	// TypeRank1 is the compacted display rank of Stellar_Type(1).
	TypeRank1 int32 `json:"type_rank_1" parquet:"type_rank_1,snappy"`

	// TypeRank2 is the compacted display rank of Stellar_Type(2).
	TypeRank2 int32 `json:"type_rank_2" parquet:"type_rank_2,snappy"`
}
