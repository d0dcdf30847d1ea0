package schema

// NumStellarTypes is the size of the Hurley stellar-type enumeration.
const NumStellarTypes = 16

// MergedMSName is the label shared by both main-sequence sub-types when only
// one of them occurs in a run.
const MergedMSName = "MS"

// StellarTypeNames returns the ordered list of Hurley stellar-type names.
// Index i is the display name for raw type code i. Callers get a fresh copy
// so the merge rule can rewrite entries without touching a shared slice.
func StellarTypeNames() []string {
	return []string{
		"MS<0.7Msun",  // 0: low-mass main sequence
		"MS>=0.7Msun", // 1: main sequence
		"HG",          // 2: Hertzsprung gap
		"FGB",         // 3: first giant branch
		"CHeB",        // 4: core helium burning
		"EAGB",        // 5: early asymptotic giant branch
		"TPAGB",       // 6: thermally pulsing AGB
		"HeMS",        // 7: helium main sequence
		"HeHG",        // 8: helium Hertzsprung gap
		"HeGB",        // 9: helium giant branch
		"HeWD",        // 10: helium white dwarf
		"COWD",        // 11: carbon-oxygen white dwarf
		"ONeWD",       // 12: oxygen-neon white dwarf
		"NS",          // 13: neutron star
		"BH",          // 14: black hole
		"MR",          // 15: massless remnant
	}
}
