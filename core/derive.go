package core

import "fmt"

// TotalMass returns the element-wise sum of both bodies' mass histories.
func TotalMass(mass1, mass2 []float64) ([]float64, error) {
	if len(mass1) != len(mass2) {
		return nil, fmt.Errorf("mass histories differ in length: %d vs %d", len(mass1), len(mass2))
	}
	total := make([]float64, len(mass1))
	for i := range mass1 {
		total[i] = mass1[i] + mass2[i]
	}
	return total, nil
}

// RocheRatio returns the element-wise ratio of stellar radius to Roche-lobe
// radius. A ratio of 1 means the star fills its Roche lobe.
func RocheRatio(radius, rocheLobe []float64) ([]float64, error) {
	if len(radius) != len(rocheLobe) {
		return nil, fmt.Errorf("radius histories differ in length: %d vs %d", len(radius), len(rocheLobe))
	}
	ratio := make([]float64, len(radius))
	for i := range radius {
		ratio[i] = radius[i] / rocheLobe[i]
	}
	return ratio, nil
}
