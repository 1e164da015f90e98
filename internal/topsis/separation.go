package topsis

import "math"

// Separations computes, per alternative, the Euclidean distance to both
// reference points:
//
//	S⁺_i = sqrt(Σ_j (v_ij − ideal_j)²)
//	S⁻_i = sqrt(Σ_j (v_ij − antiIdeal_j)²)
func Separations(m Matrix, ideal, antiIdeal []float64) (sPlus, sMinus []float64) {
	sPlus = make([]float64, m.Rows)
	sMinus = make([]float64, m.Rows)

	for i := 0; i < m.Rows; i++ {
		var dPlus, dMinus float64
		for j := 0; j < m.Cols; j++ {
			v := m.At(i, j)
			dPlus += (v - ideal[j]) * (v - ideal[j])
			dMinus += (v - antiIdeal[j]) * (v - antiIdeal[j])
		}
		sPlus[i] = math.Sqrt(dPlus)
		sMinus[i] = math.Sqrt(dMinus)
	}
	return sPlus, sMinus
}

// Scores computes the closeness score C_i = S⁻_i / (S⁺_i + S⁻_i), always in
// [0,1]. A zero denominator (alternative coincides with both reference
// points, only possible in a degenerate constant matrix) yields 0 rather
// than NaN.
func Scores(sPlus, sMinus []float64) []float64 {
	scores := make([]float64, len(sPlus))
	for i := range sPlus {
		if denom := sPlus[i] + sMinus[i]; denom != 0 {
			scores[i] = sMinus[i] / denom
		}
	}
	return scores
}
