package topsis

// IdealPoints derives the ideal and anti-ideal reference points from the
// weighted matrix. For a benefit column the ideal is the column maximum and
// the anti-ideal the minimum; for a cost column the selection flips.
// For every column ideal_j >= antiIdeal_j holds under a benefit impact and
// ideal_j <= antiIdeal_j under a cost impact, with equality only when the
// column is constant.
func IdealPoints(m Matrix, impacts []Impact) (ideal, antiIdeal []float64) {
	ideal = make([]float64, m.Cols)
	antiIdeal = make([]float64, m.Cols)

	for j := 0; j < m.Cols; j++ {
		min, max := m.At(0, j), m.At(0, j)
		for i := 1; i < m.Rows; i++ {
			v := m.At(i, j)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if impacts[j] == Benefit {
			ideal[j], antiIdeal[j] = max, min
		} else {
			ideal[j], antiIdeal[j] = min, max
		}
	}
	return ideal, antiIdeal
}
