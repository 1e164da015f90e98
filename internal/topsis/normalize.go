package topsis

import "math"

// Normalize rescales each column to unit Euclidean length:
//
//	n_ij = a_ij / sqrt(Σ_i a_ij²)
//
// Precondition: all values are strictly positive (enforced by Validate),
// so no column norm can be zero.
func Normalize(m Matrix) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for j := 0; j < m.Cols; j++ {
		var sumSq float64
		for i := 0; i < m.Rows; i++ {
			v := m.At(i, j)
			sumSq += v * v
		}
		norm := math.Sqrt(sumSq)
		for i := 0; i < m.Rows; i++ {
			out.Set(i, j, m.At(i, j)/norm)
		}
	}
	return out
}
