package topsis

// ApplyWeights scales each column j of the normalized matrix by weight_j:
//
//	v_ij = w_j * n_ij
func ApplyWeights(m Matrix, weights []float64) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(i, j, m.At(i, j)*weights[j])
		}
	}
	return out
}
