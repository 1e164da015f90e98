package topsis

import "sort"

// Rank runs the full pipeline over the input table: validate, normalize,
// weight, extract reference points, score, rank. The result carries every
// original column plus "Topsis Score" and "Rank", sorted by ascending rank.
// The sort is stable, so tied alternatives keep their input order.
//
// On a validation failure no numeric stage runs and no partial result is
// produced.
func Rank(t Table, weights []float64, impacts []Impact) (*Result, error) {
	dm, err := NewDecisionMatrix(t, weights, impacts)
	if err != nil {
		return nil, err
	}

	weighted := ApplyWeights(Normalize(dm.Criteria), weights)
	ideal, antiIdeal := IdealPoints(weighted, impacts)
	sPlus, sMinus := Separations(weighted, ideal, antiIdeal)
	scores := Scores(sPlus, sMinus)
	ranks := RankScores(scores)

	res := &Result{
		Columns: append(append([]string{}, t.Columns...), "Topsis Score", "Rank"),
		Rows:    make([]ResultRow, len(t.Rows)),
	}
	for i, row := range t.Rows {
		res.Rows[i] = ResultRow{
			Cells: append([]string{}, row...),
			Score: scores[i],
			Rank:  ranks[i],
		}
	}
	sort.SliceStable(res.Rows, func(a, b int) bool {
		return res.Rows[a].Rank < res.Rows[b].Rank
	})
	return res, nil
}
