package topsis

// RankScores assigns competition ranks by descending score using the
// "minimum" method: equal scores share the smallest rank of their group,
// and the next distinct score receives 1 + the count of strictly greater
// scores, so ranks are not necessarily contiguous after ties. Rank 1 is
// best. O(n²) pairwise count — fine for typical alternative set sizes.
func RankScores(scores []float64) []int {
	ranks := make([]int, len(scores))
	for i := range scores {
		greater := 0
		for j := range scores {
			if scores[j] > scores[i] {
				greater++
			}
		}
		ranks[i] = greater + 1
	}
	return ranks
}
