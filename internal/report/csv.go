// Package report serializes analysis results for the CLI and the HTTP
// layer: CSV output files, a fixed-width text table, and a small
// filesystem store backing the download endpoint.
package report

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rankworks/criterium/internal/topsis"
)

// RenderCSV renders the result table as CSV: the original columns followed
// by "Topsis Score" (six decimals) and "Rank".
func RenderCSV(res *topsis.Result) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(res.Columns)
	for _, row := range res.Rows {
		record := make([]string, 0, len(row.Cells)+2)
		record = append(record, row.Cells...)
		record = append(record,
			strconv.FormatFloat(row.Score, 'f', 6, 64),
			strconv.Itoa(row.Rank),
		)
		_ = w.Write(record)
	}
	w.Flush()
	return sb.String()
}
