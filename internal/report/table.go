package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rankworks/criterium/internal/topsis"
)

// RenderTable renders the result as a fixed-width text table for terminal
// output. Columns are sized to their widest cell.
func RenderTable(res *topsis.Result) string {
	records := make([][]string, 0, len(res.Rows)+1)
	records = append(records, res.Columns)
	for _, row := range res.Rows {
		record := make([]string, 0, len(row.Cells)+2)
		record = append(record, row.Cells...)
		record = append(record,
			strconv.FormatFloat(row.Score, 'f', 6, 64),
			strconv.Itoa(row.Rank),
		)
		records = append(records, record)
	}

	widths := make([]int, len(res.Columns))
	for _, record := range records {
		for j, cell := range record {
			if j < len(widths) && len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for _, record := range records {
		for j, cell := range record {
			if j > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%*s", widths[j], cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
