package topsis

// Impact is the optimization direction of one criterion.
type Impact int

const (
	// Benefit means higher raw values are better.
	Benefit Impact = iota
	// Cost means lower raw values are better.
	Cost
)

// ParseImpact maps the wire symbols '+' and '-' to an Impact.
func ParseImpact(sym string) (Impact, error) {
	switch sym {
	case "+":
		return Benefit, nil
	case "-":
		return Cost, nil
	default:
		return 0, ErrInvalidImpact
	}
}

func (im Impact) String() string {
	if im == Cost {
		return "-"
	}
	return "+"
}

// Table is an untyped tabular input: a header row plus string cells.
// The first column holds alternative identifiers, the remaining columns
// hold criterion values. Collaborators (CSV/JSON/XLSX readers, form
// parsers) produce Tables; the core consumes them.
type Table struct {
	Columns []string
	Rows    [][]string
}

// CriterionCount returns the number of criterion columns.
func (t Table) CriterionCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns) - 1
}

// cell returns the cell at (row i, column j), or "" when the row is short.
func (t Table) cell(i, j int) string {
	if j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// DecisionMatrix is the validated, typed form of a Table: a separate
// identifier column plus contiguous numeric criteria storage.
type DecisionMatrix struct {
	Identifiers []string
	Criteria    Matrix
}

// ResultRow is one ranked alternative: the original input cells with the
// closeness score and competition rank attached.
type ResultRow struct {
	Cells []string
	Score float64
	Rank  int
}

// Result is the complete output table of one analysis, sorted by
// ascending rank.
type Result struct {
	Columns []string
	Rows    []ResultRow
}
