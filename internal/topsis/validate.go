package topsis

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate checks all structural and numeric preconditions on the input
// table, weight vector, and impact vector. Checks run in a fixed order and
// the first violation wins. A nil return means the input is safe to rank.
//
// An input with zero alternative rows fails the identifier check: an empty
// identifier column is vacuously numeric.
func Validate(t Table, weights []float64, impacts []Impact) error {
	if len(t.Columns) < 3 {
		return fmt.Errorf("%w (got %d)", ErrTooFewColumns, len(t.Columns))
	}

	if identifiersNumeric(t) {
		return ErrNumericIdentifier
	}

	criteria := t.CriterionCount()
	if len(weights) != criteria {
		return fmt.Errorf("%w (%d weights, %d criteria)", ErrWeightCountMismatch, len(weights), criteria)
	}
	for _, w := range weights {
		if w <= 0 {
			return fmt.Errorf("%w (got %v)", ErrNonPositiveWeight, w)
		}
	}

	if len(impacts) != criteria {
		return fmt.Errorf("%w (%d impacts, %d criteria)", ErrImpactCountMismatch, len(impacts), criteria)
	}
	for _, im := range impacts {
		if im != Benefit && im != Cost {
			return ErrInvalidImpact
		}
	}

	// Every cell must parse before any positivity verdict: a non-numeric
	// cell anywhere in the table outranks a non-positive one.
	for i := range t.Rows {
		for j := 1; j < len(t.Columns); j++ {
			if _, err := parseCell(t.cell(i, j)); err != nil {
				return fmt.Errorf("%w (row %d, column %q)", ErrNonNumericCriterion, i+1, t.Columns[j])
			}
		}
	}
	for i := range t.Rows {
		for j := 1; j < len(t.Columns); j++ {
			v, _ := parseCell(t.cell(i, j))
			if v <= 0 {
				return fmt.Errorf("%w (row %d, column %q: %v)", ErrNonPositiveCriterion, i+1, t.Columns[j], v)
			}
		}
	}

	return nil
}

// identifiersNumeric reports whether every identifier cell parses as a
// number. True for zero rows.
func identifiersNumeric(t Table) bool {
	for i := range t.Rows {
		if _, err := parseCell(t.cell(i, 0)); err != nil {
			return false
		}
	}
	return true
}

func parseCell(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// NewDecisionMatrix validates the table and builds its typed form. The
// returned matrix holds only criterion values; identifiers live alongside.
func NewDecisionMatrix(t Table, weights []float64, impacts []Impact) (*DecisionMatrix, error) {
	if err := Validate(t, weights, impacts); err != nil {
		return nil, err
	}

	dm := &DecisionMatrix{
		Identifiers: make([]string, len(t.Rows)),
		Criteria:    NewMatrix(len(t.Rows), t.CriterionCount()),
	}
	for i := range t.Rows {
		dm.Identifiers[i] = t.cell(i, 0)
		for j := 0; j < dm.Criteria.Cols; j++ {
			// Validate already proved every cell parses.
			v, _ := parseCell(t.cell(i, j+1))
			dm.Criteria.Set(i, j, v)
		}
	}
	return dm, nil
}
