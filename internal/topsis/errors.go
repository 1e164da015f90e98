package topsis

import "errors"

var (
	// ErrTooFewColumns indicates the input has fewer than three columns
	// (identifier plus at least two criteria).
	ErrTooFewColumns = errors.New("topsis: input must contain three or more columns")
	// ErrNumericIdentifier indicates every identifier parses as a number.
	ErrNumericIdentifier = errors.New("topsis: first column must contain non-numeric identifiers")
	// ErrWeightCountMismatch indicates len(weights) != criterion count.
	ErrWeightCountMismatch = errors.New("topsis: number of weights must match number of criteria")
	// ErrNonPositiveWeight indicates a zero or negative weight.
	ErrNonPositiveWeight = errors.New("topsis: all weights must be positive")
	// ErrImpactCountMismatch indicates len(impacts) != criterion count.
	ErrImpactCountMismatch = errors.New("topsis: number of impacts must match number of criteria")
	// ErrInvalidImpact indicates an impact symbol other than '+' or '-'.
	ErrInvalidImpact = errors.New("topsis: impacts must be '+' (benefit) or '-' (cost)")
	// ErrNonNumericCriterion indicates a criterion cell that does not parse
	// as a number.
	ErrNonNumericCriterion = errors.New("topsis: all criteria columns must contain numeric values")
	// ErrNonPositiveCriterion indicates a zero or negative criterion value.
	ErrNonPositiveCriterion = errors.New("topsis: all criteria values must be positive")
)
