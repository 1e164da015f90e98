package tabular

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rankworks/criterium/internal/topsis"
)

var (
	// ErrEmptyWeights indicates a weight string with no usable segments.
	ErrEmptyWeights = errors.New("tabular: weights cannot be empty")
	// ErrEmptyImpacts indicates an impact string with no usable segments.
	ErrEmptyImpacts = errors.New("tabular: impacts cannot be empty")
)

// ParseWeights parses a comma-separated weight string like "1,1,1,2".
// Blank segments are skipped. Positivity is left to the core validator;
// only well-formed numbers are required here.
func ParseWeights(s string) ([]float64, error) {
	var weights []float64
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		w, err := strconv.ParseFloat(seg, 64)
		if err != nil {
			return nil, fmt.Errorf("tabular: weights must be valid numbers, e.g. \"1,2,3\": bad segment %q", seg)
		}
		weights = append(weights, w)
	}
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}
	return weights, nil
}

// ParseImpacts parses a comma-separated impact string like "+,+,-,+".
// A string of bare symbols with the commas forgotten ("++-+") is accepted
// by inserting them.
func ParseImpacts(s string) ([]topsis.Impact, error) {
	if !strings.Contains(s, ",") && strings.ContainsAny(s, "+-") {
		s = strings.Join(strings.Split(strings.ReplaceAll(s, " ", ""), ""), ",")
	}

	var impacts []topsis.Impact
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		im, err := topsis.ParseImpact(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: got %q, use only '+' or '-', e.g. \"+,+,-,+\"", topsis.ErrInvalidImpact, seg)
		}
		impacts = append(impacts, im)
	}
	if len(impacts) == 0 {
		return nil, ErrEmptyImpacts
	}
	return impacts, nil
}
