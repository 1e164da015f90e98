// Package topsis implements the TOPSIS multi-criteria decision method:
// given a decision matrix of alternatives × criteria, a weight per
// criterion, and a benefit/cost direction per criterion, it produces a
// closeness score in [0,1] and a competition rank for every alternative.
//
// The pipeline is pure and synchronous: validation, vector normalization,
// weighting, ideal/anti-ideal extraction, and separation scoring run in a
// fixed order with no I/O and no shared state. Parsing files and form
// fields into a Table, and serializing the Result, belong to the tabular
// and report packages.
package topsis
