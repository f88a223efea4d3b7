// SPDX-License-Identifier: MIT

package tally

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/matrix"
)

const (
	opWeightedPreferential = "WeightedPreferential"
	opPreferential         = "Preferential"
)

// indicator returns the unweighted pairwise matrix of one ballot:
// cell(i,j) = 1 when the ballot ranks options[i] strictly above options[j].
// Unranked pairs contribute nothing; the diagonal is never evaluated.
func indicator[O comparable, T count.Number[T]](options []O, r ballot.Ranking[O]) *matrix.Dense[T] {
	n := len(options)
	out, _ := matrix.NewDense[T](n, n) // n >= 0
	one := count.One[T]()
	for i, a := range options {
		for j, b := range options {
			if i == j {
				continue
			}
			if p, ok := r.Rank(a, b); ok && p == ballot.PreferA {
				_ = out.Set(i, j, one) // in range by construction
			}
		}
	}

	return out
}

// isNil reports a nil ballot, including typed nil pointers in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// WeightedPreferential folds ballots into a preference matrix over options.
//
// For every ballot: build its indicator matrix, scale it by the ballot weight,
// and add it to the running sum that starts at zero. Options a ballot leaves
// unranked receive nothing from it. Ballots may mention options outside the
// list; those are ignored.
//
// T cannot be inferred from B, so instantiate explicitly:
//
//	m, err := tally.WeightedPreferential[string, count.Rat](options, ballots)
//
// Errors (ErrValidation): ErrDuplicateOption, ErrNilBallot.
func WeightedPreferential[O comparable, T count.Number[T], B ballot.Ballot[O, T]](
	options []O, ballots []B, opts ...Option,
) (*Matrix[O, T], error) {
	o := gatherOptions(opts...)
	n := len(options)

	scaled := make([]*matrix.Dense[T], 0, len(ballots))
	for k, b := range ballots {
		if isNil(b) {
			return nil, invalid(opWeightedPreferential, fmt.Errorf("ballot %d: %w", k, ErrNilBallot))
		}
		s, err := matrix.Scale(indicator[O, T](options, b), b.Weight())
		if err != nil {
			return nil, invalid(opWeightedPreferential, err)
		}
		scaled = append(scaled, s)
	}
	sum, err := matrix.Sum(n, n, scaled...)
	if err != nil {
		return nil, invalid(opWeightedPreferential, err)
	}
	o.logger.Debug("ballots aggregated",
		zap.Int("options", n),
		zap.Int("ballots", len(ballots)))

	return build(opWeightedPreferential, options, sum, o)
}

// Preferential is WeightedPreferential for plain rankings: every ballot
// counts once.
func Preferential[O comparable, T count.Number[T], R ballot.Ranking[O]](
	options []O, ballots []R, opts ...Option,
) (*Matrix[O, T], error) {
	o := gatherOptions(opts...)
	n := len(options)

	parts := make([]*matrix.Dense[T], 0, len(ballots))
	for k, r := range ballots {
		if isNil(r) {
			return nil, invalid(opPreferential, fmt.Errorf("ballot %d: %w", k, ErrNilBallot))
		}
		parts = append(parts, indicator[O, T](options, r))
	}
	sum, err := matrix.Sum(n, n, parts...)
	if err != nil {
		return nil, invalid(opPreferential, err)
	}
	o.logger.Debug("ballots aggregated",
		zap.Int("options", n),
		zap.Int("ballots", len(ballots)))

	return build(opPreferential, options, sum, o)
}
