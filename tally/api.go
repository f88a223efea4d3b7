// SPDX-License-Identifier: MIT
// Package tally — public API facades.
//
// Purpose:
//   - Thin entry points that chain aggregation → closure → ranking.
//   - No logic duplication: each facade delegates to the canonical method.

package tally

import (
	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/count"
)

// Schulze tallies ballots over options and returns the Schulze tiers,
// most preferred first.
//
//	tiers, err := tally.Schulze[string, count.Rat](options, ballots, tally.WithWorkers(4))
func Schulze[O comparable, T count.Number[T], B ballot.Ballot[O, T]](
	options []O, ballots []B, opts ...Option,
) ([][]O, error) {
	m, err := WeightedPreferential[O, T](options, ballots, opts...)
	if err != nil {
		return nil, err
	}

	return m.BeatPaths().OptionsByPreference()
}

// Winners returns the first Schulze tier: one option, or several when tied.
// It is empty only when options is empty.
func Winners[O comparable, T count.Number[T], B ballot.Ballot[O, T]](
	options []O, ballots []B, opts ...Option,
) ([]O, error) {
	tiers, err := Schulze[O, T](options, ballots, opts...)
	if err != nil || len(tiers) == 0 {
		return nil, err
	}

	return tiers[0], nil
}
