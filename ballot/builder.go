// SPDX-License-Identifier: MIT

package ballot

import (
	"fmt"

	"github.com/katalvlaran/condorcet/count"
)

// Builder produces ballots for a fixed option order from parallel rank lists,
// the shape most ballot exports use (one column per candidate).
type Builder[O comparable, T count.Number[T]] struct {
	options []O
}

// NewBuilder returns a Builder for options.
//
// Errors: ErrDuplicateOption if options repeats an entry.
func NewBuilder[O comparable, T count.Number[T]](options []O) (*Builder[O, T], error) {
	seen := make(map[O]struct{}, len(options))
	for _, o := range options {
		if _, dup := seen[o]; dup {
			return nil, fmt.Errorf("NewBuilder: %v: %w", o, ErrDuplicateOption)
		}
		seen[o] = struct{}{}
	}

	return &Builder[O, T]{options: append([]O(nil), options...)}, nil
}

// Ballot returns a unit-weight ballot where options[i] has rank ranks[i].
func (bl *Builder[O, T]) Ballot(ranks []int) (*Ranked[O, T], error) {
	return bl.WeightedBallot(ranks, count.One[T]())
}

// WeightedBallot is Ballot with an explicit weight.
//
// Errors: ErrRankLength if len(ranks) != number of options.
func (bl *Builder[O, T]) WeightedBallot(ranks []int, weight T) (*Ranked[O, T], error) {
	if len(ranks) != len(bl.options) {
		return nil, fmt.Errorf("WeightedBallot: got %d ranks for %d options: %w",
			len(ranks), len(bl.options), ErrRankLength)
	}
	m := make(map[O]int, len(ranks))
	for i, o := range bl.options {
		m[o] = ranks[i]
	}

	return &Ranked[O, T]{ranks: m, weight: weight}, nil
}
