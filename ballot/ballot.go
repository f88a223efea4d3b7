// SPDX-License-Identifier: MIT

package ballot

import "github.com/katalvlaran/condorcet/count"

// Ranking orders options pairwise.
// Rank returns ok=false when either option is unranked.
type Ranking[O comparable] interface {
	Rank(a, b O) (Preference, bool)
}

// Weighted is a ballot with a scalar weight.
// Rescale multiplies the weight in place.
type Weighted[T count.Number[T]] interface {
	Weight() T
	Rescale(multiplier T)
}

// Ballot is what the weighted tally consumes.
type Ballot[O comparable, T count.Number[T]] interface {
	Ranking[O]
	Weighted[T]
}

// Compare adapts r to a three-way comparator (negative when a is preferred),
// suitable for slices.SortFunc over options the ballot fully ranks.
// It panics if the pair is unranked: a total ordering was promised and
// silently treating the pair as tied would hide the bug.
func Compare[O comparable](r Ranking[O], a, b O) int {
	p, ok := r.Rank(a, b)
	if !ok {
		panic(panicUnranked)
	}

	return p.Comparison()
}
