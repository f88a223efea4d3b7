// SPDX-License-Identifier: MIT

package ballot

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/condorcet/count"
)

// Ranked is a ballot built from explicit integer ranks.
// The rank map is fixed at construction; the weight changes only via Rescale.
type Ranked[O comparable, T count.Number[T]] struct {
	ranks  map[O]int
	weight T
}

// Compile-time assertion.
var _ Ballot[string, count.Rat] = (*Ranked[string, count.Rat])(nil)

// New returns a ballot from an option→rank map (lower is better).
// The map is copied.
func New[O comparable, T count.Number[T]](ranks map[O]int, weight T) *Ranked[O, T] {
	return &Ranked[O, T]{ranks: maps.Clone(ranks), weight: weight}
}

// FromGroups returns a ballot from tie groups in decreasing preference:
// every option of groups[0] gets rank 1, groups[1] rank 2, and so on.
// Empty groups still consume a rank.
//
// Errors: ErrDuplicateOption if an option appears twice anywhere.
func FromGroups[O comparable, T count.Number[T]](groups [][]O, weight T) (*Ranked[O, T], error) {
	ranks := make(map[O]int)
	for g, group := range groups {
		for _, o := range group {
			if _, dup := ranks[o]; dup {
				return nil, fmt.Errorf("FromGroups: %v: %w", o, ErrDuplicateOption)
			}
			ranks[o] = g + 1
		}
	}

	return &Ranked[O, T]{ranks: ranks, weight: weight}, nil
}

// Rank compares a and b on this ballot.
func (b *Ranked[O, T]) Rank(x, y O) (Preference, bool) {
	rx, ok := b.ranks[x]
	if !ok {
		return Tied, false
	}
	ry, ok := b.ranks[y]
	if !ok {
		return Tied, false
	}

	return FromRanks(rx, ry), true
}

// Compare is Compare(b, x, y); it panics on unranked pairs.
func (b *Ranked[O, T]) Compare(x, y O) int {
	return Compare[O](b, x, y)
}

// RankOf returns the rank assigned to o.
func (b *Ranked[O, T]) RankOf(o O) (int, bool) {
	r, ok := b.ranks[o]

	return r, ok
}

// Len returns the number of ranked options.
func (b *Ranked[O, T]) Len() int {
	return len(b.ranks)
}

// Groups returns the ranked options as tie groups, most preferred first.
// Order inside a group is unspecified.
func (b *Ranked[O, T]) Groups() [][]O {
	byRank := make(map[int][]O)
	for o, r := range b.ranks {
		byRank[r] = append(byRank[r], o)
	}
	levels := slices.Sorted(maps.Keys(byRank))

	out := make([][]O, 0, len(levels))
	for _, r := range levels {
		out = append(out, byRank[r])
	}

	return out
}

// Weight returns the current ballot weight.
func (b *Ranked[O, T]) Weight() T {
	return b.weight
}

// Rescale multiplies the weight by multiplier in place.
// Not safe for concurrent use with Weight.
func (b *Ranked[O, T]) Rescale(multiplier T) {
	b.weight = b.weight.Mul(multiplier)
}
