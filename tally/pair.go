// SPDX-License-Identifier: MIT

package tally

import (
	"fmt"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/count"
)

// Pair is a read-only view of the two mirror cells for options A and B.
// Equality is structural: same options and equal counts.
type Pair[O comparable, T count.Number[T]] struct {
	A, B           O
	CountA, CountB T // support for A over B, and for B over A
}

// Preference compares the two counts.
func (p Pair[O, T]) Preference() ballot.Preference {
	return ballot.FromCounts(p.CountA, p.CountB)
}

// Margin returns CountA − CountB.
func (p Pair[O, T]) Margin() T {
	return p.CountA.Sub(p.CountB)
}

// Equal reports structural equality.
func (p Pair[O, T]) Equal(q Pair[O, T]) bool {
	return p.A == q.A && p.B == q.B &&
		p.CountA.Cmp(q.CountA) == 0 && p.CountB.Cmp(q.CountB) == 0
}

// String implements fmt.Stringer.
func (p Pair[O, T]) String() string {
	return fmt.Sprintf("Pair[%v:%v, %v:%v]", p.A, p.CountA, p.B, p.CountB)
}
