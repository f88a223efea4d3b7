// SPDX-License-Identifier: MIT

package ballot

import (
	"cmp"

	"github.com/katalvlaran/condorcet/count"
)

// Preference is the outcome of comparing option A with option B.
// Its integer value doubles as a comparator result: PreferA sorts first.
type Preference int8

const (
	// PreferA means A is preferred over B.
	PreferA Preference = -1

	// Tied means neither option is preferred.
	Tied Preference = 0

	// PreferB means B is preferred over A.
	PreferB Preference = 1
)

// comparisonLookup maps sign(x)+1 to a Preference. Both constructors go
// through it so rank and count comparisons always agree.
var comparisonLookup = [3]Preference{PreferA, Tied, PreferB}

func fromComparison(c int) Preference {
	return comparisonLookup[cmp.Compare(c, 0)+1]
}

// FromCounts derives a Preference from the support for A and for B.
// PreferA iff countA > countB, PreferB iff countB > countA, else Tied.
func FromCounts[T count.Number[T]](countA, countB T) Preference {
	return fromComparison(countB.Cmp(countA))
}

// FromRanks derives a Preference from two ranks (lower rank wins).
func FromRanks(rankA, rankB int) Preference {
	return fromComparison(cmp.Compare(rankA, rankB))
}

// Comparison returns -1, 0 or +1 for use as a three-way comparator.
func (p Preference) Comparison() int {
	return int(p)
}

// String implements fmt.Stringer.
func (p Preference) String() string {
	switch p {
	case PreferA:
		return "PreferA"
	case PreferB:
		return "PreferB"
	case Tied:
		return "Tied"
	default:
		return "Preference(?)"
	}
}
