// SPDX-License-Identifier: MIT

package tally

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

const opOptionsByPreference = "OptionsByPreference"

// OptionsByPreference ranks the options into tiers, most preferred first.
//
// Algorithm (undefeated-set peeling):
//  1. R = all options.
//  2. While R is non-empty: U = options of R not beaten by any other option
//     of R, where x beats y iff cell(x,y) > cell(y,x). Emit U, remove it from R.
//
// Members of a tier are listed in matrix order; they are tied with each other.
// Call it on a BeatPaths closure. On any other matrix a round may find every
// remaining option beaten (a cycle); that fails with ErrNotTransitive
// (ErrValidation) instead of returning a partial ranking.
// Complexity: O(N³) worst case.
func (m *Matrix[O, T]) OptionsByPreference() ([][]O, error) {
	n := len(m.order)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	var tiers [][]O
	for len(remaining) > 0 {
		var undefeated, rest []int
		for _, x := range remaining {
			if m.beatenWithin(x, remaining) {
				rest = append(rest, x)
			} else {
				undefeated = append(undefeated, x)
			}
		}
		if len(undefeated) == 0 {
			m.opts.logger.Debug("no undefeated option",
				zap.Int("tiers", len(tiers)),
				zap.Int("remaining", len(remaining)))

			return nil, invalid(opOptionsByPreference,
				fmt.Errorf("%d options left after %d tiers: %w", len(remaining), len(tiers), ErrNotTransitive))
		}
		tier := make([]O, len(undefeated))
		for k, x := range undefeated {
			tier[k] = m.order[x]
		}
		tiers = append(tiers, tier)
		remaining = rest
	}
	m.opts.logger.Debug("options ranked", zap.Int("options", n), zap.Int("tiers", len(tiers)))

	return tiers, nil
}

// beatenWithin reports whether some y in set beats x.
func (m *Matrix[O, T]) beatenWithin(x int, set []int) bool {
	for _, y := range set {
		if y != x && m.isWin(y, x) {
			return true
		}
	}

	return false
}

// Wins returns how many options o beats pairwise on this matrix.
func (m *Matrix[O, T]) Wins(o O) (int, error) {
	i, err := m.Index(o)
	if err != nil {
		return 0, err
	}

	return m.winsAt(i), nil
}

func (m *Matrix[O, T]) winsAt(i int) int {
	wins := 0
	for j := range m.order {
		if j != i && m.isWin(i, j) {
			wins++
		}
	}

	return wins
}

// ByMostWins returns the options sorted by descending pairwise wins
// (Copeland-style count), stable with respect to matrix order.
func (m *Matrix[O, T]) ByMostWins() []O {
	idx := make([]int, len(m.order))
	wins := make([]int, len(m.order))
	for i := range idx {
		idx[i] = i
		wins[i] = m.winsAt(i)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(wins[b], wins[a])
	})

	out := make([]O, len(idx))
	for k, i := range idx {
		out[k] = m.order[i]
	}

	return out
}
