// SPDX-License-Identifier: MIT

package tally

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/condorcet/matrix"
)

const opBeatPaths = "BeatPaths"

// BeatPaths returns the Schulze beat-path closure of m.
//
// Algorithm:
//  1. p[i,j] = count(i,j) if count(i,j) > count(j,i), else 0.
//  2. For each intermediate i (outermost), each j ≠ i, each k ∉ {i,j}:
//     p[j,k] = max(p[j,k], min(p[j,i], p[i,k])).
//
// In the result p[i,j] > p[j,i] means i's strongest path to j beats j's
// strongest path to i; that relation is transitive, which is what
// OptionsByPreference relies on. Same option order as m; m is untouched.
//
// With WithWorkers(n > 1) the rows of each pass run concurrently.
// Complexity: O(N³) time, O(N²) space.
func (m *Matrix[O, T]) BeatPaths() *Matrix[O, T] {
	p := m.cells.Clone()
	if err := matrix.KeepWinning(p); err != nil {
		panic(fmt.Sprintf("tally: %s: %v", opBeatPaths, err)) // unreachable: cells is square
	}
	if err := matrix.WidestPaths(p, m.opts.workers); err != nil {
		panic(fmt.Sprintf("tally: %s: %v", opBeatPaths, err)) // unreachable: workers >= 1 by WithWorkers
	}
	m.opts.logger.Debug("beat-path closure computed",
		zap.Int("options", len(m.order)),
		zap.Int("workers", m.opts.workers))

	return m.derive(p)
}
