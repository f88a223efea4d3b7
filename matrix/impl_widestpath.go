// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense widest-path (bottleneck / max-min) closure with a
//     deterministic loop order. This is Floyd–Warshall over the (max, min)
//     semiring: the strength of a path is its weakest link and the closure
//     keeps the strongest path between every ordered pair.
//   - In-place, O(n³) time, O(1) extra space on the sequential path.
//
// Contract:
//   - Square matrix; 0 means "no link"; the diagonal is never read or written.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/condorcet/count"
)

const (
	opKeepWinning = "KeepWinning"
	opWidestPaths = "WidestPaths"
)

// KeepWinning rewrites m in place so that each off-diagonal cell keeps its
// value only when it strictly exceeds its mirror cell, otherwise zero:
//
//	m[i,j] = m[i,j] if m[i,j] > m[j,i] else 0
//
// Ties and losing directions are discarded. Both mirror cells are decided
// from the original values, so the result does not depend on loop order.
// Complexity: O(n²).
func KeepWinning[T count.Number[T]](m *Dense[T]) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opKeepWinning, err)
	}

	n := m.r
	zero := count.Zero[T]()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ij, ji := m.at(i, j), m.at(j, i)
			switch ij.Cmp(ji) {
			case 1:
				m.set(j, i, zero)
			case -1:
				m.set(i, j, zero)
			default:
				m.set(i, j, zero)
				m.set(j, i, zero)
			}
		}
	}

	return nil
}

// relaxRow performs one row j of intermediate pass i:
//
//	m[j,k] = max(m[j,k], min(m[j,i], m[i,k]))   for k ∉ {i, j}
//
// During pass i, row i and column i are only read (j ≠ i and k ≠ i), so rows
// of the same pass touch disjoint cells.
func relaxRow[T count.Number[T]](m *Dense[T], i, j int) {
	n := m.c
	ji := m.at(j, i)
	baseI, baseJ := i*n, j*n
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		cand := count.Min(ji, m.data[baseI+k])
		if cand.Cmp(m.data[baseJ+k]) > 0 {
			m.data[baseJ+k] = cand
		}
	}
}

// widestPathsSequential runs the closure with the fixed i → j → k order.
func widestPathsSequential[T count.Number[T]](m *Dense[T]) {
	n := m.r
	for i := 0; i < n; i++ { // outer: intermediate
		for j := 0; j < n; j++ { // middle: source
			if j == i {
				continue
			}
			relaxRow(m, i, j)
		}
	}
}

// widestPathsParallel fans the rows of each intermediate pass out over at
// most workers goroutines. Passes stay strictly sequential: pass i+1 starts
// only after every row of pass i has been written.
func widestPathsParallel[T count.Number[T]](m *Dense[T], workers int) error {
	n := m.r
	for i := 0; i < n; i++ {
		var g errgroup.Group
		g.SetLimit(workers)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			g.Go(func() error {
				relaxRow(m, i, j)

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("pass %d: %w", i, err)
		}
	}

	return nil
}

// WidestPaths computes the all-pairs widest-path closure of m in place.
//
// Contract:
//   - m must be square. Beat-path strengths are expected to be ≥ 0 with 0
//     meaning "no link" (run KeepWinning first to obtain such a matrix from
//     pairwise counts); the relaxation itself is valid for any ordered values.
//   - workers ≥ 1; with workers == 1 the kernel is fully sequential.
//
// Determinism:
//   - The intermediate index is always the outermost loop. Within a pass the
//     rows are independent, so the parallel result equals the sequential one.
//
// Complexity: Time O(n³), Extra space O(1) sequential, O(workers) goroutines parallel.
func WidestPaths[T count.Number[T]](m *Dense[T], workers int) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opWidestPaths, err)
	}
	if workers < 1 {
		return matrixErrorf(opWidestPaths, ErrWorkers)
	}
	if workers == 1 || m.r < 3 {
		widestPathsSequential(m)

		return nil
	}
	if err := widestPathsParallel(m, workers); err != nil {
		return matrixErrorf(opWidestPaths, err)
	}

	return nil
}
