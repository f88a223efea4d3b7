// SPDX-License-Identifier: MIT

package tally

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/condorcet/matrix"
)

const (
	opAt      = "At"
	opMargins = "Margins"
)

// pairAt builds the pair view for valid indices.
func (m *Matrix[O, T]) pairAt(i, j int) Pair[O, T] {
	a, _ := m.cells.At(i, j) // indices validated by callers
	b, _ := m.cells.At(j, i)

	return Pair[O, T]{A: m.order[i], B: m.order[j], CountA: a, CountB: b}
}

// isWin reports count(i,j) > count(j,i) for valid indices.
func (m *Matrix[O, T]) isWin(i, j int) bool {
	a, _ := m.cells.At(i, j)
	b, _ := m.cells.At(j, i)

	return a.Cmp(b) > 0
}

// Get returns the pair view for options a and b.
//
// Errors: ErrUnknownOption (ErrNotFound).
func (m *Matrix[O, T]) Get(a, b O) (Pair[O, T], error) {
	i, j, err := m.indices(a, b)
	if err != nil {
		return Pair[O, T]{}, err
	}

	return m.pairAt(i, j), nil
}

// At returns the pair view for indices i and j.
//
// Errors: ErrOutOfRange (ErrNotFound).
func (m *Matrix[O, T]) At(i, j int) (Pair[O, T], error) {
	n := len(m.order)
	if i < 0 || i >= n || j < 0 || j >= n {
		return Pair[O, T]{}, notFound(opAt, fmt.Errorf("(%d,%d) not in [0,%d): %w", i, j, n, ErrOutOfRange))
	}

	return m.pairAt(i, j), nil
}

// Count returns cell(a,b): the support for a over b.
func (m *Matrix[O, T]) Count(a, b O) (T, error) {
	p, err := m.Get(a, b)

	return p.CountA, err
}

// IsWin reports whether a has strictly more support over b than b over a.
// IsWin(a,b) and IsWin(b,a) are never both true.
func (m *Matrix[O, T]) IsWin(a, b O) (bool, error) {
	i, j, err := m.indices(a, b)
	if err != nil {
		return false, err
	}

	return m.isWin(i, j), nil
}

func (m *Matrix[O, T]) indices(a, b O) (int, int, error) {
	i, err := m.Index(a)
	if err != nil {
		return 0, 0, err
	}
	j, err := m.Index(b)
	if err != nil {
		return 0, 0, err
	}

	return i, j, nil
}

// Pairs yields every ordered pair (i ≠ j) in row-major option order.
// Each unordered pair therefore appears twice, once from each side.
func (m *Matrix[O, T]) Pairs() iter.Seq[Pair[O, T]] {
	return func(yield func(Pair[O, T]) bool) {
		n := len(m.order)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !yield(m.pairAt(i, j)) {
					return
				}
			}
		}
	}
}

// Margins returns the signed margin matrix: cell(i,j) = count(i,j) − count(j,i).
// The result is antisymmetric and keeps a zero diagonal.
func (m *Matrix[O, T]) Margins() *Matrix[O, T] {
	tr, err := matrix.Transpose(m.cells)
	if err != nil {
		panic(fmt.Sprintf("tally: %s: %v", opMargins, err)) // unreachable: cells is non-nil and square
	}
	diff, err := matrix.Sub(m.cells, tr)
	if err != nil {
		panic(fmt.Sprintf("tally: %s: %v", opMargins, err))
	}

	return m.derive(diff)
}
