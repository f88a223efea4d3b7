// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/condorcet/count"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf wraps a sentinel with "Dense.<method>(row,col)" context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact numbers.
//   - r,c hold dimensions (rows, cols); 0 is allowed (an election may have no options).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T count.Number[T]] struct {
	r, c int
	data []T
}

// Compile-time assertion.
var _ fmt.Stringer = (*Dense[count.Rat])(nil)

// NewDense creates an r×c matrix filled with T's zero.
//
// Errors: ErrInvalidDimensions if rows or cols is negative.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T count.Number[T]](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]T, rows*cols)
	zero := count.Zero[T]()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom copies rows into a new Dense.
// An empty slice yields a 0×0 matrix.
//
// Errors: ErrDimensionMismatch if rows are ragged.
func NewDenseFrom[T count.Number[T]](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy as a slice of rows.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy. Elements are immutable values, so copying the
// buffer is sufficient.
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

// set is the unchecked mutator used by kernels after shape validation.
func (m *Dense[T]) set(i, j int, v T) { m.data[i*m.c+j] = v }

// String renders one bracketed row per line using fmt's %v for elements.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
