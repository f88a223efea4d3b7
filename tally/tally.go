// SPDX-License-Identifier: MIT

package tally

import (
	"fmt"

	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/matrix"
)

const (
	opNew       = "New"
	opFromDense = "FromDense"
	opFromRows  = "FromRows"
	opIndex     = "Index"
	opOption    = "Option"
)

// Matrix is an immutable square tally over a fixed option order:
// cell(i,j) is the total weighted support for option i over option j.
//
// Invariants (checked at construction):
//   - options are duplicate-free and fix the row/column order;
//   - the matrix is N×N with N = len(options);
//   - the diagonal is exactly zero.
type Matrix[O comparable, T count.Number[T]] struct {
	order []O
	index map[O]int
	cells *matrix.Dense[T]
	opts  Options
}

// New returns the all-zero matrix for options.
//
// Errors: ErrDuplicateOption (ErrValidation).
func New[O comparable, T count.Number[T]](options []O, opts ...Option) (*Matrix[O, T], error) {
	cells, err := matrix.NewDense[T](len(options), len(options))
	if err != nil {
		return nil, invalid(opNew, err)
	}

	return build(opNew, options, cells, gatherOptions(opts...))
}

// FromDense validates cells against options and wraps a copy of it.
//
// Errors (all ErrValidation): ErrDuplicateOption, ErrNonSquare,
// ErrDimensionMismatch, ErrNonZeroDiagonal.
func FromDense[O comparable, T count.Number[T]](options []O, cells *matrix.Dense[T], opts ...Option) (*Matrix[O, T], error) {
	if err := matrix.ValidateNotNil(cells); err != nil {
		return nil, invalid(opFromDense, err)
	}

	return build(opFromDense, options, cells.Clone(), gatherOptions(opts...))
}

// FromRows is FromDense for a raw [][]T count table (the import boundary).
// Ragged rows fail with ErrDimensionMismatch.
func FromRows[O comparable, T count.Number[T]](options []O, rows [][]T, opts ...Option) (*Matrix[O, T], error) {
	cells, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, invalid(opFromRows, err)
	}

	return build(opFromRows, options, cells, gatherOptions(opts...))
}

// FromInts is FromRows for integer counts, converted to exact rationals.
func FromInts[O comparable](options []O, rows [][]int64, opts ...Option) (*Matrix[O, count.Rat], error) {
	converted := make([][]count.Rat, len(rows))
	for i, row := range rows {
		converted[i] = make([]count.Rat, len(row))
		for j, v := range row {
			converted[i][j] = count.FromInt(v)
		}
	}

	return FromRows(options, converted, opts...)
}

// build checks every invariant and takes ownership of cells.
func build[O comparable, T count.Number[T]](op string, options []O, cells *matrix.Dense[T], o Options) (*Matrix[O, T], error) {
	order := append([]O(nil), options...)
	index := make(map[O]int, len(order))
	for i, opt := range order {
		if _, dup := index[opt]; dup {
			return nil, invalid(op, fmt.Errorf("%v: %w", opt, ErrDuplicateOption))
		}
		index[opt] = i
	}
	if err := matrix.ValidateSquare(cells); err != nil {
		return nil, invalid(op, err)
	}
	if cells.Rows() != len(order) {
		return nil, invalid(op, fmt.Errorf("%dx%d matrix for %d options: %w",
			cells.Rows(), cells.Cols(), len(order), ErrDimensionMismatch))
	}
	if err := matrix.ValidateZeroDiagonal(cells); err != nil {
		return nil, invalid(op, err)
	}

	return &Matrix[O, T]{order: order, index: index, cells: cells, opts: o}, nil
}

// derive wraps cells computed from m; the invariants hold by construction.
func (m *Matrix[O, T]) derive(cells *matrix.Dense[T]) *Matrix[O, T] {
	return &Matrix[O, T]{order: m.order, index: m.index, cells: cells, opts: m.opts}
}

// Len returns the number of options.
func (m *Matrix[O, T]) Len() int { return len(m.order) }

// Options returns a copy of the option order.
func (m *Matrix[O, T]) Options() []O { return append([]O(nil), m.order...) }

// Index returns the row/column index of o.
//
// Errors: ErrUnknownOption (ErrNotFound).
func (m *Matrix[O, T]) Index(o O) (int, error) {
	i, ok := m.index[o]
	if !ok {
		return 0, notFound(opIndex, fmt.Errorf("%v: %w", o, ErrUnknownOption))
	}

	return i, nil
}

// Option returns the option at index i.
//
// Errors: ErrOutOfRange (ErrNotFound).
func (m *Matrix[O, T]) Option(i int) (O, error) {
	if i < 0 || i >= len(m.order) {
		var zero O

		return zero, notFound(opOption, fmt.Errorf("%d not in [0,%d): %w", i, len(m.order), ErrOutOfRange))
	}

	return m.order[i], nil
}

// Rows returns a deep copy of the counts, row-major in option order.
func (m *Matrix[O, T]) Rows() [][]T {
	return m.cells.ToRows()
}

// String renders the counts one row per line.
func (m *Matrix[O, T]) String() string {
	return fmt.Sprintf("%v\n%v", m.order, m.cells)
}
