// SPDX-License-Identifier: MIT
// Package matrix: elementwise algebra over exact numbers.
//
// Every function validates its operands, allocates exactly one result and
// never mutates its inputs. Loops run in fixed row-major order.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/condorcet/count"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opSum       = "Sum"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zip applies f to matching cells of a and b into a fresh matrix.
func zip[T count.Number[T]](a, b *Dense[T], f func(x, y T) T) *Dense[T] {
	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = f(a.data[i], b.data[i])
	}

	return out
}

// Add returns a + b.
// Complexity: O(r*c).
func Add[T count.Number[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zip(a, b, func(x, y T) T { return x.Add(y) }), nil
}

// Sub returns a − b.
// Complexity: O(r*c).
func Sub[T count.Number[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zip(a, b, func(x, y T) T { return x.Sub(y) }), nil
}

// Scale returns alpha·m.
// Complexity: O(r*c).
func Scale[T count.Number[T]](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v.Mul(alpha)
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose[T count.Number[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Sum folds ms into a fresh rows×cols zero matrix: 0 + ms[0] + ms[1] + ...
// With no operands it returns the zero matrix.
//
// Errors: ErrInvalidDimensions, or ErrDimensionMismatch if any operand differs in shape.
func Sum[T count.Number[T]](rows, cols int, ms ...*Dense[T]) (*Dense[T], error) {
	acc, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	for k, m := range ms {
		if err = ValidateSameShape(acc, m); err != nil {
			return nil, matrixErrorf(fmt.Sprintf("%s[%d]", opSum, k), err)
		}
		for i, v := range m.data {
			acc.data[i] = acc.data[i].Add(v)
		}
	}

	return acc, nil
}
