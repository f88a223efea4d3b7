// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Build small deterministic Rat fixtures from int literals.
//   - Render matrices as string grids so assert.Equal diffs stay readable.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/matrix"
)

// ratRows converts int literals to Rat rows.
func ratRows(rows [][]int64) [][]count.Rat {
	out := make([][]count.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]count.Rat, len(row))
		for j, v := range row {
			out[i][j] = count.FromInt(v)
		}
	}

	return out
}

// MustDense builds a Dense from int literals or fails the test.
func MustDense(tb testing.TB, rows [][]int64) *matrix.Dense[count.Rat] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(ratRows(rows))
	require.NoError(tb, err)

	return m
}

// grid renders m as strings (Rat.String) for comparison.
func grid(m *matrix.Dense[count.Rat]) [][]string {
	rows := m.ToRows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}

// sgrid renders int literals the same way grid renders a matrix.
func sgrid(rows [][]int64) [][]string {
	return grid(mustNoErr(matrix.NewDenseFrom(ratRows(rows))))
}

func mustNoErr[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
