// Package tally_test contains shared fixtures.
//
// Purpose:
//   - Published Schulze datasets with known answers.
//   - Small converters from int literals to Rat tables for go-cmp diffs.

package tally_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/tally"
)

var abc = []string{"A", "B", "C"}

var abcde = []string{"A", "B", "C", "D", "E"}

// smallCounts: 42 prefer A over B, 41 B over A, A and C tied at 9,
// 5 prefer B over C and 100 C over B.
var smallCounts = [][]int64{
	{0, 42, 9},
	{41, 0, 5},
	{9, 100, 0},
}

// wikipediaCounts is the 45-voter Schulze example from Wikipedia.
var wikipediaCounts = [][]int64{
	{0, 20, 26, 30, 22},
	{25, 0, 16, 33, 18},
	{19, 29, 0, 17, 24},
	{15, 12, 28, 0, 14},
	{23, 27, 21, 31, 0},
}

// wikipediaStrengths is its published strongest-path table.
var wikipediaStrengths = [][]int64{
	{0, 28, 28, 30, 24},
	{25, 0, 28, 33, 24},
	{25, 29, 0, 29, 24},
	{25, 28, 28, 0, 24},
	{25, 28, 28, 31, 0},
}

// wikipediaGroups are the eight ballot shapes with their voter counts.
var wikipediaGroups = []struct {
	voters int64
	order  string
}{
	{5, "ACBED"},
	{5, "ADECB"},
	{8, "BEDAC"},
	{3, "CABED"},
	{7, "CAEBD"},
	{2, "CBADE"},
	{7, "DCEBA"},
	{8, "EBADC"},
}

// wikipediaBallots returns one ballot per shape weighted by its voter count.
func wikipediaBallots(t testing.TB) []*ballot.Ranked[string, count.Rat] {
	t.Helper()
	out := make([]*ballot.Ranked[string, count.Rat], 0, len(wikipediaGroups))
	for _, g := range wikipediaGroups {
		groups := make([][]string, 0, len(g.order))
		for _, r := range g.order {
			groups = append(groups, []string{string(r)})
		}
		b, err := ballot.FromGroups(groups, count.FromInt(g.voters))
		require.NoError(t, err)
		out = append(out, b)
	}

	return out
}

// rats converts int literals into a Rat table.
func rats(rows [][]int64) [][]count.Rat {
	out := make([][]count.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]count.Rat, len(row))
		for j, v := range row {
			out[i][j] = count.FromInt(v)
		}
	}

	return out
}

// mustInts builds a matrix from int literals or fails the test.
func mustInts(t testing.TB, options []string, rows [][]int64, opts ...tally.Option) *tally.Matrix[string, count.Rat] {
	t.Helper()
	m, err := tally.FromInts(options, rows, opts...)
	require.NoError(t, err)

	return m
}

// requireCells compares m against int literals; go-cmp uses Rat.Equal.
func requireCells(t testing.TB, want [][]int64, m *tally.Matrix[string, count.Rat]) {
	t.Helper()
	if diff := cmp.Diff(rats(want), m.Rows()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
}

// ranked builds a unit-weight ballot from a rank map.
func ranked(ranks map[string]int) *ballot.Ranked[string, count.Rat] {
	return ballot.New(ranks, count.FromInt(1))
}
