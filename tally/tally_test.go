package tally_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/matrix"
	"github.com/katalvlaran/condorcet/tally"
)

func TestNew_Empty(t *testing.T) {
	m, err := tally.New[string, count.Rat](abc)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	requireCells(t, [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, m)

	wins, err := m.Wins("A")
	require.NoError(t, err)
	assert.Equal(t, 0, wins)

	_, err = tally.New[string, count.Rat]([]string{"A", "B", "A"})
	assert.ErrorIs(t, err, tally.ErrDuplicateOption)
	assert.ErrorIs(t, err, tally.ErrValidation)
}

func TestFromInts_NonZeroDiagonal(t *testing.T) {
	_, err := tally.FromInts(abc, [][]int64{{0, 1, 1}, {1, 3, 1}, {1, 1, 0}})
	assert.ErrorIs(t, err, tally.ErrNonZeroDiagonal)
	assert.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
	assert.ErrorIs(t, err, tally.ErrValidation)
}

func TestFromInts_DimensionErrors(t *testing.T) {
	cases := map[string][][]int64{
		"too small":  {{0, 1}, {1, 0}},
		"too large":  {{0, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 0, 1}, {1, 1, 1, 0}},
		"not square": {{0, 1, 1}, {1, 0, 1}},
		"ragged":     {{0, 1, 1}, {1, 0}, {1, 1, 0}},
	}
	for name, rows := range cases {
		_, err := tally.FromInts(abc, rows)
		assert.ErrorIs(t, err, tally.ErrValidation, name)
		assert.True(t,
			assertAny(err, tally.ErrDimensionMismatch, tally.ErrNonSquare),
			"%s: got %v", name, err)
	}
}

func assertAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func TestFromDense_CopiesInput(t *testing.T) {
	d, err := matrix.NewDenseFrom(rats(smallCounts))
	require.NoError(t, err)
	m, err := tally.FromDense(abc, d)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 1, count.FromInt(0)))
	requireCells(t, smallCounts, m)

	_, err = tally.FromDense[string, count.Rat](abc, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromRows_OptionsCopied(t *testing.T) {
	opts := []string{"A", "B", "C"}
	m, err := tally.FromRows(opts, rats(smallCounts))
	require.NoError(t, err)

	opts[0] = "Z"
	assert.Equal(t, abc, m.Options())

	got := m.Options()
	got[1] = "Y"
	assert.Equal(t, abc, m.Options())
}

func TestIndexOption_RoundTrip(t *testing.T) {
	m := mustInts(t, abcde, wikipediaCounts)
	for _, o := range abcde {
		i, err := m.Index(o)
		require.NoError(t, err)
		back, err := m.Option(i)
		require.NoError(t, err)
		assert.Equal(t, o, back)
	}

	_, err := m.Index("Z")
	assert.ErrorIs(t, err, tally.ErrUnknownOption)
	assert.ErrorIs(t, err, tally.ErrNotFound)

	for _, i := range []int{-1, 5} {
		_, err = m.Option(i)
		assert.ErrorIs(t, err, tally.ErrOutOfRange)
		assert.ErrorIs(t, err, tally.ErrNotFound)
	}
}

// TestOpaqueOptions uses uuid identifiers: the matrix needs only comparable options.
func TestOpaqueOptions(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	m, err := tally.FromInts(ids, smallCounts)
	require.NoError(t, err)

	win, err := m.IsWin(ids[0], ids[1])
	require.NoError(t, err)
	assert.True(t, win)

	tiers, err := m.BeatPaths().OptionsByPreference()
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.ElementsMatch(t, []uuid.UUID{ids[0], ids[2]}, tiers[0])
	assert.Equal(t, []uuid.UUID{ids[1]}, tiers[1])
}

func TestNoOptions(t *testing.T) {
	m, err := tally.FromInts[string](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	tiers, err := m.BeatPaths().OptionsByPreference()
	require.NoError(t, err)
	assert.Empty(t, tiers)
	assert.Empty(t, m.ByMostWins())
}

func TestWithOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { tally.WithWorkers(0) })
	assert.Panics(t, func() { tally.WithLogger(nil) })
}
