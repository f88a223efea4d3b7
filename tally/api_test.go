package tally_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/ballot"
	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/tally"
)

func TestSchulze_Wikipedia(t *testing.T) {
	for _, workers := range []int{1, 3} {
		tiers, err := tally.Schulze[string, count.Rat](abcde, wikipediaBallots(t), tally.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"E"}, {"A"}, {"C"}, {"B"}, {"D"}}, tiers, "workers=%d", workers)
	}
}

func TestWinners(t *testing.T) {
	winners, err := tally.Winners[string, count.Rat](abcde, wikipediaBallots(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, winners)

	// A>B>C and C>B>A once each: all three tie
	ballots := []*ballot.Ranked[string, count.Rat]{
		ranked(map[string]int{"A": 1, "B": 2, "C": 3}),
		ranked(map[string]int{"C": 1, "B": 2, "A": 3}),
	}
	winners, err = tally.Winners[string, count.Rat](abc, ballots)
	require.NoError(t, err)
	assert.Equal(t, abc, winners)

	winners, err = tally.Winners[string, count.Rat](nil, ballots)
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestSchulze_Errors(t *testing.T) {
	_, err := tally.Schulze[string, count.Rat]([]string{"A", "A"}, []*ballot.Ranked[string, count.Rat]{})
	assert.ErrorIs(t, err, tally.ErrDuplicateOption)

	_, err = tally.Winners[string, count.Rat](abc, []*ballot.Ranked[string, count.Rat]{nil})
	assert.ErrorIs(t, err, tally.ErrNilBallot)
}
