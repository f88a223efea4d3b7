package count_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/condorcet/count"
)

func TestIdentities(t *testing.T) {
	assert.Equal(t, "0", count.Zero[count.Rat]().String())
	assert.Equal(t, "1", count.One[count.Rat]().String())
}

func TestMinMax(t *testing.T) {
	a, b := count.FromInt(3), count.NewRat(7, 2)

	assert.Equal(t, "3", count.Min(a, b).String())
	assert.Equal(t, "3", count.Min(b, a).String())
	assert.Equal(t, "7/2", count.Max(a, b).String())
	assert.Equal(t, "7/2", count.Max(b, a).String())

	// ties return the first argument
	x, y := count.FromInt(1), count.NewRat(2, 2)
	assert.True(t, count.Equal(x, y))
	assert.Equal(t, "1", count.Max(x, y).String())
}
