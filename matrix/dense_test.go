package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/condorcet/count"
	"github.com/katalvlaran/condorcet/matrix"
)

func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense[count.Rat](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, [][]string{{"0", "0", "0"}, {"0", "0", "0"}}, grid(m))

	empty, err := matrix.NewDense[count.Rat](0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = matrix.NewDense[count.Rat](-1, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFrom(ratRows([][]int64{{1, 2}, {3}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.NewDenseFrom[count.Rat](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestDense_AtSet(t *testing.T) {
	m := MustDense(t, [][]int64{{1, 2}, {3, 4}})

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	require.NoError(t, m.Set(1, 0, count.NewRat(1, 2)))
	v, _ = m.At(1, 0)
	assert.Equal(t, "1/2", v.String())

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], count.Rat{}), matrix.ErrOutOfRange, "Set%v", ij)
	}
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, count.FromInt(9)))

	assert.Equal(t, sgrid([][]int64{{1, 2}, {3, 4}}), grid(m))
	assert.Equal(t, sgrid([][]int64{{9, 2}, {3, 4}}), grid(c))
}

func TestDense_RowAndToRowsCopy(t *testing.T) {
	m := MustDense(t, [][]int64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = count.FromInt(100)
	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	rows := m.ToRows()
	rows[0][0] = count.FromInt(100)

	assert.Equal(t, sgrid([][]int64{{1, 2}, {3, 4}}), grid(m))
}

func TestDense_String(t *testing.T) {
	m := MustDense(t, [][]int64{{0, 42}, {41, 0}})
	assert.Equal(t, "[0, 42]\n[41, 0]\n", m.String())
}
