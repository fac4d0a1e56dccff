package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-sparse/sparse"
	"github.com/stretchr/testify/require"
)

func TestFromDense(t *testing.T) {
	m, err := sparse.FromDense([][]float64{
		{0, 2, 0},
		{3, 0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	requireDense(t, [][]float64{{0, 2, 0}, {3, 0, 0}}, m)

	_, err = sparse.FromDense(nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	_, err = sparse.FromDense([][]float64{{}})
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	require.EqualError(t, err, "FromDense: Sparse.New(1,0): sparse: dimensions must be > 0")
	_, err = sparse.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.FromDense([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	lax, err := sparse.FromDense([][]float64{{math.NaN()}}, sparse.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.Equal(t, 1, lax.Len())
}

func TestIdentity(t *testing.T) {
	id, err := sparse.Identity(3)
	require.NoError(t, err)
	requireDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	a := fromRows(t, [][]float64{{1, 2, 0}, {0, 0, 4}, {5, 0, 6}})
	prod, err := sparse.Multiply(id, a)
	require.NoError(t, err)
	eq, err := sparse.Equal(prod, a)
	require.NoError(t, err)
	require.True(t, eq)

	_, err = sparse.Identity(0)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	_, err = sparse.Identity(-2)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	require.Contains(t, err.Error(), "Sparse.New(-2,-2)")
}

func TestScale(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 0}, {0, -2}})
	s, err := sparse.Scale(a, 3)
	require.NoError(t, err)
	requireDense(t, [][]float64{{3, 0}, {0, -6}}, s)

	z, err := sparse.Scale(a, 0)
	require.NoError(t, err)
	require.Zero(t, z.Len())
	require.Equal(t, 2, z.Rows())

	big := fromRows(t, [][]float64{{math.MaxFloat64}})
	_, err = sparse.Scale(big, 10)
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	_, err = sparse.Scale(nil, 1)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := fromRows(t, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})
	y, err := sparse.MatVec(a, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{7, 6}, y)

	_, err = sparse.MatVec(a, []float64{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.MatVec(nil, nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
