package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-sparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestWithCapacityPanicsOnNegative: nonsensical option values are programmer errors.
func TestWithCapacityPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { _ = sparse.WithCapacity(-1) })
	require.NotPanics(t, func() { _ = sparse.WithCapacity(0) })
}

// TestWithCapacityDoesNotChangeSemantics: a preallocated arena behaves the same.
func TestWithCapacityDoesNotChangeSemantics(t *testing.T) {
	m := mustNew(t, 3, 3, sparse.WithCapacity(64))
	require.NoError(t, m.Insert(2, 2, 1))
	slots, free := sparse.Arena_TestOnly(m)
	require.Equal(t, 1, slots)
	require.Zero(t, free)
	require.NoError(t, m.Validate())
}

// TestNilOptionSkipped: nil entries in the variadic list are ignored.
func TestNilOptionSkipped(t *testing.T) {
	m, err := sparse.New(1, 1, nil, sparse.WithValidateNaNInf(true))
	require.NoError(t, err)
	require.NotNil(t, m)
}

// TestClonePreservesPolicy: Clone keeps the numeric policy of its source.
func TestClonePreservesPolicy(t *testing.T) {
	loose := mustNew(t, 1, 1, sparse.WithValidateNaNInf(false))
	cp := loose.Clone()
	require.NoError(t, cp.Insert(1, 1, posInf()))

	strict := mustNew(t, 1, 1).Clone()
	require.ErrorIs(t, strict.Insert(1, 1, posInf()), sparse.ErrNaNInf)
}
