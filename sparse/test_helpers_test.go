// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures for the engine and algorithm tests.
//   • Keep every fixture finite so the numeric policy never interferes.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlath-sparse/sparse"
	"github.com/stretchr/testify/require"
)

// tb is the subset of testing.TB the helpers need, so benchmarks can share them.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// mustNew allocates an r×c matrix or aborts the test.
func mustNew(t tb, r, c int, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c, opts...)
	if err != nil {
		t.Fatalf("sparse.New(%d,%d): %v", r, c, err)
	}

	return m
}

// fromRows builds a matrix from dense rows (zeros are skipped by Insert).
func fromRows(t *testing.T, rows [][]float64) *sparse.Matrix {
	t.Helper()
	m := mustNew(t, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Insert(i+1, j+1, v))
		}
	}

	return m
}

// fillRand sets roughly density·r·c cells to integers in [1,9] from a fixed seed.
func fillRand(t tb, m *sparse.Matrix, density float64, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if rng.Float64() < density {
				if err := m.Insert(i, j, float64(rng.Intn(9)+1)); err != nil {
					t.Fatalf("Insert(%d,%d): %v", i, j, err)
				}
			}
		}
	}
}

// requireDense asserts the dense view of m equals want.
func requireDense(t *testing.T, want [][]float64, m *sparse.Matrix) {
	t.Helper()
	require.Equal(t, want, m.Print())
	require.NoError(t, m.Validate())
}
