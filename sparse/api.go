// SPDX-License-Identifier: MIT
// Package sparse: constructors and vector/scalar kernels.
//
// Purpose:
//   - FromDense and Identity build matrices from an explicit layout.
//   - Scale and MatVec walk only the stored cells: O(M + nnz) each.
//
// Policy:
//   - Results inherit the NaN/Inf policy of their operand (or of opts for
//     the constructors). Scaling by 0 yields an empty matrix of the same shape.

package sparse

import (
	"fmt"
	"math"
)

const (
	opFromDense = "FromDense"
	opIdentity  = "Identity"
	opScale     = "Scale"
	opMatVec    = "MatVec"
)

// FromDense builds a matrix from a rectangular row-major slice; zeros are
// skipped. The shape is len(rows)×len(rows[0]).
//
// Errors:
//   - ErrInvalidDimensions for an empty slice or an empty first row.
//   - ErrDimensionMismatch for a ragged row.
//   - ErrNaNInf for a non-finite value when the policy is on.
func FromDense(rows [][]float64, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, opErrorf(opFromDense, sparseErrorf(ctxNew, 0, 0, ErrInvalidDimensions))
	}
	m, err := New(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, opErrorf(opFromDense, err)
	}
	bld := newRowMajorBuilder(m)
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, opErrorf(opFromDense,
				fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), m.cols, ErrDimensionMismatch))
		}
		for j, v := range row {
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, opErrorf(opFromDense, sparseErrorf(ctxInsert, i+1, j+1, ErrNaNInf))
			}
			bld.append(i+1, j+1, v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity.
func Identity(n int, opts ...Option) (*Matrix, error) {
	if n <= 0 {
		return nil, opErrorf(opIdentity, sparseErrorf(ctxNew, n, n, ErrInvalidDimensions))
	}
	m, err := New(n, n, append([]Option{WithCapacity(n)}, opts...)...)
	if err != nil {
		return nil, opErrorf(opIdentity, err)
	}
	bld := newRowMajorBuilder(m)
	for i := 1; i <= n; i++ {
		bld.append(i, i, 1)
	}

	return m, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix; ErrNaNInf when a product overflows under the policy.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	res, err := New(m.rows, m.cols, WithCapacity(m.live), WithValidateNaNInf(m.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	if alpha == 0 {
		return res, nil
	}

	bld := newRowMajorBuilder(res)
	var werr error
	m.Do(func(c Cell) bool {
		v := c.Value * alpha
		if res.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			werr = sparseErrorf(ctxInsert, c.Row, c.Col, ErrNaNInf)

			return false
		}
		bld.append(c.Row, c.Col, v)

		return true
	})
	if werr != nil {
		return nil, opErrorf(opScale, werr)
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x with len(x) == m.Cols().
// Only stored cells contribute.
func MatVec(m *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	if len(x) != m.cols {
		return nil, opErrorf(opMatVec,
			fmt.Errorf("len(x)=%d vs %d cols: %w", len(x), m.cols, ErrDimensionMismatch))
	}

	y := make([]float64, m.rows)
	var acc float64
	for r := 0; r < m.rows; r++ {
		acc = 0
		for cur := m.rowHead[r]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
			acc += m.nodes[cur].value * x[m.nodes[cur].col-1]
		}
		y[r] = acc
	}

	return y, nil
}
