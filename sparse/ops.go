// SPDX-License-Identifier: MIT
// Package sparse: combining algorithms.
//
// Purpose:
//   - Sum and Multiply consume only the Reader contract (Rows, Cols, Get) and
//     always return a freshly constructed *Matrix; operands are never mutated.
//   - Add and Transpose work directly on the chains of *Matrix operands.
//
// Determinism & Cost:
//   - Sum scans the full M×N grid with point lookups: O(M·N) Get calls per operand.
//   - Multiply is the dense i→j→k triple loop: O(A.rows·B.cols·A.cols) lookups.
//     Chain-driven multiplication would be asymptotically cheaper; the dense
//     loop is the documented cost profile of this API.
//   - Add merges two sorted row chains per row: O(M + nnz(A) + nnz(B)).

package sparse

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opSum       = "Sum"
	opMultiply  = "Multiply"
	opAdd       = "Add"
	opTranspose = "Transpose"
	opEqual     = "Equal"
)

// Sum combines a and b cell by cell into a new matrix of the same shape.
// MAIN DESCRIPTION:
//   - For every (i,j): insert A[i,j] when non-zero, then insert B[i,j] when
//     non-zero. Where both are non-zero B's value WINS; values are not added.
//     Use Add for arithmetic addition.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b); allocate C.
//   - Stage 2: fixed i→j loop over the full grid with Get on both operands.
//
// The result inherits the NaN/Inf guard of *Matrix operands (see inheritPolicy).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; lookup/insert errors wrapped with coordinates.
//
// Complexity:
//   - Time O(M·N·(k_A + k_B)), Space O(nnz(C)).
func Sum(a, b Reader) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opSum, err)
	}
	rows, cols := a.Rows(), a.Cols()
	c, err := New(rows, cols, inheritPolicy(a, b))
	if err != nil {
		return nil, opErrorf(opSum, err)
	}

	var i, j int
	var av, bv float64
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if av, err = a.Get(i, j); err != nil {
				return nil, opErrorf(opSum, err)
			}
			if bv, err = b.Get(i, j); err != nil {
				return nil, opErrorf(opSum, err)
			}
			if av != 0 {
				if err = c.Insert(i, j, av); err != nil {
					return nil, opErrorf(opSum, err)
				}
			}
			if bv != 0 {
				if err = c.Insert(i, j, bv); err != nil { // overwrites av
					return nil, opErrorf(opSum, err)
				}
			}
		}
	}

	return c, nil
}

// inheritPolicy carries the NaN/Inf guard of two *Matrix operands into their
// result: it is on only when both operands have it on. Any other Reader
// keeps the package default.
func inheritPolicy(a, b Reader) Option {
	ma, okA := a.(*Matrix)
	mb, okB := b.(*Matrix)
	if !okA || !okB {
		return WithValidateNaNInf(DefaultValidateNaNInf)
	}

	return WithValidateNaNInf(ma.validateNaNInf && mb.validateNaNInf)
}

// Multiply computes the matrix product C = A × B.
// MAIN DESCRIPTION:
//   - C has shape A.rows × B.cols; C[i,j] = Σ_k A[i,k]·B[k,j], k = 1..A.cols.
//   - Only non-zero accumulated results are inserted.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C.
//   - Stage 2: fixed i→j→k triple loop of point lookups, accumulate, insert.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//   - ErrNaNInf when an accumulated value is NaN/±Inf and the inherited
//     guard is on.
//
// Complexity:
//   - O(A.rows · B.cols · A.cols) Get calls on each operand.
func Multiply(a, b Reader) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMultiply, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	c, err := New(aRows, bCols, inheritPolicy(a, b))
	if err != nil {
		return nil, opErrorf(opMultiply, err)
	}

	var i, j, k int
	var av, bv, acc float64
	for i = 1; i <= aRows; i++ {
		for j = 1; j <= bCols; j++ {
			acc = 0
			for k = 1; k <= aCols; k++ {
				if av, err = a.Get(i, k); err != nil {
					return nil, opErrorf(opMultiply, err)
				}
				if bv, err = b.Get(k, j); err != nil {
					return nil, opErrorf(opMultiply, err)
				}
				acc += av * bv
			}
			if acc != 0 {
				if err = c.Insert(i, j, acc); err != nil {
					return nil, opErrorf(opMultiply, err)
				}
			}
		}
	}

	return c, nil
}

// Add returns C = A + B with true elementwise addition. Each row is built by
// merging the two sorted row chains; sums that cancel to 0 are not stored.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf on overflow.
// Complexity: O(M + N + nnz(A) + nnz(B)).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	c, err := New(a.rows, a.cols, WithCapacity(a.live+b.live), inheritPolicy(a, b))
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}
	bld := newRowMajorBuilder(c)

	var r, ia, ib int
	var na, nb node
	for r = 1; r <= a.rows; r++ {
		ia, ib = a.rowHead[r-1], b.rowHead[r-1]
		for ia != nilIndex || ib != nilIndex {
			switch {
			case ib == nilIndex || (ia != nilIndex && a.nodes[ia].col < b.nodes[ib].col):
				na = a.nodes[ia]
				bld.append(r, na.col, na.value)
				ia = na.nextInRow
			case ia == nilIndex || b.nodes[ib].col < a.nodes[ia].col:
				nb = b.nodes[ib]
				bld.append(r, nb.col, nb.value)
				ib = nb.nextInRow
			default:
				na, nb = a.nodes[ia], b.nodes[ib]
				s := na.value + nb.value
				if c.validateNaNInf && (math.IsNaN(s) || math.IsInf(s, 0)) {
					return nil, opErrorf(opAdd, sparseErrorf(ctxInsert, r, na.col, ErrNaNInf))
				}
				bld.append(r, na.col, s)
				ia, ib = na.nextInRow, nb.nextInRow
			}
		}
	}

	return c, nil
}

// Transpose returns mᵀ, built from m's column chains (which become the row
// chains of the result). Complexity: O(M + N + nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	t, err := New(m.cols, m.rows, WithCapacity(m.live), WithValidateNaNInf(m.validateNaNInf))
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	bld := newRowMajorBuilder(t)
	for c := 0; c < m.cols; c++ {
		for cur := m.colHead[c]; cur != nilIndex; cur = m.nodes[cur].nextInCol {
			bld.append(c+1, m.nodes[cur].row, m.nodes[cur].value)
		}
	}

	return t, nil
}

// Equal reports whether a and b have the same shape and identical values at
// every coordinate. Shape differences yield (false, ErrDimensionMismatch).
// Complexity: O(M·N) lookups.
func Equal(a, b Reader) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, opErrorf(opEqual, err)
	}
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= a.Cols(); j++ {
			av, err := a.Get(i, j)
			if err != nil {
				return false, opErrorf(opEqual, err)
			}
			bv, err := b.Get(i, j)
			if err != nil {
				return false, opErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}

// ShapeString formats a shape as "RxC" for diagnostics ("nil" for nil).
func ShapeString(r Reader) string {
	if isNil(r) {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", r.Rows(), r.Cols())
}
