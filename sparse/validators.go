// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for operand checks used by the
//    combining algorithms (nil, same shape, multiply compatibility).
//  - Provide Validate, the full invariant walk over both chain families.
//
// Note:
//  - Operand validators return sentinels wrapped with their own tag; callers
//    wrap once more with the operation tag.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeTag appends both operand shapes to a validator tag: "tag (2x3 vs 3x2)".
func shapeTag(tag string, a, b Reader) string {
	return fmt.Sprintf("%s (%s vs %s)", tag, ShapeString(a), ShapeString(b))
}

// isNil reports whether r is nil, including a typed nil *Matrix.
func isNil(r Reader) bool {
	if r == nil {
		return true
	}
	m, ok := r.(*Matrix)

	return ok && m == nil
}

// ValidateNotNil ensures the operand is non-nil.
// Returns ErrNilMatrix if r is nil or a nil *Matrix.
// Complexity: O(1).
func ValidateNotNil(r Reader) error {
	if isNil(r) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape composes NotNil(a) → NotNil(b) → equal Rows and Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Reader) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf(shapeTag("ValidateSameShape: Rows", a, b), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(shapeTag("ValidateSameShape: Columns", a, b), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible composes NotNil(a) → NotNil(b) → a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Reader) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(shapeTag("ValidateMulCompatible", a, b), ErrDimensionMismatch)
	}

	return nil
}

// Validate walks every row chain and every column chain and checks the
// structural invariants:
//  1. row r holds only cells with row == r, columns strictly increasing;
//  2. column c holds only cells with col == c, rows strictly increasing;
//  3. every cell reached from a row anchor is reached from its column anchor
//     and vice versa;
//  4. no stored value is 0 (or NaN/Inf while the numeric policy is on);
//  5. all coordinates are inside the shape;
//  6. the live counter matches both walks and the arena is fully accounted
//     for by live cells plus the freelist.
//
// Returns ErrCorrupt wrapped with the failing anchor, or nil.
// Complexity: O(M + N + arena). Intended for tests and debugging.
func (m *Matrix) Validate() error {
	limit := len(m.nodes) // a longer walk means a cycle
	inRow := make([]bool, len(m.nodes))

	var rowTotal int
	for r := 1; r <= m.rows; r++ {
		steps, lastCol := 0, 0
		for cur := m.rowHead[r-1]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
			if cur < 0 || cur >= len(m.nodes) || steps >= limit {
				return corruptf("row %d: bad link %d", r, cur)
			}
			n := m.nodes[cur]
			switch {
			case n.row != r:
				return corruptf("row %d: cell (%d,%d) in wrong row chain", r, n.row, n.col)
			case n.col < 1 || n.col > m.cols:
				return corruptf("row %d: column %d out of range", r, n.col)
			case n.col <= lastCol:
				return corruptf("row %d: column %d not after %d", r, n.col, lastCol)
			case n.value == 0:
				return corruptf("row %d: zero stored at column %d", r, n.col)
			case m.validateNaNInf && (math.IsNaN(n.value) || math.IsInf(n.value, 0)):
				return corruptf("row %d: non-finite stored at column %d", r, n.col)
			}
			inRow[cur] = true
			lastCol = n.col
			steps++
		}
		rowTotal += steps
	}

	var colTotal int
	for c := 1; c <= m.cols; c++ {
		steps, lastRow := 0, 0
		for cur := m.colHead[c-1]; cur != nilIndex; cur = m.nodes[cur].nextInCol {
			if cur < 0 || cur >= len(m.nodes) || steps >= limit {
				return corruptf("column %d: bad link %d", c, cur)
			}
			n := m.nodes[cur]
			switch {
			case n.col != c:
				return corruptf("column %d: cell (%d,%d) in wrong column chain", c, n.row, n.col)
			case n.row <= lastRow:
				return corruptf("column %d: row %d not after %d", c, n.row, lastRow)
			case !inRow[cur]:
				return corruptf("column %d: cell (%d,%d) unreachable from its row", c, n.row, n.col)
			}
			lastRow = n.row
			steps++
		}
		colTotal += steps
	}

	if rowTotal != colTotal {
		return corruptf("row chains hold %d cells, column chains %d", rowTotal, colTotal)
	}
	if rowTotal != m.live {
		return corruptf("live counter %d, reachable %d", m.live, rowTotal)
	}
	if m.live+len(m.free) != len(m.nodes) {
		return corruptf("arena %d slots, live %d + free %d", len(m.nodes), m.live, len(m.free))
	}
	for _, idx := range m.free {
		if inRow[idx] {
			return corruptf("freed slot %d still linked", idx)
		}
	}

	return nil
}

// corruptf formats a Validate failure around ErrCorrupt.
func corruptf(format string, args ...any) error {
	return fmt.Errorf("Sparse.Validate: %s: %w", fmt.Sprintf(format, args...), ErrCorrupt)
}
