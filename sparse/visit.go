// SPDX-License-Identifier: MIT

// Package sparse - read-only traversal and dense materialization.
//
// Visitors hand out Cell copies only; no arena index ever leaves the package.

package sparse

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// DoRow visits the cells of row r in increasing column order and stops early
// when f returns false.
// Returns ErrIndexOutOfBounds if r is not in [1, Rows].
// Complexity: O(k_row).
func (m *Matrix) DoRow(r int, f func(c Cell) bool) error {
	if r < 1 || r > m.rows {
		return sparseErrorf(ctxDoRow, r, 0, ErrIndexOutOfBounds)
	}
	for cur := m.rowHead[r-1]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
		n := m.nodes[cur]
		if !f(Cell{Row: n.row, Col: n.col, Value: n.value}) {
			return nil
		}
	}

	return nil
}

// DoCol visits the cells of column c in increasing row order and stops early
// when f returns false.
// Returns ErrIndexOutOfBounds if c is not in [1, Cols].
// Complexity: O(k_col).
func (m *Matrix) DoCol(c int, f func(c Cell) bool) error {
	if c < 1 || c > m.cols {
		return sparseErrorf(ctxDoCol, 0, c, ErrIndexOutOfBounds)
	}
	for cur := m.colHead[c-1]; cur != nilIndex; cur = m.nodes[cur].nextInCol {
		n := m.nodes[cur]
		if !f(Cell{Row: n.row, Col: n.col, Value: n.value}) {
			return nil
		}
	}

	return nil
}

// Do visits every stored cell in row-major order (rows ascending, then
// columns ascending) and stops early when f returns false.
// Complexity: O(M + nnz).
func (m *Matrix) Do(f func(c Cell) bool) {
	var n node
	for r := 0; r < m.rows; r++ {
		for cur := m.rowHead[r]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
			n = m.nodes[cur]
			if !f(Cell{Row: n.row, Col: n.col, Value: n.value}) {
				return
			}
		}
	}
}

// RowCells returns a snapshot of row r's chain.
func (m *Matrix) RowCells(r int) ([]Cell, error) {
	var out []Cell
	err := m.DoRow(r, func(c Cell) bool {
		out = append(out, c)

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ColCells returns a snapshot of column c's chain.
func (m *Matrix) ColCells(c int) ([]Cell, error) {
	var out []Cell
	err := m.DoCol(c, func(cell Cell) bool {
		out = append(out, cell)

		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Print materializes the matrix densely: one slice of Cols values per row,
// absent cells as 0. Intended for display only.
// MAIN DESCRIPTION:
//   - Each row chain is walked once and its cells are scattered into a
//     zero-filled row, so every cell is read exactly once.
//
// Complexity:
//   - Time O(M·N), Space O(M·N).
func (m *Matrix) Print() [][]float64 {
	out := make([][]float64, m.rows)
	var r, cur int
	for r = 0; r < m.rows; r++ {
		row := make([]float64, m.cols)
		for cur = m.rowHead[r]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
			row[m.nodes[cur].col-1] = m.nodes[cur].value
		}
		out[r] = row
	}

	return out
}

// String renders the dense view as "[a, b]\n" lines for diagnostics.
// Not for hot paths: O(M·N).
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.Print() {
		b.WriteString(_fmtRowOpen)
		for j, v := range row {
			b.WriteString(fmt.Sprintf("%g", v))
			if j+1 < len(row) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
