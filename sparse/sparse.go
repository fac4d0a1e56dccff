// SPDX-License-Identifier: MIT

// Package sparse - orthogonal-list storage & safe accessors.
//
// Purpose:
//   - Keep one set of non-zero cells addressable both as an ordered chain per
//     row (increasing column) and as an ordered chain per column (increasing row).
//   - Guarantee safety at the public surface: every method validates before it
//     mutates and returns sentinel errors instead of panicking.
//   - Store cells in an arena (slice + freelist) threaded by integer "next"
//     indices, so a cell is never half-linked once a method returns.
//
// Complexity quicksheet (M rows, N cols, k cells in the touched chain):
//   - New: O(M+N); Get: O(k); Insert: O(k_row + k_col); RemoveAt: O(k_row + k_col);
//   - Remove (by value): O(nnz + Σ k_col of removed cells); Print: O(M·N).

package sparse

import (
	"math"
)

// Matrix is an M×N sparse matrix stored as cross-linked row and column chains.
//   - rowHead[r-1] is the arena index of the first cell of row r (or nilIndex).
//   - colHead[c-1] is the arena index of the first cell of column c (or nilIndex).
//   - nodes is the arena; free lists released slots for reuse.
//
// A Matrix has a single owner; it is not safe for concurrent use.
type Matrix struct {
	rows, cols     int    // immutable shape (>= 1)
	rowHead        []int  // row anchors, len == rows
	colHead        []int  // column anchors, len == cols
	nodes          []node // cell arena
	free           []int  // released arena slots (LIFO)
	live           int    // number of linked cells
	validateNaNInf bool   // numeric guard for Insert
}

var _ Reader = (*Matrix)(nil)

// New creates an empty rows×cols matrix: every anchor present, no cells.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions tagged
//     with the requested shape ("Sparse.New(0,5): ...").
//   - Stage 2: allocate both anchor arrays filled with nilIndex.
//   - Stage 3: reserve arena capacity from WithCapacity.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(rows+cols), Space O(rows+cols+capacity).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	m := &Matrix{
		rows:           rows,
		cols:           cols,
		rowHead:        make([]int, rows),
		colHead:        make([]int, cols),
		nodes:          make([]node, 0, o.capacity),
		validateNaNInf: o.validateNaNInf,
	}
	for i := range m.rowHead {
		m.rowHead[i] = nilIndex
	}
	for j := range m.colHead {
		m.colHead[j] = nilIndex
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored (non-zero) cells. Complexity: O(1).
func (m *Matrix) Len() int { return m.live }

// Density returns Len()/(Rows·Cols).
func (m *Matrix) Density() float64 {
	return float64(m.live) / (float64(m.rows) * float64(m.cols))
}

// checkIndex validates 1 ≤ row ≤ Rows and 1 ≤ col ≤ Cols.
// Returns the bare sentinel; public methods wrap it with their context.
func (m *Matrix) checkIndex(row, col int) error {
	if row < 1 || row > m.rows {
		return ErrIndexOutOfBounds
	}
	if col < 1 || col > m.cols {
		return ErrIndexOutOfBounds
	}

	return nil
}

// Insert stores v at (row, col).
// MAIN DESCRIPTION:
//   - v == 0 is a no-op: zeros are never stored, and writing 0 does NOT delete
//     an existing cell (use RemoveAt for that).
//   - An existing cell at (row, col) is overwritten in place; chain topology is unchanged.
//   - Otherwise a new cell is spliced into its row chain and its column chain
//     before Insert returns.
//
// Implementation:
//   - Stage 1: bounds check, then numeric policy (both before any mutation).
//   - Stage 2: walk the row chain to the first cell with col >= target.
//   - Stage 3: overwrite on exact match; else alloc + linkIntoRow + linkIntoColumn.
//
// Errors:
//   - ErrIndexOutOfBounds for coordinates outside the shape.
//   - ErrNaNInf for NaN/±Inf when the numeric policy is on.
//
// Complexity:
//   - Time O(k_row + k_col), Space O(1) amortized (freelist reuse first).
func (m *Matrix) Insert(row, col int, v float64) error {
	if err := m.checkIndex(row, col); err != nil {
		return sparseErrorf(ctxInsert, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxInsert, row, col, ErrNaNInf)
	}
	if v == 0 {
		return nil
	}

	if _, cur := m.seekRow(row, col); cur != nilIndex && m.nodes[cur].col == col {
		m.nodes[cur].value = v // overwrite; no relinking

		return nil
	}

	idx := m.alloc(row, col, v)
	m.linkIntoRow(idx)
	m.linkIntoColumn(idx)
	m.live++

	return nil
}

// Get returns the value at (row, col), or 0 when no cell is stored there.
// The row chain is walked in increasing column order and stops as soon as the
// target column is reached or passed.
//
// Errors:
//   - ErrIndexOutOfBounds for coordinates outside the shape.
//
// Complexity: O(k_row).
func (m *Matrix) Get(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, sparseErrorf(ctxGet, row, col, err)
	}
	if _, cur := m.seekRow(row, col); cur != nilIndex && m.nodes[cur].col == col {
		return m.nodes[cur].value, nil
	}

	return 0, nil
}

// Remove releases EVERY cell of the matrix whose value equals v and returns
// how many were released.
// MAIN DESCRIPTION:
//   - (row, col) are validated but do not scope the removal: the sweep covers
//     all rows. RemoveAt deletes a single coordinate.
//
// Implementation:
//   - Stage 1: bounds check on (row, col).
//   - Stage 2: for r = 1..Rows walk the row chain; for each match unlink it
//     from the row chain, then from its column chain, then release the slot.
//
// Behavior highlights:
//   - After each individual match both chains are consistent again, so the
//     invariants hold at every step of a multi-match sweep.
//   - v == 0 and NaN never match a stored cell.
//
// Errors:
//   - ErrIndexOutOfBounds for coordinates outside the shape.
//
// Complexity:
//   - Time O(nnz + Σ k_col over removed cells), Space O(1).
func (m *Matrix) Remove(row, col int, v float64) (int, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, sparseErrorf(ctxRemove, row, col, err)
	}
	if v == 0 {
		return 0, nil
	}

	removed := 0
	var r, prev, cur, next int
	for r = 1; r <= m.rows; r++ {
		prev = nilIndex
		cur = m.rowHead[r-1]
		for cur != nilIndex {
			next = m.nodes[cur].nextInRow
			if m.nodes[cur].value == v {
				m.unlinkFromRow(cur, prev)
				m.unlinkFromColumn(cur)
				m.release(cur)
				removed++
			} else {
				prev = cur // predecessor only advances past survivors
			}
			cur = next
		}
	}

	return removed, nil
}

// RemoveAt releases the single cell at (row, col). It reports whether a cell
// was stored there.
//
// Errors:
//   - ErrIndexOutOfBounds for coordinates outside the shape.
//
// Complexity: O(k_row + k_col).
func (m *Matrix) RemoveAt(row, col int) (bool, error) {
	if err := m.checkIndex(row, col); err != nil {
		return false, sparseErrorf(ctxRemoveAt, row, col, err)
	}
	prev, cur := m.seekRow(row, col)
	if cur == nilIndex || m.nodes[cur].col != col {
		return false, nil
	}
	m.unlinkFromRow(cur, prev)
	m.unlinkFromColumn(cur)
	m.release(cur)

	return true, nil
}

// Clear releases every cell and keeps the shape. The arena is truncated, so
// memory held by previous cells becomes collectable.
func (m *Matrix) Clear() {
	for i := range m.rowHead {
		m.rowHead[i] = nilIndex
	}
	for j := range m.colHead {
		m.colHead[j] = nilIndex
	}
	m.nodes = m.nodes[:0]
	m.free = m.free[:0]
	m.live = 0
}

// Clone returns a deep copy with a compacted arena and the same numeric policy.
// Complexity: O(M + N + nnz).
func (m *Matrix) Clone() *Matrix {
	cp, _ := New(m.rows, m.cols, WithCapacity(m.live), WithValidateNaNInf(m.validateNaNInf))
	b := newRowMajorBuilder(cp)
	m.Do(func(c Cell) bool {
		b.append(c.Row, c.Col, c.Value)

		return true
	})

	return cp
}
