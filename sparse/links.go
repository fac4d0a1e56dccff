// SPDX-License-Identifier: MIT

// Package sparse - arena slots and chain splicing.
//
// Every structural edit goes through the helpers below. Each one keeps its
// own chain sorted; callers pair them (row + column) inside a single method
// so no other observer can see a cell that is linked into only one chain.

package sparse

// alloc takes a slot from the freelist (or grows the arena) and fills it with
// an unlinked cell. The caller must link it into both chains.
func (m *Matrix) alloc(row, col int, v float64) int {
	n := node{row: row, col: col, value: v, nextInRow: nilIndex, nextInCol: nilIndex}
	if k := len(m.free); k > 0 {
		idx := m.free[k-1]
		m.free = m.free[:k-1]
		m.nodes[idx] = n

		return idx
	}
	m.nodes = append(m.nodes, n)

	return len(m.nodes) - 1
}

// release returns an already unlinked slot to the freelist and decrements
// the live counter. The slot is zeroed so a stale index can never read a value.
func (m *Matrix) release(idx int) {
	m.nodes[idx] = node{nextInRow: nilIndex, nextInCol: nilIndex}
	m.free = append(m.free, idx)
	m.live--
}

// seekRow walks row's chain and returns (prev, cur) where cur is the first
// cell with col >= target (or nilIndex) and prev is its predecessor
// (nilIndex when cur is the head).
func (m *Matrix) seekRow(row, col int) (prev, cur int) {
	prev = nilIndex
	cur = m.rowHead[row-1]
	for cur != nilIndex && m.nodes[cur].col < col {
		prev = cur
		cur = m.nodes[cur].nextInRow
	}

	return prev, cur
}

// seekCol is the column-chain twin of seekRow: cur is the first cell with
// row >= target.
func (m *Matrix) seekCol(col, row int) (prev, cur int) {
	prev = nilIndex
	cur = m.colHead[col-1]
	for cur != nilIndex && m.nodes[cur].row < row {
		prev = cur
		cur = m.nodes[cur].nextInCol
	}

	return prev, cur
}

// linkIntoRow splices idx into its row chain keeping columns increasing and
// returns the predecessor it was spliced after (nilIndex: new head).
// Pre: no cell with the same column is linked in that row.
func (m *Matrix) linkIntoRow(idx int) int {
	n := &m.nodes[idx]
	prev, cur := m.seekRow(n.row, n.col)
	n.nextInRow = cur
	if prev == nilIndex {
		m.rowHead[n.row-1] = idx
	} else {
		m.nodes[prev].nextInRow = idx
	}

	return prev
}

// linkIntoColumn splices idx into its column chain keeping rows increasing
// and returns the predecessor it was spliced after (nilIndex: new head).
// Pre: no cell with the same row is linked in that column.
func (m *Matrix) linkIntoColumn(idx int) int {
	n := &m.nodes[idx]
	prev, cur := m.seekCol(n.col, n.row)
	n.nextInCol = cur
	if prev == nilIndex {
		m.colHead[n.col-1] = idx
	} else {
		m.nodes[prev].nextInCol = idx
	}

	return prev
}

// unlinkFromRow detaches idx from its row chain given its known predecessor.
func (m *Matrix) unlinkFromRow(idx, prev int) {
	next := m.nodes[idx].nextInRow
	if prev == nilIndex {
		m.rowHead[m.nodes[idx].row-1] = next
	} else {
		m.nodes[prev].nextInRow = next
	}
	m.nodes[idx].nextInRow = nilIndex
}

// unlinkFromColumn locates idx in its column chain by scanning for its row
// index, detaches it and returns the predecessor it was unlinked from.
func (m *Matrix) unlinkFromColumn(idx int) int {
	n := &m.nodes[idx]
	prev, cur := m.seekCol(n.col, n.row)
	if cur != idx {
		// Unreachable while the column chain is intact; Validate reports the cause.
		return prev
	}
	if prev == nilIndex {
		m.colHead[n.col-1] = n.nextInCol
	} else {
		m.nodes[prev].nextInCol = n.nextInCol
	}
	n.nextInCol = nilIndex

	return prev
}

// rowMajorBuilder appends cells that arrive in strictly increasing row-major
// order, linking each in O(1) through per-row and per-column tails. It backs
// Clone, Transpose and Add, where the source already yields sorted cells.
type rowMajorBuilder struct {
	m       *Matrix
	rowTail []int
	colTail []int
}

// newRowMajorBuilder prepares tails for an empty m.
func newRowMajorBuilder(m *Matrix) *rowMajorBuilder {
	b := &rowMajorBuilder{
		m:       m,
		rowTail: make([]int, m.rows),
		colTail: make([]int, m.cols),
	}
	for i := range b.rowTail {
		b.rowTail[i] = nilIndex
	}
	for j := range b.colTail {
		b.colTail[j] = nilIndex
	}

	return b
}

// append links a non-zero cell after the current tails. Zero values are skipped.
func (b *rowMajorBuilder) append(row, col int, v float64) {
	if v == 0 {
		return
	}
	m := b.m
	idx := m.alloc(row, col, v)
	if t := b.rowTail[row-1]; t == nilIndex {
		m.rowHead[row-1] = idx
	} else {
		m.nodes[t].nextInRow = idx
	}
	b.rowTail[row-1] = idx
	if t := b.colTail[col-1]; t == nilIndex {
		m.colHead[col-1] = idx
	} else {
		m.nodes[t].nextInCol = idx
	}
	b.colTail[col-1] = idx
	m.live++
}
