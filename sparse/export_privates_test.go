// SPDX-License-Identifier: MIT

// Test-Bridge (white-box) for chain internals.
//
// Purpose:
//   - Expose chain lengths, arena accounting and the private link helpers to
//     sparse_test ONLY. The file is compiled for tests only (_test.go suffix),
//     so none of this widens the production API.

package sparse

// RowChainLen_TestOnly returns the number of cells linked in row r's chain.
func RowChainLen_TestOnly(m *Matrix, r int) int {
	n := 0
	for cur := m.rowHead[r-1]; cur != nilIndex; cur = m.nodes[cur].nextInRow {
		n++
	}

	return n
}

// ColChainLen_TestOnly returns the number of cells linked in column c's chain.
func ColChainLen_TestOnly(m *Matrix, c int) int {
	n := 0
	for cur := m.colHead[c-1]; cur != nilIndex; cur = m.nodes[cur].nextInCol {
		n++
	}

	return n
}

// Arena_TestOnly reports the arena size and the freelist length.
func Arena_TestOnly(m *Matrix) (slots, free int) {
	return len(m.nodes), len(m.free)
}

// CorruptRowLink_TestOnly detaches the head of row r from its row chain only,
// leaving the cell reachable from its column: a half-linked cell.
func CorruptRowLink_TestOnly(m *Matrix, r int) {
	if head := m.rowHead[r-1]; head != nilIndex {
		m.rowHead[r-1] = m.nodes[head].nextInRow
	}
}

// LinkHelpers_TestOnly runs linkIntoRow/linkIntoColumn on a freshly allocated cell
// and returns the predecessor each helper reported, translated to the
// predecessor's column (row helper) and row (column helper); 0 means "head".
func LinkHelpers_TestOnly(m *Matrix, row, col int, v float64) (prevCol, prevRow int) {
	idx := m.alloc(row, col, v)
	if p := m.linkIntoRow(idx); p != nilIndex {
		prevCol = m.nodes[p].col
	}
	if p := m.linkIntoColumn(idx); p != nilIndex {
		prevRow = m.nodes[p].row
	}
	m.live++

	return prevCol, prevRow
}
