// SPDX-License-Identifier: MIT

// Package sparse: domain types.
// This file contains ONLY the types that cross the package boundary (Cell,
// Reader) and the private arena node. Errors and options live in dedicated
// files (errors.go, options.go).
package sparse

import "fmt"

// nilIndex marks an empty anchor or the end of a chain.
const nilIndex = -1

// Cell is a copy of one stored non-zero entry. Row and Col are 1-based.
// Cells are values: holding one never pins engine memory.
type Cell struct {
	Row   int
	Col   int
	Value float64
}

// String renders the cell as "(row,col)=value".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)=%g", c.Row, c.Col, c.Value)
}

// Reader is the read-only contract the combining algorithms consume.
// Coordinates are 1-based; Get returns 0 for absent cells.
type Reader interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// Get returns the value at (row, col) or ErrIndexOutOfBounds.
	Get(row, col int) (float64, error)
}

// node is one arena slot. A live node is threaded into exactly one row chain
// (via nextInRow) and exactly one column chain (via nextInCol). A released
// node has row == 0 and sits on the freelist.
type node struct {
	row, col  int     // 1-based coordinates; row == 0 means released
	value     float64 // never 0 while live
	nextInRow int     // next node of the same row (higher col) or nilIndex
	nextInCol int     // next node of the same column (higher row) or nilIndex
}
