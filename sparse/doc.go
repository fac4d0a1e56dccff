// Package sparse stores mostly-zero numeric matrices as orthogonal lists.
//
// The sparse package provides:
//
//   - Matrix: an M×N matrix that keeps only non-zero cells, each one linked
//     into an ordered chain for its row (increasing column) and an ordered
//     chain for its column (increasing row).
//   - Point access with 1-based coordinates: Insert, Get, Remove (by value,
//     across the whole matrix), RemoveAt (one coordinate).
//   - Read-only visitors (Do, DoRow, DoCol) and a dense Print for display.
//   - Combining algorithms over the Reader contract: Sum (B overwrites A),
//     Multiply (dense triple loop), plus chain-driven Add, Transpose, Scale
//     and MatVec.
//   - Constructors from an explicit layout: FromDense, Identity.
//
// Cells live in an arena threaded by integer indices instead of pointers, so
// a removed cell is recycled through a freelist and no caller can hold a
// reference into the chains; only Cell copies leave the package.
//
// Quick example:
//
//	m, _ := sparse.New(2, 2)
//	_ = m.Insert(1, 2, 9)
//	fmt.Print(m) // [0, 9]
//	             // [0, 0]
//
// See the package examples and the loader subpackage for the text format.
package sparse
