// Package lvlathsparse is a sparse matrix toolkit built on orthogonal lists:
// every stored cell sits on two sorted singly linked chains, one per row and
// one per column, so both row and column walks cost only the cells they visit.
//
// Layout:
//
//	sparse/           the engine: Matrix, Insert/Get/Remove, visitors,
//	                  Sum/Add/Multiply/Transpose/Scale/MatVec, invariant checks
//	sparse/loader/    "rows cols" + "row col value" text format
//	shell/            line-oriented session over two matrices (first, second)
//	config/           YAML configuration validated with struct tags
//	cmd/sparsematrix/ cobra CLI: interactive shell and one-shot commands
//	examples/         runnable walkthroughs
//
// Quick ASCII example (2×3, three stored cells):
//
//	        col1   col2   col3
//	row1 ─▶ (1,1) ───────▶ (1,3)
//	          │              │
//	row2 ─▶ (2,1)            ▼
//	                        nil
//
// Coordinates are 1-based everywhere. Zero is never stored.
package lvlathsparse
