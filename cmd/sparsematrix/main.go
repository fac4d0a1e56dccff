// SPDX-License-Identifier: MIT

// Command sparsematrix is an interactive shell and one-shot tool over
// orthogonal-list sparse matrices.
//
// Usage:
//
//	sparsematrix [repl] [--first FILE] [--second FILE] [--rows N --cols N]
//	sparsematrix print FILE
//	sparsematrix sum|add|multiply FILE_A FILE_B
//	sparsematrix config
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sparsematrix:", err)
		stop()
		os.Exit(1)
	}
}
