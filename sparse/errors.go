// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Every public operation returns these sentinels (possibly wrapped
// with call-site context) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for nonsensical Option values (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so it is easy to grep in logs.
// Sentinels are never returned bare from methods that know the coordinates:
// sparseErrorf attaches "Sparse.<Method>(row,col)" and keeps the sentinel
// reachable through %w.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> numeric policy -> structural corruption.

var (
	// ErrInvalidDimensions is returned by New when rows <= 0 or cols <= 0.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column outside [1,Rows]×[1,Cols].
	ErrIndexOutOfBounds = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Sum on
	// different shapes or Multiply where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil operand was passed to a combining algorithm.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrCorrupt is reported by Validate when a chain invariant does not hold.
	ErrCorrupt = errors.New("sparse: corrupt chain structure")
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxInsert   = "Insert"
	ctxGet      = "Get"
	ctxRemove   = "Remove"
	ctxRemoveAt = "RemoveAt"
	ctxDoRow    = "DoRow"
	ctxDoCol    = "DoCol"
)

// sparseErrorf wraps err with the method tag and the coordinates the caller
// asked for, e.g. "Sparse.Get(4,1): sparse: index out of range".
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with a combining-algorithm tag ("Sum", "Multiply", ...).
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
