// SPDX-License-Identifier: MIT

// Package loader reads and writes the triple text format of sparse matrices.
//
// Format:
//
//	# comments and blank lines are ignored
//	rows cols
//	row col value
//	row col value
//	...
//
// The header must come first. Every triple is fed to (*sparse.Matrix).Insert
// on a freshly constructed matrix, so zero values are skipped, repeated
// coordinates overwrite, and out-of-range coordinates fail with
// sparse.ErrIndexOutOfBounds wrapped with the line number.
//
// A header is rejected with ErrTooLarge when either dimension exceeds
// MaxDimension: New allocates one anchor per row and per column up front,
// so the header alone decides that cost.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

var (
	// ErrMalformedHeader is returned when the first data line is not "rows cols".
	ErrMalformedHeader = errors.New("loader: malformed header")

	// ErrMalformedTriple is returned when a data line is not "row col value".
	ErrMalformedTriple = errors.New("loader: malformed triple")

	// ErrEmpty is returned when the input holds no header at all.
	ErrEmpty = errors.New("loader: empty input")

	// ErrTooLarge is returned when a header dimension exceeds MaxDimension.
	ErrTooLarge = errors.New("loader: dimension too large")
)

// MaxDimension bounds rows and cols accepted from a header (8 MiB of anchors per side).
const MaxDimension = 1 << 20

const commentPrefix = "#"

// lineErrorf tags err with the 1-based input line number.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// Read parses the triple format from r into a new matrix built with opts.
//
// Errors:
//   - ErrEmpty, ErrMalformedHeader, ErrMalformedTriple, ErrTooLarge (with line number);
//   - sparse.ErrInvalidDimensions for a non-positive header;
//   - sparse.ErrIndexOutOfBounds / sparse.ErrNaNInf from Insert (with line number);
//   - read errors from r.
func Read(r io.Reader, opts ...sparse.Option) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)
	var (
		m    *sparse.Matrix
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], commentPrefix) {
			continue
		}

		if m == nil {
			rows, cols, err := parseHeader(fields)
			if err != nil {
				return nil, lineErrorf(line, err)
			}
			if m, err = sparse.New(rows, cols, opts...); err != nil {
				return nil, lineErrorf(line, err)
			}
			continue
		}

		row, col, v, err := parseTriple(fields)
		if err != nil {
			return nil, lineErrorf(line, err)
		}
		if err = m.Insert(row, col, v); err != nil {
			return nil, lineErrorf(line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	if m == nil {
		return nil, ErrEmpty
	}

	return m, nil
}

// Load opens path and delegates to Read.
func Load(path string, opts ...sparse.Option) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Write emits m in the triple format: the header, then one line per stored
// cell in row-major order. Read(Write(m)) reproduces m exactly.
func Write(w io.Writer, m *sparse.Matrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Shape()
	if _, err := fmt.Fprintf(bw, "%d %d\n", rows, cols); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	var werr error
	m.Do(func(c sparse.Cell) bool {
		_, werr = fmt.Fprintf(bw, "%d %d %s\n", c.Row, c.Col,
			strconv.FormatFloat(c.Value, 'g', -1, 64))

		return werr == nil
	})
	if werr != nil {
		return fmt.Errorf("loader: write: %w", werr)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}

	return nil
}

// Save writes m to path (created or truncated, mode 0o644).
func Save(path string, m *sparse.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("loader: %w", cerr)
		}
	}()

	return Write(f, m)
}

// parseHeader reads "rows cols".
func parseHeader(fields []string) (rows, cols int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedHeader, len(fields))
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q", ErrMalformedHeader, fields[0])
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: cols %q", ErrMalformedHeader, fields[1])
	}
	if rows > MaxDimension || cols > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d, limit %d per side", ErrTooLarge, rows, cols, MaxDimension)
	}

	return rows, cols, nil
}

// parseTriple reads "row col value".
func parseTriple(fields []string) (row, col int, v float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedTriple, len(fields))
	}
	if row, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: row %q", ErrMalformedTriple, fields[0])
	}
	if col, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: col %q", ErrMalformedTriple, fields[1])
	}
	if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: value %q", ErrMalformedTriple, fields[2])
	}

	return row, col, v, nil
}
