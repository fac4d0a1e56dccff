// SPDX-License-Identifier: MIT

package shell

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// Defaults for sessions built without options.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// Option configures a Session.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	prompt  string
	pretty  bool
	rows    int
	cols    int
	matOpts []sparse.Option
	mats    [2]*sparse.Matrix
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		rows:   DefaultRows,
		cols:   DefaultCols,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the session logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("shell: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithPrompt sets the string printed before each line is read; "" disables it.
func WithPrompt(p string) Option {
	return func(o *options) { o.prompt = p }
}

// WithPretty switches between styled tables and plain rows.
func WithPretty(on bool) Option {
	return func(o *options) { o.pretty = on }
}

// WithShape sets the shape of the empty matrices created at startup. "clear"
// keeps the current shape and "new" takes its shape from its arguments.
func WithShape(rows, cols int) Option {
	return func(o *options) { o.rows, o.cols = rows, cols }
}

// WithMatrixOptions forwards engine options to every matrix the session creates or loads.
func WithMatrixOptions(opts ...sparse.Option) Option {
	return func(o *options) { o.matOpts = append(o.matOpts, opts...) }
}

// WithMatrix preloads slot with m. A nil m keeps the default empty matrix.
// Panics on an unknown slot.
func WithMatrix(slot Slot, m *sparse.Matrix) Option {
	if slot != First && slot != Second {
		panic("shell: WithMatrix: unknown slot")
	}

	return func(o *options) { o.mats[slot] = m }
}
