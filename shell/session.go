// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

var (
	// ErrUnknownCommand is reported for a verb that is neither a command nor an alias.
	ErrUnknownCommand = errors.New("shell: unknown command")

	// ErrUsage is reported for wrong arity or unparsable arguments.
	ErrUsage = errors.New("shell: usage")

	errQuit = errors.New("shell: quit")
)

// Slot selects one of the two session matrices.
type Slot int

const (
	First Slot = iota
	Second
)

// String returns "first" or "second".
func (s Slot) String() string {
	if s == Second {
		return "second"
	}

	return "first"
}

// Session is one interactive run: two matrices, the active selector, and the
// output sink. A Session is not safe for concurrent use.
type Session struct {
	id     string
	log    *slog.Logger
	out    io.Writer
	render renderer
	prompt string

	matOpts []sparse.Option
	mats    [2]*sparse.Matrix
	active  Slot

	cmds  []*command
	index map[string]*command
}

// New builds a session writing to out. Unless overridden with WithMatrix,
// both matrices start empty with the configured shape.
//
// Errors: sparse.ErrInvalidDimensions for a non-positive WithShape.
func New(out io.Writer, opts ...Option) (*Session, error) {
	o := gatherOptions(opts...)

	s := &Session{
		id:      uuid.NewString()[:8],
		out:     out,
		render:  renderer{pretty: o.pretty},
		prompt:  o.prompt,
		matOpts: o.matOpts,
		mats:    o.mats,
	}
	s.log = o.logger.With("session", s.id)
	for i := range s.mats {
		if s.mats[i] != nil {
			continue
		}
		m, err := sparse.New(o.rows, o.cols, s.matOpts...)
		if err != nil {
			return nil, fmt.Errorf("shell: %s matrix: %w", Slot(i), err)
		}
		s.mats[i] = m
	}
	s.cmds, s.index = buildCommands()

	return s, nil
}

// ID returns the short session identifier attached to every log record.
func (s *Session) ID() string { return s.id }

// Active returns the selected slot.
func (s *Session) Active() Slot { return s.active }

// Matrix returns the matrix held in slot.
func (s *Session) Matrix(slot Slot) *sparse.Matrix { return s.mats[slot] }

func (s *Session) current() *sparse.Matrix { return s.mats[s.active] }

// Run reads commands line by line from in until quit, EOF, or ctx is done.
// Command failures are printed and logged; the loop continues. Only read
// errors and context cancellation end Run with an error.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.log.Info("session started", "first", sparse.ShapeString(s.mats[First]),
		"second", sparse.ShapeString(s.mats[Second]))
	defer s.log.Info("session ended")

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			break
		}
		quit, err := s.Exec(sc.Text())
		if err != nil {
			s.render.err(s.out, err)
		}
		if quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("shell: read: %w", err)
	}

	return nil
}

// Exec runs a single command line. Blank lines and "#" comments are
// ignored. quit reports that the line asked to end the session.
func (s *Session) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := s.index[verb]
	if !ok {
		err = fmt.Errorf("%w %q (try \"help\")", ErrUnknownCommand, verb)
		s.log.Warn("command rejected", "verb", verb, "err", err)

		return false, err
	}
	if cmd.arity >= 0 && len(args) != cmd.arity {
		err = cmd.usageError()
		s.log.Warn("command rejected", "cmd", cmd.name, "err", err)

		return false, err
	}

	s.log.Debug("command", "cmd", cmd.name, "args", args, "active", s.active)
	err = cmd.run(s, args)
	if errors.Is(err, errQuit) {
		return true, nil
	}
	if err != nil {
		s.log.Warn("command failed", "cmd", cmd.name, "err", err)

		return false, err
	}

	return false, nil
}
