// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-sparse/sparse"
	"github.com/katalvlaran/lvlath-sparse/sparse/loader"
)

type command struct {
	name    string
	aliases []string
	args    string // argument synopsis for usage lines
	help    string
	arity   int // exact argument count; -1 accepts any
	run     func(s *Session, args []string) error
}

func (c *command) usage() string {
	if c.args == "" {
		return c.name
	}

	return c.name + " " + c.args
}

func (c *command) usageError() error {
	return fmt.Errorf("%w: %s", ErrUsage, c.usage())
}

// buildCommands returns the command table in help order and its verb index
// (names and aliases).
func buildCommands() ([]*command, map[string]*command) {
	cmds := []*command{
		{name: "insert", aliases: []string{"inserir"}, args: "<row> <col> <value>", arity: 3,
			help: "store value at (row, col) of the active matrix; 0 is a no-op", run: (*Session).cmdInsert},
		{name: "get", aliases: []string{"obter"}, args: "<row> <col>", arity: 2,
			help: "show the value at (row, col)", run: (*Session).cmdGet},
		{name: "remove", aliases: []string{"remover"}, args: "<row> <col> <value>", arity: 3,
			help: "remove every cell equal to value (row, col only checked for range)", run: (*Session).cmdRemove},
		{name: "unset", aliases: []string{"apagar"}, args: "<row> <col>", arity: 2,
			help: "remove the single cell at (row, col)", run: (*Session).cmdUnset},
		{name: "print", aliases: []string{"imprimir"}, arity: 0,
			help: "print the active matrix", run: (*Session).cmdPrint},
		{name: "load", aliases: []string{"ler"}, args: "<file>", arity: 1,
			help: "replace the active matrix with the one read from file", run: (*Session).cmdLoad},
		{name: "save", aliases: []string{"salvar"}, args: "<file>", arity: 1,
			help: "write the active matrix to file", run: (*Session).cmdSave},
		{name: "use", aliases: []string{"usar"}, args: "first|second", arity: 1,
			help: "select the active matrix", run: (*Session).cmdUse},
		{name: "new", aliases: []string{"nova"}, args: "<rows> <cols>", arity: 2,
			help: "replace the active matrix with an empty one of the given shape", run: (*Session).cmdNew},
		{name: "clear", aliases: []string{"limpar"}, arity: 0,
			help: "drop every cell of the active matrix", run: (*Session).cmdClear},
		{name: "dims", aliases: []string{"dimensoes"}, arity: 0,
			help: "show shape and non-zero count of both matrices", run: (*Session).cmdDims},
		{name: "sum", aliases: []string{"somar"}, arity: 0,
			help: "first overlaid by second (second wins where both are set)", run: (*Session).cmdSum},
		{name: "add", aliases: []string{"adicionar"}, arity: 0,
			help: "element-wise first + second", run: (*Session).cmdAdd},
		{name: "multiply", aliases: []string{"multiplicar"}, arity: 0,
			help: "matrix product first x second", run: (*Session).cmdMultiply},
		{name: "transpose", aliases: []string{"transpor"}, arity: 0,
			help: "replace the active matrix with its transpose", run: (*Session).cmdTranspose},
		{name: "scale", aliases: []string{"escalar"}, args: "<alpha>", arity: 1,
			help: "multiply every cell of the active matrix by alpha", run: (*Session).cmdScale},
		{name: "matvec", aliases: []string{"vetor"}, args: "<x1> ... <xn>", arity: -1,
			help: "print the active matrix times the column vector x", run: (*Session).cmdMatVec},
		{name: "help", aliases: []string{"ajuda"}, arity: 0,
			help: "list commands", run: (*Session).cmdHelp},
		{name: "quit", aliases: []string{"exit", "sair"}, arity: 0,
			help: "end the session", run: (*Session).cmdQuit},
	}

	index := make(map[string]*command, 3*len(cmds))
	for _, c := range cmds {
		index[c.name] = c
		for _, a := range c.aliases {
			index[a] = c
		}
	}

	return cmds, index
}

func (s *Session) cmdInsert(args []string) error {
	row, col, err := parseCoords(args)
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	if err = s.current().Insert(row, col, v); err != nil {
		return err
	}
	s.render.info(s.out, "%s(%d, %d) = %s", s.active, row, col, formatValue(v))

	return nil
}

func (s *Session) cmdGet(args []string) error {
	row, col, err := parseCoords(args)
	if err != nil {
		return err
	}
	v, err := s.current().Get(row, col)
	if err != nil {
		return err
	}
	s.render.info(s.out, "%s(%d, %d) = %s", s.active, row, col, formatValue(v))

	return nil
}

func (s *Session) cmdRemove(args []string) error {
	row, col, err := parseCoords(args)
	if err != nil {
		return err
	}
	v, err := parseValue(args[2])
	if err != nil {
		return err
	}
	n, err := s.current().Remove(row, col, v)
	if err != nil {
		return err
	}
	s.render.info(s.out, "removed %d cell(s) equal to %s from %s", n, formatValue(v), s.active)

	return nil
}

func (s *Session) cmdUnset(args []string) error {
	row, col, err := parseCoords(args)
	if err != nil {
		return err
	}
	ok, err := s.current().RemoveAt(row, col)
	if err != nil {
		return err
	}
	if ok {
		s.render.info(s.out, "%s(%d, %d) removed", s.active, row, col)
	} else {
		s.render.info(s.out, "%s(%d, %d) was already 0", s.active, row, col)
	}

	return nil
}

func (s *Session) cmdPrint([]string) error {
	s.render.matrix(s.out, s.active.String(), s.current())

	return nil
}

func (s *Session) cmdLoad(args []string) error {
	m, err := loader.Load(args[0], s.matOpts...)
	if err != nil {
		return err
	}
	s.mats[s.active] = m
	s.log.Info("matrix loaded", "slot", s.active, "path", args[0], "shape", sparse.ShapeString(m), "nnz", m.Len())
	s.render.info(s.out, "loaded %s from %s (%s, %d non-zero)", s.active, args[0], sparse.ShapeString(m), m.Len())

	return nil
}

func (s *Session) cmdSave(args []string) error {
	if err := loader.Save(args[0], s.current()); err != nil {
		return err
	}
	s.render.info(s.out, "saved %s to %s", s.active, args[0])

	return nil
}

func (s *Session) cmdUse(args []string) error {
	switch strings.ToLower(args[0]) {
	case "first", "1", "a", "primeira":
		s.active = First
	case "second", "2", "b", "segunda":
		s.active = Second
	default:
		return fmt.Errorf("%w: use first|second, got %q", ErrUsage, args[0])
	}
	s.render.info(s.out, "active: %s", s.active)

	return nil
}

func (s *Session) cmdNew(args []string) error {
	rows, err := parseIndex("rows", args[0])
	if err != nil {
		return err
	}
	cols, err := parseIndex("cols", args[1])
	if err != nil {
		return err
	}
	m, err := sparse.New(rows, cols, s.matOpts...)
	if err != nil {
		return err
	}
	s.mats[s.active] = m
	s.render.info(s.out, "%s is now an empty %s matrix", s.active, sparse.ShapeString(m))

	return nil
}

func (s *Session) cmdClear([]string) error {
	s.current().Clear()
	s.render.info(s.out, "%s cleared", s.active)

	return nil
}

func (s *Session) cmdDims([]string) error {
	for _, slot := range []Slot{First, Second} {
		m := s.mats[slot]
		marker := " "
		if slot == s.active {
			marker = "*"
		}
		s.render.info(s.out, "%s %-6s %s, %d non-zero, density %.3f",
			marker, slot, sparse.ShapeString(m), m.Len(), m.Density())
	}

	return nil
}

func (s *Session) cmdSum([]string) error {
	c, err := sparse.Sum(s.mats[First], s.mats[Second])
	if err != nil {
		return err
	}
	s.render.matrix(s.out, "sum", c)

	return nil
}

func (s *Session) cmdAdd([]string) error {
	c, err := sparse.Add(s.mats[First], s.mats[Second])
	if err != nil {
		return err
	}
	s.render.matrix(s.out, "add", c)

	return nil
}

func (s *Session) cmdMultiply([]string) error {
	c, err := sparse.Multiply(s.mats[First], s.mats[Second])
	if err != nil {
		return err
	}
	s.render.matrix(s.out, "multiply", c)

	return nil
}

func (s *Session) cmdTranspose([]string) error {
	t, err := sparse.Transpose(s.current())
	if err != nil {
		return err
	}
	s.mats[s.active] = t
	s.render.info(s.out, "%s transposed to %s", s.active, sparse.ShapeString(t))

	return nil
}

func (s *Session) cmdScale(args []string) error {
	alpha, err := parseValue(args[0])
	if err != nil {
		return err
	}
	m, err := sparse.Scale(s.current(), alpha)
	if err != nil {
		return err
	}
	s.mats[s.active] = m
	s.render.info(s.out, "%s scaled by %s, %d non-zero", s.active, formatValue(alpha), m.Len())

	return nil
}

func (s *Session) cmdMatVec(args []string) error {
	x := make([]float64, len(args))
	for i, a := range args {
		v, err := parseValue(a)
		if err != nil {
			return err
		}
		x[i] = v
	}
	y, err := sparse.MatVec(s.current(), x)
	if err != nil {
		return err
	}
	cells := make([]string, len(y))
	for i, v := range y {
		cells[i] = formatValue(v)
	}
	s.render.info(s.out, "%s · x = [%s]", s.active, strings.Join(cells, " "))

	return nil
}

func (s *Session) cmdHelp([]string) error {
	rows := make([][2]string, 0, len(s.cmds))
	for _, c := range s.cmds {
		syn := c.usage()
		if len(c.aliases) > 0 {
			syn += " (" + strings.Join(c.aliases, ", ") + ")"
		}
		rows = append(rows, [2]string{syn, c.help})
	}
	s.render.help(s.out, rows)

	return nil
}

func (s *Session) cmdQuit([]string) error {
	return errQuit
}

func parseCoords(args []string) (row, col int, err error) {
	if row, err = parseIndex("row", args[0]); err != nil {
		return 0, 0, err
	}
	if col, err = parseIndex("col", args[1]); err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

func parseIndex(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrUsage, what, s)
	}

	return n, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value %q is not a number", ErrUsage, s)
	}

	return v, nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
