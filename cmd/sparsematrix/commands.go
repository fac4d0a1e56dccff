// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-sparse/config"
	"github.com/katalvlaran/lvlath-sparse/shell"
	"github.com/katalvlaran/lvlath-sparse/sparse"
	"github.com/katalvlaran/lvlath-sparse/sparse/loader"
)

// app carries state resolved once by the root PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

type replFlags struct {
	first, second string
	rows, cols    int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rf := &replFlags{}

	root := &cobra.Command{
		Use:   "sparsematrix",
		Short: "Interactive shell over orthogonal-list sparse matrices",
		Long: `sparsematrix keeps two sparse matrices ("first" and "second") and
lets you insert, query, remove, load, save, sum and multiply them.
Without a subcommand it starts the interactive shell.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRepl(cmd, rf)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug|info|warn|error)")

	repl := &cobra.Command{
		Use:     "repl",
		Short:   "Start the interactive shell (default)",
		Aliases: []string{"shell"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRepl(cmd, rf)
		},
	}
	for _, c := range []*cobra.Command{root, repl} {
		c.Flags().StringVar(&rf.first, "first", "", "load the first matrix from FILE")
		c.Flags().StringVar(&rf.second, "second", "", "load the second matrix from FILE")
		c.Flags().IntVar(&rf.rows, "rows", 0, "rows of empty startup matrices, >= 1 (overrides config)")
		c.Flags().IntVar(&rf.cols, "cols", 0, "cols of empty startup matrices, >= 1 (overrides config)")
	}

	printCmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a matrix file densely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.oneShot(cmd, "print", args[0], "")
		},
	}

	root.AddCommand(repl, printCmd,
		a.binaryCmd("sum", "Overlay FILE_B on FILE_A (B wins where both are set)"),
		a.binaryCmd("add", "Element-wise FILE_A + FILE_B"),
		a.binaryCmd("multiply", "Matrix product FILE_A x FILE_B"),
		&cobra.Command{
			Use:   "config",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := a.cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)

				return err
			},
		},
	)

	return root
}

func (a *app) binaryCmd(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " FILE_A FILE_B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.oneShot(cmd, verb, args[0], args[1])
		},
	}
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.log.Debug("configuration loaded", "path", a.configPath, "rows", cfg.Matrix.Rows, "cols", cfg.Matrix.Cols)

	return nil
}

// sessionOptions maps the configuration onto shell options for out.
func (a *app) sessionOptions(out io.Writer) []shell.Option {
	var pretty bool
	switch a.cfg.Shell.Pretty {
	case config.PrettyAlways:
		pretty = true
	case config.PrettyAuto:
		pretty = shell.IsTerminal(out)
	}

	return []shell.Option{
		shell.WithLogger(a.log),
		shell.WithPretty(pretty),
		shell.WithShape(a.cfg.Matrix.Rows, a.cfg.Matrix.Cols),
		shell.WithMatrixOptions(a.cfg.MatrixOptions()...),
	}
}

func (a *app) runRepl(cmd *cobra.Command, rf *replFlags) error {
	if cmd.Flags().Changed("rows") {
		a.cfg.Matrix.Rows = rf.rows
	}
	if cmd.Flags().Changed("cols") {
		a.cfg.Matrix.Cols = rf.cols
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("--rows/--cols: %w", err)
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	interactive := isInteractive(in)
	opts := a.sessionOptions(out)
	if interactive {
		opts = append(opts, shell.WithPrompt(a.cfg.Shell.Prompt))
	}

	for slot, path := range map[shell.Slot]string{shell.First: rf.first, shell.Second: rf.second} {
		if path == "" {
			continue
		}
		m, err := loader.Load(path, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		opts = append(opts, shell.WithMatrix(slot, m))
	}

	s, err := shell.New(out, opts...)
	if err != nil {
		return err
	}
	if interactive {
		fmt.Fprintln(out, "sparse matrix shell, type \"help\" for commands")
	}

	return s.Run(cmd.Context(), in)
}

// oneShot loads one or two files into a plain session and runs verb once.
func (a *app) oneShot(cmd *cobra.Command, verb, pathA, pathB string) error {
	out := cmd.OutOrStdout()
	opts := a.sessionOptions(out)

	for slot, path := range []string{pathA, pathB} {
		if path == "" {
			continue
		}
		m, err := loader.Load(path, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		opts = append(opts, shell.WithMatrix(shell.Slot(slot), m))
	}

	s, err := shell.New(out, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("one-shot", "verb", verb, "a", sparse.ShapeString(s.Matrix(shell.First)),
		"b", sparse.ShapeString(s.Matrix(shell.Second)))
	_, err = s.Exec(verb)

	return err
}

// isInteractive reports whether r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
