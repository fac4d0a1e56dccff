// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvlath-sparse/sparse"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	zeroStyle   = cellStyle.Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderer writes session output either as plain rows ("0 9") or as
// lipgloss-styled tables.
type renderer struct {
	pretty bool
}

func (r renderer) info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func (r renderer) err(w io.Writer, err error) {
	msg := "error: " + err.Error()
	if r.pretty {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w, msg)
}

// matrix prints every cell of m, zeros included, under title.
func (r renderer) matrix(w io.Writer, title string, m *sparse.Matrix) {
	dense := m.Print()
	if !r.pretty {
		fmt.Fprintf(w, "%s (%s):\n", title, sparse.ShapeString(m))
		for _, row := range dense {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatValue(v)
			}
			fmt.Fprintln(w, strings.Join(cells, " "))
		}

		return
	}

	headers := make([]string, m.Cols()+1)
	for j := 1; j <= m.Cols(); j++ {
		headers[j] = strconv.Itoa(j)
	}
	rows := make([][]string, len(dense))
	for i, row := range dense {
		cells := make([]string, len(row)+1)
		cells[0] = strconv.Itoa(i + 1)
		for j, v := range row {
			cells[j+1] = formatValue(v)
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return headerStyle
			case dense[row][col-1] == 0:
				return zeroStyle
			default:
				return cellStyle
			}
		})

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %s", title, sparse.ShapeString(m)))+
		" "+mutedStyle.Render(fmt.Sprintf("%d non-zero", m.Len())))
	fmt.Fprintln(w, t.Render())
}

func (r renderer) help(w io.Writer, rows [][2]string) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}
	fmt.Fprintln(w, "commands:")
	for _, row := range rows {
		syn := fmt.Sprintf("  %-*s", width, row[0])
		if r.pretty {
			syn = titleStyle.Render(syn)
		}
		fmt.Fprintf(w, "%s  %s\n", syn, row[1])
	}
}
