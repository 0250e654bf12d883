// Package tableprint renders indexed tables for the shell's listings.
package tableprint

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	tsize "github.com/kopoli/go-terminal-size"
)

// IndexHeader is the title of the column added by PrintIndexed.
const IndexHeader = "(index)"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type Printer struct {
	Out io.Writer
	// FitTerminal limits the table to the terminal width when one is attached.
	FitTerminal bool
}

func (p Printer) Print(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if p.FitTerminal {
		if size, err := tsize.GetSize(); err == nil && size.Width > 0 {
			t = t.Width(size.Width)
		}
	}

	_, err := fmt.Fprintln(p.Out, t.Render())
	return err
}

// PrintIndexed prefixes every row with its zero-based position.
func (p Printer) PrintIndexed(headers []string, rows [][]string) error {
	indexedRows := make([][]string, len(rows))
	for i, row := range rows {
		indexedRows[i] = append([]string{strconv.Itoa(i)}, row...)
	}

	return p.Print(append([]string{IndexHeader}, headers...), indexedRows)
}
