package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RenderTable lays rows out under headers with a plain border.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// PrintTable writes RenderTable(headers, rows) to the output stream.
func (p *Presenter) PrintTable(headers []string, rows [][]string) {
	fmt.Fprintln(p.out, RenderTable(headers, rows))
}
