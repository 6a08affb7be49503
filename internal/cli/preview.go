package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/claryai/tabula/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// renderPreview draws the table for a terminal, followed by a summary line
// and any warnings.
func renderPreview(tbl *model.StructuredTable) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(tbl.Headers...).
		Rows(tbl.Cells()...)

	var sb strings.Builder
	sb.WriteString(t.String())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("%s table, %d rows x %d columns", tbl.Format, tbl.NumRows(), tbl.NumCols())))
	for _, w := range tbl.Warnings {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render("warning: " + w))
	}
	return sb.String()
}
