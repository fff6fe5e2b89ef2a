package main

import (
	"strings"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).MaxWidth(60)
	captionStyle = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderView draws the page as a bordered table followed by the pager caption.
func renderView(schema *model.Schema[model.Post], view *ports.SessionView) string {
	rows := make([][]string, 0, len(view.Items))
	for _, post := range view.Items {
		rows = append(rows, schema.Display(post))
	}

	grid := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(schema.Labels()...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	var sb strings.Builder

	sb.WriteString(grid.Render())
	sb.WriteString("\n")
	sb.WriteString(captionStyle.Render(view.Caption()))

	if view.Failed {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(view.Error))
	}

	return sb.String()
}
