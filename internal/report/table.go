// internal/report/table.go
package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Table renders rows as a bordered terminal table.
func Table(rows []Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("size", "impl", "metric", "n", "n filt", "median", "q1", "q3", "p95", "mean ± std").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 3:
				return numberStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(
			r.Size.String(),
			r.Implementation.Label(),
			r.Metric.Verb(),
			strconv.Itoa(r.Raw),
			strconv.Itoa(r.Filtered),
			us(r.Median),
			us(r.Q1),
			us(r.Q3),
			us(r.P95),
			us(r.Mean)+" ± "+us(r.Std),
		)
	}
	return t.Render()
}

func us(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
