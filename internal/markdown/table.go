package markdown

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/labkit/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderTaskTable(tasks []*model.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{strconv.Itoa(t.ID), t.Description, t.Category, RenderDone(t.Done)}
	}
	return renderTable([]string{"ID", "Description", "Category", "Status"}, rows)
}

func RenderTransactionTable(txs []*model.Transaction) string {
	if len(txs) == 0 {
		return "No transactions found."
	}
	rows := make([][]string, len(txs))
	for i, tx := range txs {
		amount := RenderAmount(tx.Signed().StringFixed(2), tx.Type == model.Income)
		rows[i] = []string{strconv.Itoa(tx.ID), tx.Description, tx.Category, amount}
	}
	return renderTable([]string{"ID", "Description", "Category", "Amount"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
