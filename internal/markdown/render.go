package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/labkit/internal/feedback"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	openStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	exactStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	presentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	absentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderDone(done bool) string {
	if done {
		return doneStyle.Render("done")
	}
	return openStyle.Render("open")
}

// RenderAmount colours a signed amount by direction.
func RenderAmount(signed string, income bool) string {
	if income {
		return incomeStyle.Render(signed)
	}
	return expenseStyle.Render(signed)
}

// RenderFeedback draws each guessed letter as a coloured tile.
func RenderFeedback(guess []rune, tags []feedback.Tag) string {
	parts := make([]string, len(guess))
	for i, r := range guess {
		s := " " + string(r) + " "
		switch tags[i] {
		case feedback.Exact:
			parts[i] = exactStyle.Render(s)
		case feedback.Present:
			parts[i] = presentStyle.Render(s)
		default:
			parts[i] = absentStyle.Render(s)
		}
	}
	return strings.Join(parts, "")
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
