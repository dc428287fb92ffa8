package toasts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/notifier"
)

var severityColors = map[constants.Severity]lipgloss.Color{
	constants.SeverityInfo:    lipgloss.Color("33"),
	constants.SeveritySuccess: lipgloss.Color("35"),
	constants.SeverityWarning: lipgloss.Color("208"),
	constants.SeverityError:   lipgloss.Color("196"),
}

const maxWidth = 40

// View stacks the visible toasts, oldest on top.
func View(items []notifier.Notification, width int) string {
	if len(items) == 0 {
		return ""
	}
	w := min(width, maxWidth)
	rows := make([]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, render(n, w))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

func render(n notifier.Notification, width int) string {
	color, ok := severityColors[n.Severity]
	if !ok {
		color = severityColors[constants.SeverityInfo]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(color).
		Padding(0, 1).
		Width(width).
		Render(n.Text)
}
