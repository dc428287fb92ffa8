package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/breathing"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/modal"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/toasts"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateBreathing:
		content = m.overlay(m.viewBreathing())
	case constants.StateTracker:
		content = m.overlay(m.viewTracker())
	case constants.StateConfirmQuit:
		content = m.overlay(m.form.View())
	default:
		content = m.viewDashboard()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("🧠 MindfulMeet")
	notes := toasts.View(m.session.Notes.Active(), m.width/2)
	if notes == "" || m.width == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, notes)
	}
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(notes), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), notes)
}

func (m Model) viewDashboard() string {
	style := paneStyle
	if m.session.FocusMode() {
		style = focusPaneStyle
	}
	recStyle, toolStyle := style, style
	if m.pane == PaneRecommendations {
		recStyle = activePaneStyle
	} else {
		toolStyle = activePaneStyle
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		style.Render(m.scoreModel.View()),
		style.Render(m.activityModel.View()),
	)
	middle := style.Render(m.timelineModel.View())
	right := lipgloss.JoinVertical(lipgloss.Left,
		recStyle.Render(m.recommendations.View()),
		toolStyle.Render(m.tools.View()),
	)

	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right))
}

func (m Model) overlay(body string) string {
	if m.width == 0 || m.height == 0 {
		return modalStyle.Render(body)
	}
	return lipgloss.Place(m.width, max(m.height-4, 1),
		lipgloss.Center, lipgloss.Center,
		modalStyle.Render(body),
	)
}

func (m Model) viewBreathing() string {
	current := m.session.Modals.Current()
	if current == nil || current.Exercise == nil {
		return ""
	}
	ex := current.Exercise

	button := ex.ButtonLabel()
	if ex.CanStart() {
		button = "[enter] " + button
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("🌸 Mindful Breathing Exercise"),
		"",
		breathingCircle(ex.Phase()),
		"",
		ex.Instruction(),
		statLabelStyle.Render(fmt.Sprintf("%d / %d", ex.Ticks(), ex.Total())),
		"",
		button+"    [esc] Close",
	)
}

func breathingCircle(phase breathing.Phase) string {
	size := 3
	if phase == breathing.PhaseInhale {
		size = 5
	}
	circle := lipgloss.NewStyle().
		Background(lipgloss.Color("99")).
		Width(size * 2).
		Height(size).
		Render("")
	// Fixed box around the circle.
	return lipgloss.Place(10, 5, lipgloss.Center, lipgloss.Center, circle)
}

func (m Model) viewTracker() string {
	current := m.session.Modals.Current()
	if current == nil || current.Kind != modal.KindTracker {
		return ""
	}
	stats := current.Tracker

	stat := func(number, label string) string {
		return lipgloss.NewStyle().Padding(0, 2).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				statNumberStyle.Render(number),
				statLabelStyle.Render(label),
			),
		)
	}

	recs := make([]string, 0, len(stats.Recommendations))
	for _, r := range stats.Recommendations {
		recs = append(recs, "• "+r)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("🤖 AI Usage Tracker"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			stat(fmt.Sprintf("%dh", stats.UsageHours), "Today's AI Usage"),
			stat(fmt.Sprintf("%d%%", stats.ProductivityBoost), "Productivity Boost"),
			stat(fmt.Sprintf("%d%%", stats.BurnoutRisk), "Burnout Risk"),
		),
		"",
		lipgloss.JoinVertical(lipgloss.Left,
			warningStyle.Render("Recommendations:"),
			strings.Join(recs, "\n"),
		),
		"",
		"[esc] Close",
	)
}
