package activity

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/journal"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	gainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Model is the scrollable recent-activity feed backed by the session journal.
type Model struct {
	viewport viewport.Model
	entries  []journal.Entry
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.Render()
}

func (m *Model) SetEntries(entries []journal.Entry) {
	m.entries = entries
	m.Render()
}

func (m *Model) Render() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(timeStyle.Render("Nothing yet."))
		return
	}
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(timeStyle.Render(e.At.Local().Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(line(e))
		b.WriteString("\n")
	}
	m.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

func line(e journal.Entry) string {
	if e.Kind == journal.KindNotification {
		// Only the first line of multi-line toasts.
		text, _, _ := strings.Cut(e.Text, "\n")
		return text
	}
	delta := fmt.Sprintf("%+d", e.Delta)
	if e.Delta >= 0 {
		delta = gainStyle.Render(delta)
	} else {
		delta = lossStyle.Render(delta)
	}
	return fmt.Sprintf("%s %s → %d", e.Text, delta, e.Score)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Recent Activity"),
		"",
		m.viewport.View(),
	)
}
