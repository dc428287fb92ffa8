package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/calendar"
	"github.com/julianstephens/mindfulmeet/internal/constants"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)

	meetingStyles = map[constants.StressTier]lipgloss.Style{
		constants.StressLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		constants.StressMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		constants.StressHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}

	aiTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	header   string
	entries  []calendar.Entry
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

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("◀ "+m.header+" ▶"),
		"",
		m.viewport.View(),
	)
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	// header and spacer
	m.viewport.Height = max(height-2, 1)
	m.Render()
}

// SetDay replaces the timeline wholesale.
func (m *Model) SetDay(header string, entries []calendar.Entry) {
	m.header = header
	m.entries = entries
	m.Render()
}

func (m *Model) Render() {
	if len(m.entries) == 0 {
		m.viewport.SetContent("No meetings.")
		return
	}

	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(timeStyle.Render(e.Time))
		b.WriteString(" ")
		b.WriteString(RenderEntry(e))
		b.WriteString("\n")
	}
	m.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

// RenderEntry formats one timeline row without its time column.
func RenderEntry(e calendar.Entry) string {
	if e.Break {
		return breakStyle.Render(e.Suggestion)
	}
	line := meetingStyles[e.Stress].Render(e.Title)
	if e.HasAI {
		line += " " + aiTagStyle.Render("AI")
	}
	if e.IsHighStress() {
		line += " ⚠️"
	}
	return line
}

// PlainLine formats an entry for non-interactive output.
func PlainLine(e calendar.Entry) string {
	if e.Break {
		return fmt.Sprintf("%-9s %s", e.Time, e.Suggestion)
	}
	var tags []string
	tags = append(tags, string(e.Stress)+" stress")
	if e.HasAI {
		tags = append(tags, "AI")
	}
	return fmt.Sprintf("%-9s %-22s [%s]", e.Time, e.Title, strings.Join(tags, ", "))
}
