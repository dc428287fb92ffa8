package score

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/wellness"
)

var (
	labelColors = map[string]lipgloss.Color{
		wellness.LabelExcellent:      lipgloss.Color("42"),
		wellness.LabelGood:           lipgloss.Color("45"),
		wellness.LabelFair:           lipgloss.Color("208"),
		wellness.LabelNeedsAttention: lipgloss.Color("196"),
	}

	riskColors = map[wellness.RiskLevel]lipgloss.Color{
		wellness.RiskLow:      lipgloss.Color("42"),
		wellness.RiskModerate: lipgloss.Color("208"),
		wellness.RiskHigh:     lipgloss.Color("203"),
	}

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model renders the wellness score badge and the burnout-risk gauge.
type Model struct {
	gauge    progress.Model
	snapshot wellness.Snapshot
	focus    bool
	activity string
}

func New(width int) Model {
	gauge := progress.New(
		progress.WithGradient("#48bb78", "#f56565"),
		progress.WithoutPercentage(),
	)
	gauge.Width = width
	return Model{gauge: gauge}
}

func (m *Model) SetWidth(width int) {
	m.gauge.Width = max(width, 10)
}

func (m *Model) SetSnapshot(s wellness.Snapshot) {
	m.snapshot = s
}

func (m *Model) SetFocus(on bool) {
	m.focus = on
}

func (m *Model) SetActivity(name string) {
	m.activity = name
}

func (m Model) View() string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(labelColors[m.snapshot.Label]).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf("%d", m.snapshot.Score))

	label := lipgloss.NewStyle().
		Foreground(labelColors[m.snapshot.Label]).
		Bold(true).
		Render(m.snapshot.Label)

	risk := lipgloss.NewStyle().
		Foreground(riskColors[m.snapshot.RiskLevel]).
		Render(fmt.Sprintf("%s (%d%%)", m.snapshot.RiskLevel, m.snapshot.Risk))

	lines := []string{
		captionStyle.Render("Wellness Score"),
		lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", label),
		"",
		captionStyle.Render("Burnout Risk ") + risk,
		m.gauge.ViewAs(float64(m.snapshot.Risk) / 100),
	}
	if m.focus {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("🎯 Focus mode"))
	}
	if m.activity != "" {
		lines = append(lines, captionStyle.Render("Last: "+m.activity))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
