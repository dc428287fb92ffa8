package cards

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/mindfulmeet/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	appliedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Underline(true)
)

// SelectMsg is emitted when the selected control is activated.
type SelectMsg struct {
	Action session.Action
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "apply"),
		),
	}
}

// Model is a vertical list of dashboard buttons.
type Model struct {
	heading  string
	button   string
	controls []session.Control
	cursor   int
	focused  bool
	applied  map[session.Action]bool
	keys     KeyMap
}

func New(heading, button string, controls []session.Control) Model {
	return Model{
		heading:  heading,
		button:   button,
		controls: controls,
		applied:  make(map[session.Action]bool),
		keys:     DefaultKeyMap(),
	}
}

func (m *Model) Focus() { m.focused = true }

func (m *Model) Blur() { m.focused = false }

// Selected returns the highlighted control.
func (m Model) Selected() (session.Control, bool) {
	if len(m.controls) == 0 {
		return session.Control{}, false
	}
	return m.controls[m.cursor], true
}

// SetApplied refreshes which controls show the applied marker.
func (m *Model) SetApplied(isApplied func(session.Action) bool) {
	for _, c := range m.controls {
		m.applied[c.Action] = isApplied(c.Action)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.controls)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if c, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SelectMsg{Action: c.Action} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	rows := []string{headingStyle.Render(m.heading), ""}
	for i, c := range m.controls {
		title := titleStyle.Render(c.Icon + " " + c.Title)
		marker := "  "
		if m.focused && i == m.cursor {
			title = selectedStyle.Render(c.Icon + " " + c.Title)
			marker = "▸ "
		}

		button := buttonStyle.Render(m.button)
		if m.applied[c.Action] {
			button = appliedStyle.Render("Applied ✓")
		}

		rows = append(rows,
			marker+title+"  "+button,
			"  "+descStyle.Render(c.Description),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
