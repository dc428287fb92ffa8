package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/session"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/activity"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/cards"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/score"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/timeline"
)

// Pane identifies the focused dashboard column.
type Pane int

const (
	PaneRecommendations Pane = iota
	PaneTools
)

// QuitFormModel backs the quit confirmation.
type QuitFormModel struct {
	Confirmed bool
}

// TickMsg drives the session clock.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.TickResolution, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	session         *session.Session
	state           constants.SessionState
	keys            KeyMap
	help            help.Model
	scoreModel      score.Model
	timelineModel   timeline.Model
	activityModel   activity.Model
	recommendations cards.Model
	tools           cards.Model
	pane            Pane
	form            *huh.Form
	quitForm        *QuitFormModel
	quitting        bool
	width           int
	height          int
}

func NewModel(s *session.Session) Model {
	m := Model{
		session:         s,
		state:           constants.StateDashboard,
		keys:            DefaultKeyMap(),
		help:            help.New(),
		scoreModel:      score.New(30),
		timelineModel:   timeline.New(0, 0),
		activityModel:   activity.New(0, 0),
		recommendations: cards.New("AI Recommendations", "Apply", session.Recommendations),
		tools:           cards.New("Wellness Tools", "Use", session.Tools),
		pane:            PaneRecommendations,
	}
	m.recommendations.Focus()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tick()
}

// ShortHelp and FullHelp make the model its own help.KeyMap so the bar
// reflects the current state.
func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateBreathing:
		return []key.Binding{m.keys.Start, m.keys.Close}
	case constants.StateTracker:
		return []key.Binding{m.keys.Close}
	case constants.StateConfirmQuit:
		return nil
	}
	return []key.Binding{m.keys.PrevDay, m.keys.NextDay, m.keys.Tab, m.keys.Enter, m.keys.Details, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state != constants.StateDashboard {
		return [][]key.Binding{m.ShortHelp()}
	}
	return m.keys.FullHelp()
}

// refresh copies session state into the components and derives the view state.
func (m *Model) refresh() {
	s := m.session

	m.scoreModel.SetSnapshot(s.Score.Snapshot())
	m.scoreModel.SetFocus(s.FocusMode())
	m.scoreModel.SetActivity(s.LastActivity())
	m.timelineModel.SetDay(s.Calendar.Header(), s.Calendar.Entries())
	m.recommendations.SetApplied(s.Applied)

	if s.Journal != nil {
		entries, err := s.Journal.Recent(50)
		if err != nil {
			logger.Warn("Recent activity unavailable", "error", err)
		} else {
			m.activityModel.SetEntries(entries)
		}
	}

	switch {
	case m.form != nil:
		m.state = constants.StateConfirmQuit
	case s.Modals.Current() == nil:
		m.state = constants.StateDashboard
	case s.Modals.Current().Exercise != nil:
		m.state = constants.StateBreathing
	default:
		m.state = constants.StateTracker
	}
}

// needsQuitConfirmation reports whether quitting would cut short something the user started.
func (m Model) needsQuitConfirmation() bool {
	s := m.session
	return s.FocusMode() || s.FocusPending() || s.EyeRestArmed() || s.Modals.TimerActive()
}

func (m *Model) setPane(p Pane) {
	m.pane = p
	if p == PaneRecommendations {
		m.recommendations.Focus()
		m.tools.Blur()
	} else {
		m.tools.Focus()
		m.recommendations.Blur()
	}
}

func (m *Model) resize() {
	colWidth := max((m.width-8)/3, 20)
	bodyHeight := max(m.height-8, 6)

	m.scoreModel.SetWidth(colWidth - 4)
	m.timelineModel.SetSize(colWidth, bodyHeight/2)
	m.activityModel.SetSize(colWidth, bodyHeight/2)
	m.help.Width = m.width
}
