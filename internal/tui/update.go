package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/session"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/cards"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case TickMsg:
		now := time.Time(msg)
		var fired int
		if now.Sub(m.session.Sched.Now()) > constants.MaxTickGap {
			fired = m.session.Resume(now)
		} else {
			fired = m.session.Tick(now)
		}
		if fired > 0 {
			logger.Debug("Timers fired", "count", fired)
		}
		cmds = append(cmds, tick())
	case cards.SelectMsg:
		m.dispatch(msg.Action)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	switch m.state {
	case constants.StateConfirmQuit:
		cmd, done := m.updateConfirmQuit(msg)
		cmds = append(cmds, cmd)
		if done {
			return m.quit()
		}
	case constants.StateBreathing, constants.StateTracker:
		if msg, ok := msg.(tea.KeyMsg); ok {
			m.updateModal(msg)
		}
	case constants.StateDashboard:
		if msg, ok := msg.(tea.KeyMsg); ok {
			model, cmd := m.updateDashboard(msg)
			if model.quitting {
				return model, cmd
			}
			m = model
			cmds = append(cmds, cmd)
		}
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *Model) dispatch(a session.Action) {
	if err := m.session.Dispatch(a); err != nil {
		logger.Warn("Action failed", "action", a, "error", err)
	}
}

func (m Model) updateDashboard(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.needsQuitConfirmation() {
			return m, m.openQuitForm()
		}
		return m.quitModel()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		if m.pane == PaneRecommendations {
			m.setPane(PaneTools)
		} else {
			m.setPane(PaneRecommendations)
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevDay):
		m.dispatch(session.ActionPrevDay)
		return m, nil
	case key.Matches(msg, m.keys.NextDay):
		m.dispatch(session.ActionNextDay)
		return m, nil
	case key.Matches(msg, m.keys.Details):
		m.dispatch(session.ActionShowDetails)
		return m, nil
	}

	var cmd tea.Cmd
	if m.pane == PaneRecommendations {
		m.recommendations, cmd = m.recommendations.Update(msg)
	} else {
		m.tools, cmd = m.tools.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateModal(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.dispatch(session.ActionCloseModal)
	case m.state == constants.StateBreathing && key.Matches(msg, m.keys.Start):
		current := m.session.Modals.Current()
		if current != nil && current.Exercise.CanStart() {
			m.dispatch(session.ActionStartBreathing)
		}
	}
}

func (m *Model) openQuitForm() tea.Cmd {
	m.quitForm = &QuitFormModel{}
	m.form = NewQuitForm(m.quitForm)
	m.state = constants.StateConfirmQuit
	return m.form.Init()
}

// NewQuitForm asks before ending a session with timers the user armed.
func NewQuitForm(fm *QuitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Quit MindfulMeet?").
				Description("Your focus session and reminders will stop.").
				Affirmative("Quit").
				Negative("Stay").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

// updateConfirmQuit feeds the quit form and reports whether the user confirmed.
func (m *Model) updateConfirmQuit(msg tea.Msg) (tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.form = nil
		m.quitForm = nil
		return nil, false
	}
	// Ticks keep the session clock running but mean nothing to the form.
	if _, ok := msg.(TickMsg); ok {
		return nil, false
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		confirmed := m.quitForm.Confirmed
		m.form = nil
		m.quitForm = nil
		return cmd, confirmed
	case huh.StateAborted:
		m.form = nil
		m.quitForm = nil
	}
	return cmd, false
}

func (m Model) quitModel() (Model, tea.Cmd) {
	if err := m.session.Close(); err != nil {
		logger.Warn("Session close failed", "error", err)
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	return m.quitModel()
}
