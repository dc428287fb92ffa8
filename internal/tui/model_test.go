package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindfulmeet/internal/breathing"
	"github.com/julianstephens/mindfulmeet/internal/config"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/notifier"
	"github.com/julianstephens/mindfulmeet/internal/session"
	"github.com/julianstephens/mindfulmeet/internal/tui/components/cards"
)

// Thursday
var epoch = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

type quietRand struct{}

func (quietRand) Float64() float64 { return 0.99 }
func (quietRand) IntN(int) int     { return 0 }

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := session.New(config.Default(), epoch, quietRand{}, nil)
	t.Cleanup(func() { s.Close() })
	m := NewModel(s)
	m.Init()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestDayNavigationKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("l"))
	if got := m.session.Calendar.Date(); !got.Equal(epoch.AddDate(0, 0, 1)) {
		t.Errorf("after next day, date = %v", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, runes("h"))
	if got := m.session.Calendar.Date(); !got.Equal(epoch.AddDate(0, 0, -1)) {
		t.Errorf("after two previous days, date = %v", got)
	}
	if !strings.Contains(m.View(), "Wednesday, December 31, 2025") {
		t.Error("timeline header should follow the viewed date")
	}
}

func TestTickDrivesSessionClock(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, TickMsg(epoch.Add(2*time.Second)))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.session.Notes.Len() != 1 {
		t.Fatalf("expected the welcome toast, got %d toasts", m.session.Notes.Len())
	}
	if !strings.Contains(m.View(), "Welcome to MindfulMeet") {
		t.Error("welcome toast should be rendered")
	}
}

func TestLongTickGapDoesNotReplayReminders(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionEyeRest})

	reminders := 0
	m.session.Notes.OnNotify(func(n notifier.Notification) {
		if strings.HasPrefix(n.Text, "👁️ Eye break time!") {
			reminders++
		}
	})

	m, _ = send(t, m, TickMsg(epoch.Add(time.Hour)))
	if reminders != 1 {
		t.Errorf("reminders = %d after the clock jumped an hour, want 1", reminders)
	}
	if !m.session.Sched.Now().Equal(epoch.Add(time.Hour)) {
		t.Errorf("session clock = %v", m.session.Sched.Now())
	}
}

func TestQuitAsksWhileFocusCompletionPending(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionFocusMode})
	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionFocusMode})
	m, _ = send(t, m, runes("q"))
	if m.state != constants.StateConfirmQuit {
		t.Errorf("state = %v, want confirm quit while a focus bonus is pending", m.state)
	}
}

func TestSelectingToolFromKeyboard(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.pane != PaneTools {
		t.Fatalf("pane = %v, want tools", m.pane)
	}

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a tool should emit a selection")
	}
	msg, ok := cmd().(cards.SelectMsg)
	if !ok {
		t.Fatalf("expected cards.SelectMsg, got %T", cmd())
	}
	if msg.Action != session.ActionBreathing {
		t.Errorf("selected %v, want %v", msg.Action, session.ActionBreathing)
	}
}

func TestBreathingModalFlow(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionBreathing})
	if m.state != constants.StateBreathing {
		t.Fatalf("state = %v, want breathing", m.state)
	}
	if !strings.Contains(m.View(), "Mindful Breathing Exercise") {
		t.Error("breathing dialog should be rendered")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	ex := m.session.Modals.Current().Exercise
	if ex.State() != breathing.Running {
		t.Fatalf("exercise state = %v, want running", ex.State())
	}

	// A second start while running is ignored.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if ex.Ticks() != 0 {
		t.Errorf("ticks = %d before any phase elapsed", ex.Ticks())
	}

	m, _ = send(t, m, TickMsg(epoch.Add(8*time.Second)))
	if ex.Ticks() != 2 {
		t.Errorf("ticks = %d after 8s, want 2", ex.Ticks())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StateDashboard {
		t.Errorf("state = %v after close, want dashboard", m.state)
	}
	if m.session.Modals.TimerActive() {
		t.Error("closing the modal should cancel the cycle timer")
	}
}

func TestTrackerModal(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionAITracker})
	if m.state != constants.StateTracker {
		t.Fatalf("state = %v, want tracker", m.state)
	}
	view := m.View()
	for _, want := range []string{"AI Usage Tracker", "3h", "40%", "15%"} {
		if !strings.Contains(view, want) {
			t.Errorf("tracker view missing %q", want)
		}
	}

	m, _ = send(t, m, runes("x"))
	if m.state != constants.StateDashboard {
		t.Errorf("state = %v after close, want dashboard", m.state)
	}
}

func TestQuitWithoutTimers(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, runes("q"))
	if !m.quitting {
		t.Fatal("q should quit when nothing is running")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
	if m.session.Sched.Len() != 0 {
		t.Error("quitting should stop every timer")
	}
}

func TestQuitAsksWhileFocusActive(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionFocusMode})
	m, _ = send(t, m, runes("q"))
	if m.quitting {
		t.Fatal("should ask before quitting during a focus session")
	}
	if m.state != constants.StateConfirmQuit {
		t.Fatalf("state = %v, want confirm quit", m.state)
	}

	// The session clock keeps running behind the dialog.
	m, _ = send(t, m, TickMsg(epoch.Add(2*time.Second)))
	if m.state != constants.StateConfirmQuit {
		t.Error("ticks should not dismiss the dialog")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StateDashboard {
		t.Errorf("state = %v after esc, want dashboard", m.state)
	}
	if !m.session.FocusMode() {
		t.Error("cancelling the dialog should leave focus mode on")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, cards.SelectMsg{Action: session.ActionEyeRest})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should quit without confirmation")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help bar")
	}
	m, _ = send(t, m, runes("?"))
	if m.help.ShowAll {
		t.Error("? should collapse the help bar")
	}
}
