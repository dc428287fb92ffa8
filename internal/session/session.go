package session

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/calendar"
	"github.com/julianstephens/mindfulmeet/internal/config"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/errors"
	"github.com/julianstephens/mindfulmeet/internal/journal"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/modal"
	"github.com/julianstephens/mindfulmeet/internal/notifier"
	"github.com/julianstephens/mindfulmeet/internal/scheduler"
	"github.com/julianstephens/mindfulmeet/internal/wellness"
)

// State is the mutable session data owned by the controller.
type State struct {
	AIUsageHours int
	MeetingCount int
	FocusMode    bool

	focusTimer     scheduler.EntryID
	focusStartedAt time.Time
	eyeRestTimer   scheduler.EntryID
	applied        map[Action]scheduler.EntryID
}

// Session wires the dashboard components together and dispatches actions.
// It is not safe for concurrent use: every method must be called from the
// same event loop.
type Session struct {
	cfg      config.Config
	Sched    *scheduler.Scheduler
	Score    *wellness.Model
	Notes    *notifier.Center
	Modals   *modal.Controller
	Calendar *calendar.View
	Journal  *journal.Store

	sim          *wellness.Simulator
	state        State
	lastActivity string
	started      bool
	closed       bool
}

// NewRand returns the simulator's random source. A zero seed derives one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// New builds a session starting at start. j may be nil, in which case the
// session keeps no journal.
func New(cfg config.Config, start time.Time, rng wellness.Rand, j *journal.Store) *Session {
	sched := scheduler.New(start)
	score := wellness.New(cfg.InitialScore)
	notes := notifier.New(sched, cfg.ToastTTL)

	s := &Session{
		cfg:      cfg,
		Sched:    sched,
		Score:    score,
		Notes:    notes,
		Modals:   modal.NewController(sched, score, notes, cfg.BreathPhase, cfg.BreathCycles),
		Calendar: calendar.NewView(start),
		Journal:  j,
		sim:      wellness.NewSimulator(score, rng, cfg.ActivityChance),
		state: State{
			AIUsageHours: cfg.AIUsageHours,
			MeetingCount: cfg.MeetingCount,
			applied:      make(map[Action]scheduler.EntryID),
		},
	}

	score.OnChange(s.recordScore)
	notes.OnNotify(s.recordNotification)

	return s
}

// Start arms the activity simulator and the welcome toast. Calling it twice is a no-op.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true

	s.Sched.Every("activity-simulator", s.cfg.ActivityInterval, func(time.Time) {
		if a, ok := s.sim.Step(); ok {
			s.lastActivity = a.Name
		}
	})
	s.Sched.After("welcome", s.cfg.WelcomeDelay, func(time.Time) {
		s.Notes.Notify("Welcome to MindfulMeet! 🧠 Your AI-powered wellness assistant is ready to help you combat burnout while staying productive.", constants.SeveritySuccess)
	})
	logger.Info("Session started", "score", s.Score.Score(), "date", s.Calendar.Date().Format(constants.DateFormat))
}

// Tick advances the session clock to now and returns how many timers fired.
func (s *Session) Tick(now time.Time) int {
	return s.Sched.AdvanceTo(now)
}

// Resume advances the clock after a long gap between ticks. Periodic timers
// fire once for the gap instead of replaying every missed interval.
func (s *Session) Resume(now time.Time) int {
	logger.Info("Session clock resumed", "gap", now.Sub(s.Sched.Now()))
	return s.Sched.CatchUp(now)
}

// Close tears down every timer, including the eye-rest and activity timers
// that otherwise run for the whole session, and closes the journal.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.Sched.Stop()
	logger.Info("Session closed", "score", s.Score.Score())
	if s.Journal != nil {
		return s.Journal.Close()
	}
	return nil
}

// Dispatch performs the behaviour bound to a control. Unknown actions are
// logged and ignored; the returned error is for callers that care.
func (s *Session) Dispatch(a Action) error {
	logger.Debug("Dispatch", "action", a)

	switch a {
	case ActionPrevDay:
		s.navigate(-1)
	case ActionNextDay:
		s.navigate(1)
	case ActionShowDetails:
		s.Notes.Notify(s.Details(), constants.SeverityInfo)

	case ActionBufferTime:
		s.Notes.Notify("Buffer time added to your calendar! 10-minute breaks scheduled between meetings.", constants.SeveritySuccess)
		s.Score.Apply("Buffer time", constants.BufferTimeBonus)
		s.markApplied(a)
	case ActionMindfulBreak:
		s.Modals.OpenBreathing()
		s.markApplied(a)
	case ActionAIUsageLimit:
		s.Notes.Notify(fmt.Sprintf("AI usage reminder set! You'll be notified when you reach %d hours of AI tool usage.", constants.AIUsageLimitHours), constants.SeverityInfo)
		s.markApplied(a)

	case ActionBreathing:
		s.Modals.OpenBreathing()
	case ActionEyeRest:
		s.armEyeRest()
	case ActionAITracker:
		s.Modals.OpenTracker(s.state.AIUsageHours)
	case ActionFocusMode:
		s.toggleFocus()

	case ActionStartBreathing:
		if _, err := s.Modals.StartBreathing(); err != nil {
			logger.Warn("Start ignored", "error", err)
			return err
		}
	case ActionCloseModal:
		if err := s.Modals.Close(); err != nil {
			logger.Warn("Close ignored", "error", err)
			return err
		}

	default:
		logger.Warn("Ignoring unknown action", "action", int(a))
		return fmt.Errorf("dispatch %d: %w", int(a), errors.ErrUnknownAction)
	}
	return nil
}

func (s *Session) navigate(direction int) {
	s.Calendar.Navigate(direction)
	which := "next"
	if direction < 0 {
		which = "previous"
	}
	s.Notes.Notify(fmt.Sprintf("Viewing %s day", which), constants.SeverityInfo)
}

// armEyeRest starts the 20-20-20 reminder. The reminder has no off switch;
// it stops when the session closes. Arming again only repeats the toast.
func (s *Session) armEyeRest() {
	s.Notes.Notify(fmt.Sprintf("Eye rest reminder set! Look at something 20 feet away for 20 seconds every %s.", humanMinutes(s.cfg.EyeRestInterval)), constants.SeverityInfo)
	if s.state.eyeRestTimer != 0 {
		return
	}
	s.state.eyeRestTimer = s.Sched.Every("eye-rest", s.cfg.EyeRestInterval, func(time.Time) {
		s.Notes.Notify("👁️ Eye break time! Look at something 20 feet away for 20 seconds.", constants.SeverityInfo)
	})
}

func (s *Session) toggleFocus() {
	// Turning focus off leaves the expiry pending: it still completes the
	// session, with its toast and bonus, when it fires.
	if s.state.FocusMode {
		s.state.FocusMode = false
		s.Notes.Notify("Focus mode deactivated.", constants.SeverityInfo)
		return
	}

	s.state.FocusMode = true
	s.state.focusStartedAt = s.Sched.Now()
	s.Notes.Notify(fmt.Sprintf("🎯 Focus mode activated! Notifications blocked for %s.", humanMinutes(s.cfg.FocusDuration)), constants.SeveritySuccess)
	var expiry scheduler.EntryID
	expiry = s.Sched.After("focus-expiry", s.cfg.FocusDuration, func(time.Time) {
		s.state.FocusMode = false
		if s.state.focusTimer == expiry {
			s.state.focusTimer = 0
		}
		s.Notes.Notify("Focus session completed! Great work! 🎉", constants.SeveritySuccess)
		s.Score.Apply("Focus session", constants.FocusBonus)
	})
	s.state.focusTimer = expiry
}

func (s *Session) markApplied(a Action) {
	if id, ok := s.state.applied[a]; ok {
		s.Sched.Cancel(id)
	}
	s.state.applied[a] = s.Sched.After("applied-feedback", s.cfg.AppliedFeedback, func(time.Time) {
		delete(s.state.applied, a)
	})
}

// Applied reports whether a recommendation is still showing "Applied ✓".
func (s *Session) Applied(a Action) bool {
	_, ok := s.state.applied[a]
	return ok
}

func (s *Session) FocusMode() bool {
	return s.state.FocusMode
}

// FocusRemaining is the time left in the current focus session.
func (s *Session) FocusRemaining() time.Duration {
	if !s.state.FocusMode {
		return 0
	}
	return s.cfg.FocusDuration - s.Sched.Now().Sub(s.state.focusStartedAt)
}

// FocusPending reports whether a focus session's completion is still due,
// including one that was switched off by hand.
func (s *Session) FocusPending() bool {
	return s.state.focusTimer != 0 && s.Sched.Active(s.state.focusTimer)
}

func (s *Session) EyeRestArmed() bool {
	return s.state.eyeRestTimer != 0
}

func (s *Session) AIUsageHours() int {
	return s.state.AIUsageHours
}

func (s *Session) MeetingCount() int {
	return s.state.MeetingCount
}

// LastActivity is the name of the most recent simulated activity, if any.
func (s *Session) LastActivity() string {
	return s.lastActivity
}

// Details is the wellness score breakdown.
func (s *Session) Details() string {
	breakHours := constants.DefaultWorkdayHours - s.state.MeetingCount
	if breakHours < 0 {
		breakHours = 0
	}
	lines := []string{
		"Wellness Score Breakdown:",
		fmt.Sprintf("Meeting Load: %d meetings today", s.state.MeetingCount),
		fmt.Sprintf("AI Usage: %d hours", s.state.AIUsageHours),
		fmt.Sprintf("Break Time: %d hours available", breakHours),
		fmt.Sprintf("Stress Level: %s", wellness.RiskLevelFor(s.Score.Risk())),
	}
	if s.Journal != nil {
		if totals, err := s.Journal.Totals(); err != nil {
			logger.Warn("Journal totals unavailable", "error", err)
		} else {
			lines = append(lines, fmt.Sprintf("This Session: %d score changes (net %+d)", totals.Changes, totals.Net()))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Session) recordScore(snap wellness.Snapshot) {
	logger.Info("Score changed", "source", snap.Source, "delta", snap.Delta, "applied", snap.Applied, "score", snap.Score, "risk", snap.Risk)
	if s.Journal == nil {
		return
	}
	if err := s.Journal.RecordScore(s.Sched.Now(), snap.Source, snap.Applied, snap.Score); err != nil {
		logger.Warn("Failed to journal score change", "error", err)
	}
}

func (s *Session) recordNotification(n notifier.Notification) {
	if s.Journal == nil {
		return
	}
	if err := s.Journal.RecordNotification(n.ID, n.CreatedAt, n.Severity, n.Text); err != nil {
		logger.Warn("Failed to journal notification", "error", err)
	}
}

func humanMinutes(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return d.String()
}
