package modal

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/breathing"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/errors"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/notifier"
	"github.com/julianstephens/mindfulmeet/internal/scheduler"
	"github.com/julianstephens/mindfulmeet/internal/wellness"
)

type Kind int

const (
	KindNone Kind = iota
	KindBreathing
	KindTracker
)

func (k Kind) String() string {
	switch k {
	case KindBreathing:
		return "breathing"
	case KindTracker:
		return "ai-tracker"
	default:
		return "none"
	}
}

// TrackerRecommendations is the static advice shown by the AI usage tracker.
var TrackerRecommendations = []string{
	"Take a 15-minute tech break",
	"Switch to manual tasks for the next hour",
	"Practice mindful breathing",
}

// TrackerStats is the snapshot shown by the AI usage tracker.
type TrackerStats struct {
	UsageHours        int
	ProductivityBoost int
	BurnoutRisk       int
	Recommendations   []string
}

// Modal is the state of an open dialog.
type Modal struct {
	Kind     Kind
	Exercise *breathing.Exercise
	Tracker  TrackerStats

	timer scheduler.EntryID
}

// Controller owns at most one open dialog and the timer attached to it.
type Controller struct {
	sched   *scheduler.Scheduler
	score   *wellness.Model
	notes   *notifier.Center
	phase   time.Duration
	cycles  int
	current *Modal
}

func NewController(sched *scheduler.Scheduler, score *wellness.Model, notes *notifier.Center, phase time.Duration, cycles int) *Controller {
	return &Controller{
		sched:  sched,
		score:  score,
		notes:  notes,
		phase:  phase,
		cycles: cycles,
	}
}

// Current returns the open dialog or nil.
func (c *Controller) Current() *Modal {
	return c.current
}

// TimerActive reports whether the open dialog has a pending timer.
func (c *Controller) TimerActive() bool {
	return c.current != nil && c.current.timer != 0 && c.sched.Active(c.current.timer)
}

// OpenBreathing shows an idle breathing exercise, replacing any open dialog.
func (c *Controller) OpenBreathing() *Modal {
	c.closeCurrent()
	c.current = &Modal{
		Kind:     KindBreathing,
		Exercise: breathing.New(c.cycles, int(c.phase/time.Second)),
	}
	logger.Debug("Modal opened", "kind", KindBreathing)
	return c.current
}

// OpenTracker shows the AI usage tracker, replacing any open dialog.
func (c *Controller) OpenTracker(usageHours int) *Modal {
	c.closeCurrent()
	c.current = &Modal{
		Kind: KindTracker,
		Tracker: TrackerStats{
			UsageHours:        usageHours,
			ProductivityBoost: constants.ProductivityBoost,
			BurnoutRisk:       c.score.Risk(),
			Recommendations:   TrackerRecommendations,
		},
	}
	logger.Debug("Modal opened", "kind", KindTracker)
	return c.current
}

// StartBreathing begins a breathing run in the open breathing dialog. It
// returns false without error when a run is already in progress.
func (c *Controller) StartBreathing() (bool, error) {
	m := c.current
	if m == nil || m.Kind != KindBreathing {
		return false, fmt.Errorf("start breathing: %w", errors.ErrNoModal)
	}
	if !m.Exercise.Start() {
		return false, nil
	}
	m.timer = c.sched.Every("breathing-cycle", c.phase, func(time.Time) {
		c.tick(m)
	})
	return true, nil
}

func (c *Controller) tick(m *Modal) {
	if !m.Exercise.Tick() {
		return
	}
	c.sched.Cancel(m.timer)
	m.timer = 0
	c.score.Apply("Breathing exercise", constants.BreathingBonus)
	c.notes.Notify(fmt.Sprintf("Breathing exercise completed! +%d wellness points", constants.BreathingBonus), constants.SeveritySuccess)
}

// Close disposes the open dialog, cancelling its timer first.
func (c *Controller) Close() error {
	if c.current == nil {
		return fmt.Errorf("close: %w", errors.ErrNoModal)
	}
	c.closeCurrent()
	return nil
}

func (c *Controller) closeCurrent() {
	if c.current == nil {
		return
	}
	if c.current.timer != 0 {
		c.sched.Cancel(c.current.timer)
		c.current.timer = 0
	}
	logger.Debug("Modal closed", "kind", c.current.Kind)
	c.current = nil
}
