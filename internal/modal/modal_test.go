package modal

import (
	"testing"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/breathing"
	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/errors"
	"github.com/julianstephens/mindfulmeet/internal/notifier"
	"github.com/julianstephens/mindfulmeet/internal/scheduler"
	"github.com/julianstephens/mindfulmeet/internal/wellness"
)

var epoch = time.Date(2025, 12, 29, 9, 0, 0, 0, time.UTC)

type fixture struct {
	sched *scheduler.Scheduler
	score *wellness.Model
	notes *notifier.Center
	ctl   *Controller
}

func newFixture(initial int) fixture {
	sched := scheduler.New(epoch)
	score := wellness.New(initial)
	notes := notifier.New(sched, 5*time.Second)
	return fixture{
		sched: sched,
		score: score,
		notes: notes,
		ctl:   NewController(sched, score, notes, 4*time.Second, 5),
	}
}

func TestBreathingCompletesAfterTenTicks(t *testing.T) {
	f := newFixture(85)
	m := f.ctl.OpenBreathing()

	started, err := f.ctl.StartBreathing()
	if err != nil || !started {
		t.Fatalf("StartBreathing() = %v, %v", started, err)
	}
	if !f.ctl.TimerActive() {
		t.Fatal("expected breathing timer to be active")
	}

	f.sched.Advance(36 * time.Second) // nine ticks
	if m.Exercise.State() != breathing.Running || m.Exercise.Ticks() != 9 {
		t.Fatalf("after 9 ticks: state=%v ticks=%d", m.Exercise.State(), m.Exercise.Ticks())
	}
	if f.score.Score() != 85 {
		t.Fatalf("bonus applied early: score=%d", f.score.Score())
	}

	f.sched.Advance(4 * time.Second)
	if m.Exercise.State() != breathing.Completed {
		t.Fatalf("state = %v, want completed", m.Exercise.State())
	}
	if f.score.Score() != 88 {
		t.Errorf("score = %d, want 88", f.score.Score())
	}
	if f.ctl.TimerActive() {
		t.Error("timer should be cancelled on completion")
	}
	active := f.notes.Active()
	if len(active) != 1 || active[0].Severity != constants.SeveritySuccess {
		t.Errorf("notifications = %+v", active)
	}

	f.sched.Advance(time.Minute)
	if f.score.Score() != 88 {
		t.Errorf("bonus applied more than once: score=%d", f.score.Score())
	}
}

func TestBreathingStartAgain(t *testing.T) {
	f := newFixture(50)
	f.ctl.OpenBreathing()

	for run := 1; run <= 2; run++ {
		if ok, err := f.ctl.StartBreathing(); !ok || err != nil {
			t.Fatalf("run %d: StartBreathing() = %v, %v", run, ok, err)
		}
		f.sched.Advance(2 * time.Minute)
	}
	if f.score.Score() != 56 {
		t.Errorf("score = %d, want 56 after two runs", f.score.Score())
	}
}

func TestBreathingStartWhileRunningIsIgnored(t *testing.T) {
	f := newFixture(85)
	f.ctl.OpenBreathing()
	f.ctl.StartBreathing()
	f.sched.Advance(4 * time.Second)

	ok, err := f.ctl.StartBreathing()
	if ok || err != nil {
		t.Fatalf("second StartBreathing() = %v, %v", ok, err)
	}
	if f.sched.Len() != 1 {
		t.Errorf("expected a single pending timer, got %d", f.sched.Len())
	}
}

func TestCloseMidRunCancelsTimer(t *testing.T) {
	f := newFixture(85)
	m := f.ctl.OpenBreathing()
	f.ctl.StartBreathing()
	f.sched.Advance(12 * time.Second)

	phase := m.Exercise.Phase()
	ticks := m.Exercise.Ticks()

	if err := f.ctl.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if f.ctl.Current() != nil {
		t.Fatal("modal still open after Close")
	}
	if f.sched.Len() != 0 {
		t.Fatalf("pending timers after close: %d", f.sched.Len())
	}

	f.sched.Advance(time.Minute)
	if m.Exercise.Phase() != phase || m.Exercise.Ticks() != ticks {
		t.Error("phase label changed after the modal was closed")
	}
	if f.score.Score() != 85 {
		t.Errorf("score changed after close: %d", f.score.Score())
	}
}

func TestOpeningReplacesCurrentModal(t *testing.T) {
	f := newFixture(85)
	f.ctl.OpenBreathing()
	f.ctl.StartBreathing()

	m := f.ctl.OpenTracker(3)
	if m.Kind != KindTracker {
		t.Fatalf("Kind = %v", m.Kind)
	}
	if f.sched.Len() != 0 {
		t.Errorf("breathing timer leaked when the tracker replaced it")
	}
}

func TestTrackerSnapshot(t *testing.T) {
	f := newFixture(70)
	m := f.ctl.OpenTracker(3)

	want := TrackerStats{UsageHours: 3, ProductivityBoost: 40, BurnoutRisk: 30}
	if m.Tracker.UsageHours != want.UsageHours ||
		m.Tracker.ProductivityBoost != want.ProductivityBoost ||
		m.Tracker.BurnoutRisk != want.BurnoutRisk {
		t.Errorf("Tracker = %+v, want %+v", m.Tracker, want)
	}
	if len(m.Tracker.Recommendations) != 3 {
		t.Errorf("recommendations = %v", m.Tracker.Recommendations)
	}
	if f.ctl.TimerActive() {
		t.Error("tracker should not own a timer")
	}
	if err := f.ctl.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestErrorsWithoutModal(t *testing.T) {
	f := newFixture(85)
	if err := f.ctl.Close(); !errors.Is(err, errors.ErrNoModal) {
		t.Errorf("Close() error = %v, want ErrNoModal", err)
	}
	if _, err := f.ctl.StartBreathing(); !errors.Is(err, errors.ErrNoModal) {
		t.Errorf("StartBreathing() error = %v, want ErrNoModal", err)
	}

	f.ctl.OpenTracker(3)
	if _, err := f.ctl.StartBreathing(); !errors.Is(err, errors.ErrNoModal) {
		t.Errorf("StartBreathing() on tracker error = %v, want ErrNoModal", err)
	}
}
