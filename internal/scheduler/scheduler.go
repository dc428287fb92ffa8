package scheduler

import (
	"time"

	"github.com/julianstephens/mindfulmeet/internal/logger"
)

// EntryID identifies a registered timer. The zero value never refers to a live entry.
type EntryID uint64

// Func is invoked when an entry fires. now is the entry's due time, not the
// time the scheduler was advanced to.
type Func func(now time.Time)

type entry struct {
	id       EntryID
	name     string
	due      time.Time
	interval time.Duration // zero for one-shot entries
	fn       Func
}

// Scheduler is a cooperative timer queue driven by an external clock. It never
// starts goroutines: entries only fire inside AdvanceTo, one at a time, each
// callback running to completion before the next one starts.
type Scheduler struct {
	now     time.Time
	nextID  EntryID
	entries []*entry
	stopped bool
}

func New(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers fn to run each interval, starting one interval from now.
func (s *Scheduler) Every(name string, interval time.Duration, fn Func) EntryID {
	if interval <= 0 {
		logger.Warn("Refusing periodic timer with non-positive interval", "timer", name, "interval", interval)
		return 0
	}
	return s.add(name, interval, interval, fn)
}

// After registers fn to run once, delay from now.
func (s *Scheduler) After(name string, delay time.Duration, fn Func) EntryID {
	if delay < 0 {
		delay = 0
	}
	return s.add(name, delay, 0, fn)
}

func (s *Scheduler) add(name string, delay, interval time.Duration, fn Func) EntryID {
	if s.stopped {
		logger.Debug("Scheduler stopped, dropping timer", "timer", name)
		return 0
	}
	s.nextID++
	s.entries = append(s.entries, &entry{
		id:       s.nextID,
		name:     name,
		due:      s.now.Add(delay),
		interval: interval,
		fn:       fn,
	})
	logger.Debug("Timer registered", "timer", name, "id", s.nextID, "delay", delay, "periodic", interval > 0)
	return s.nextID
}

// Cancel removes the entry. It reports whether the entry was still pending.
func (s *Scheduler) Cancel(id EntryID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			logger.Debug("Timer cancelled", "timer", e.name, "id", id)
			return true
		}
	}
	return false
}

// Active reports whether id is still pending.
func (s *Scheduler) Active(id EntryID) bool {
	for _, e := range s.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of pending entries.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Advance moves the clock forward by d.
func (s *Scheduler) Advance(d time.Duration) int {
	return s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo fires every entry due at or before t in due-time order, ties broken
// by registration order, and returns how many callbacks ran. Entries registered
// by a callback are eligible in the same call if they fall due before t.
// Moving backwards is a no-op.
func (s *Scheduler) AdvanceTo(t time.Time) int {
	return s.advance(t, false)
}

// CatchUp is AdvanceTo for a clock that jumped, e.g. after the machine slept.
// A periodic entry fires at most once for the missed span and then resumes on
// its first interval after t. One-shot entries fire as usual.
func (s *Scheduler) CatchUp(t time.Time) int {
	return s.advance(t, true)
}

func (s *Scheduler) advance(t time.Time, coalesce bool) int {
	fired := 0
	for !s.stopped {
		next := s.nextDue(t)
		if next == nil {
			break
		}
		s.now = next.due
		if next.interval > 0 {
			next.due = next.due.Add(next.interval)
			if coalesce && !next.due.After(t) {
				missed := t.Sub(next.due)/next.interval + 1
				next.due = next.due.Add(missed * next.interval)
				logger.Debug("Timer skipped missed intervals", "timer", next.name, "missed", int64(missed))
			}
		} else {
			s.Cancel(next.id)
		}
		next.fn(s.now)
		fired++
	}
	if t.After(s.now) {
		s.now = t
	}
	return fired
}

func (s *Scheduler) nextDue(t time.Time) *entry {
	var best *entry
	for _, e := range s.entries {
		if e.due.After(t) {
			continue
		}
		if best == nil || e.due.Before(best.due) || (e.due.Equal(best.due) && e.id < best.id) {
			best = e
		}
	}
	return best
}

// Stop cancels every pending entry and rejects new ones.
func (s *Scheduler) Stop() {
	if len(s.entries) > 0 {
		logger.Debug("Scheduler stopping", "pending", len(s.entries))
	}
	s.entries = nil
	s.stopped = true
}
