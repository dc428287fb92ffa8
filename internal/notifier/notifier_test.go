package notifier

import (
	"testing"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/scheduler"
)

var epoch = time.Date(2025, 12, 29, 9, 0, 0, 0, time.UTC)

func TestNotifyExpiresAfterTTL(t *testing.T) {
	sched := scheduler.New(epoch)
	c := New(sched, 5*time.Second)

	n := c.Notify("Buffer time added", constants.SeveritySuccess)
	if n.ID == "" {
		t.Fatal("expected notification id")
	}
	if !n.ExpiresAt.Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("ExpiresAt = %v", n.ExpiresAt)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 visible toast, got %d", c.Len())
	}

	sched.Advance(5*time.Second - time.Millisecond)
	if c.Len() != 1 {
		t.Fatal("toast removed before its TTL")
	}

	sched.Advance(time.Millisecond)
	if c.Len() != 0 {
		t.Errorf("toast still visible after TTL: %+v", c.Active())
	}
}

func TestNotifyKeepsInsertionOrderWithoutCap(t *testing.T) {
	sched := scheduler.New(epoch)
	c := New(sched, 5*time.Second)

	for i := 0; i < 20; i++ {
		c.Notify("same text", constants.SeverityInfo)
		sched.Advance(100 * time.Millisecond)
	}
	if c.Len() != 20 {
		t.Fatalf("expected 20 toasts, got %d", c.Len())
	}

	active := c.Active()
	for i := 1; i < len(active); i++ {
		if active[i].CreatedAt.Before(active[i-1].CreatedAt) {
			t.Fatalf("toasts out of order at %d", i)
		}
		if active[i].ID == active[i-1].ID {
			t.Fatalf("duplicate id at %d", i)
		}
	}

	// The first toast was created at t=0 and the last at t=1.9s.
	sched.AdvanceTo(epoch.Add(5 * time.Second))
	if c.Len() != 19 {
		t.Errorf("expected only the oldest toast to expire, %d left", c.Len())
	}
	sched.AdvanceTo(epoch.Add(7 * time.Second))
	if c.Len() != 0 {
		t.Errorf("expected all toasts to expire, %d left", c.Len())
	}
}

func TestNotifyDefaultsSeverity(t *testing.T) {
	c := New(scheduler.New(epoch), time.Second)
	if n := c.Notify("hello", ""); n.Severity != constants.SeverityInfo {
		t.Errorf("Severity = %q, want info", n.Severity)
	}
}

func TestOnNotify(t *testing.T) {
	c := New(scheduler.New(epoch), time.Second)
	var seen []string
	c.OnNotify(func(n Notification) { seen = append(seen, n.Text) })

	c.Notify("one", constants.SeverityWarning)
	c.Notify("two", constants.SeverityError)

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "two" {
		t.Errorf("seen = %v", seen)
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	c := New(scheduler.New(epoch), time.Second)
	c.Notify("original", constants.SeverityInfo)

	active := c.Active()
	active[0].Text = "mutated"

	if c.Active()[0].Text != "original" {
		t.Error("Active should not expose internal storage")
	}
}
