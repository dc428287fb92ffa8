package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/logger"
	"github.com/julianstephens/mindfulmeet/internal/scheduler"
)

// Notification is a transient toast message.
type Notification struct {
	ID        string
	Text      string
	Severity  constants.Severity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Center shows toasts and removes each one after a fixed TTL. There is no
// cap and no dedup; toasts are kept in insertion order.
type Center struct {
	sched    *scheduler.Scheduler
	ttl      time.Duration
	items    []Notification
	onNotify []func(Notification)
}

func New(sched *scheduler.Scheduler, ttl time.Duration) *Center {
	return &Center{sched: sched, ttl: ttl}
}

// OnNotify registers fn to observe every toast as it is shown.
func (c *Center) OnNotify(fn func(Notification)) {
	c.onNotify = append(c.onNotify, fn)
}

// Notify shows text immediately and schedules its removal.
func (c *Center) Notify(text string, severity constants.Severity) Notification {
	if severity == "" {
		severity = constants.SeverityInfo
	}
	now := c.sched.Now()
	n := Notification{
		ID:        uuid.New().String(),
		Text:      text,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	c.items = append(c.items, n)
	c.sched.After("toast-expiry", c.ttl, func(time.Time) {
		c.remove(n.ID)
	})

	logger.Info("Notification", "severity", severity, "text", text)
	for _, fn := range c.onNotify {
		fn(n)
	}
	return n
}

// Active returns the visible toasts, oldest first.
func (c *Center) Active() []Notification {
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Center) Len() int {
	return len(c.items)
}

func (c *Center) remove(id string) {
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
