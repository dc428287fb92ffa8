package calendar

import (
	"time"

	"github.com/julianstephens/mindfulmeet/internal/constants"
)

// Entry is one row of the timeline: either a meeting or a break suggestion.
type Entry struct {
	Time       string
	Title      string
	Stress     constants.StressTier
	HasAI      bool
	Break      bool
	Suggestion string
}

// IsHighStress reports whether the entry gets a warning marker.
func (e Entry) IsHighStress() bool {
	return !e.Break && e.Stress == constants.StressHigh
}

func meeting(at, title string, stress constants.StressTier, hasAI bool) Entry {
	return Entry{Time: at, Title: title, Stress: stress, HasAI: hasAI}
}

func suggestion(at, text string) Entry {
	return Entry{Time: at, Break: true, Suggestion: text}
}

var (
	mondayPattern = []Entry{
		meeting("9:00 AM", "Team Standup", constants.StressMedium, false),
		meeting("10:30 AM", "Project Review", constants.StressHigh, true),
		suggestion("11:30 AM", "💡 Suggested: 15-min mindful break"),
		meeting("2:00 PM", "Client Call", constants.StressMedium, true),
		meeting("4:00 PM", "1:1 with Manager", constants.StressLow, false),
	}

	fridayPattern = []Entry{
		meeting("9:00 AM", "Weekly Wrap-up", constants.StressLow, false),
		meeting("11:00 AM", "Demo Preparation", constants.StressMedium, true),
		suggestion("2:00 PM", "🌟 Suggested: Celebration break!"),
		meeting("3:00 PM", "Team Social", constants.StressLow, false),
	}

	defaultPattern = []Entry{
		meeting("9:00 AM", "Team Standup", constants.StressHigh, false),
		meeting("10:00 AM", "Client Review", constants.StressMedium, true),
		suggestion("11:00 AM", "💡 Suggested: 15-min mindful break"),
		meeting("11:30 AM", "1:1 with Sarah", constants.StressLow, false),
		meeting("2:00 PM", "Board Presentation", constants.StressHigh, true),
	}
)

// ForDate returns the mock timeline for the weekday of date. The returned
// slice is a fresh copy.
func ForDate(date time.Time) []Entry {
	var pattern []Entry
	switch date.Weekday() {
	case time.Monday:
		pattern = mondayPattern
	case time.Friday:
		pattern = fridayPattern
	default:
		pattern = defaultPattern
	}
	out := make([]Entry, len(pattern))
	copy(out, pattern)
	return out
}

// View is the calendar pane: a viewed date and its timeline.
type View struct {
	date    time.Time
	entries []Entry
}

func NewView(date time.Time) *View {
	v := &View{}
	v.SetDate(date)
	return v
}

// SetDate replaces the viewed date and re-renders the timeline.
func (v *View) SetDate(date time.Time) {
	v.date = date
	v.entries = ForDate(date)
}

// Navigate shifts the viewed date by direction days (normally ±1).
func (v *View) Navigate(direction int) {
	v.SetDate(v.date.AddDate(0, 0, direction))
}

func (v *View) Date() time.Time {
	return v.date
}

func (v *View) Entries() []Entry {
	return v.entries
}

// Header is the long-form date shown above the timeline.
func (v *View) Header() string {
	return v.date.Format(constants.LongDateFormat)
}
