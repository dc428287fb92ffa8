package session

// Action identifies what a control does, independent of its display text.
type Action int

const (
	ActionNone Action = iota
	ActionPrevDay
	ActionNextDay
	ActionShowDetails

	// Recommendations
	ActionBufferTime
	ActionMindfulBreak
	ActionAIUsageLimit

	// Wellness tools
	ActionBreathing
	ActionEyeRest
	ActionAITracker
	ActionFocusMode

	// Modal controls
	ActionStartBreathing
	ActionCloseModal
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionPrevDay:        "prev-day",
	ActionNextDay:        "next-day",
	ActionShowDetails:    "show-details",
	ActionBufferTime:     "buffer-time",
	ActionMindfulBreak:   "mindful-break",
	ActionAIUsageLimit:   "ai-usage-limit",
	ActionBreathing:      "breathing",
	ActionEyeRest:        "eye-rest",
	ActionAITracker:      "ai-tracker",
	ActionFocusMode:      "focus-mode",
	ActionStartBreathing: "start-breathing",
	ActionCloseModal:     "close-modal",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Control is a button on the dashboard. The action is fixed when the control
// is built; Title is display text only.
type Control struct {
	Action      Action
	Title       string
	Description string
	Icon        string
}

// Recommendations are the "Apply" cards.
var Recommendations = []Control{
	{
		Action:      ActionBufferTime,
		Title:       "Schedule Buffer Time",
		Description: "Add 10-minute breaks between back-to-back meetings",
		Icon:        "⏱",
	},
	{
		Action:      ActionMindfulBreak,
		Title:       "Mindful Break",
		Description: "Your 10:30 review is high-stress. Breathe before it starts",
		Icon:        "🧘",
	},
	{
		Action:      ActionAIUsageLimit,
		Title:       "AI Usage Limit",
		Description: "Get a reminder when AI tool usage reaches 4 hours",
		Icon:        "🤖",
	},
}

// Tools are the wellness tool cards.
var Tools = []Control{
	{
		Action:      ActionBreathing,
		Title:       "Breathing Exercise",
		Description: "5 slow breaths, 4 seconds in and 4 seconds out",
		Icon:        "🌸",
	},
	{
		Action:      ActionEyeRest,
		Title:       "Eye Rest",
		Description: "20-20-20 reminders while you work",
		Icon:        "👁",
	},
	{
		Action:      ActionAITracker,
		Title:       "AI Usage Tracker",
		Description: "See today's AI usage and burnout risk",
		Icon:        "📊",
	},
	{
		Action:      ActionFocusMode,
		Title:       "Focus Mode",
		Description: "A 25-minute distraction-free session",
		Icon:        "🎯",
	},
}
