package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// Severity represents the visual severity of a toast notification
type Severity string

// StressTier represents the stress level attached to a mock meeting
type StressTier string

const (
	AppName           = "mindfulmeet"
	DefaultConfigDir  = "~/.config/mindfulmeet"
	DefaultConfigFile = "~/.config/mindfulmeet/config.json"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// LongDateFormat is the header format of the calendar pane
	LongDateFormat = "Monday, January 2, 2006"

	// Session defaults
	DefaultInitialScore = 85
	DefaultAIUsageHours = 3
	DefaultMeetingCount = 6
	DefaultWorkdayHours = 8
	AIUsageLimitHours   = 4
	ProductivityBoost   = 40 // percent, shown by the AI usage tracker

	// Score bounds and thresholds
	MinScore          = 0
	MaxScore          = 100
	ScoreExcellent    = 80
	ScoreGood         = 60
	ScoreFair         = 40
	RiskLowBelow      = 30
	RiskModerateBelow = 60

	DefaultActivityChance = 0.3

	// Fixed score bonuses
	BreathingBonus  = 3
	BufferTimeBonus = 5
	FocusBonus      = 5

	// Breathing exercise
	DefaultBreathCycles = 5

	// Timer defaults
	DefaultActivityInterval = 30 * time.Second
	DefaultEyeRestInterval  = 20 * time.Minute
	DefaultFocusDuration    = 25 * time.Minute
	DefaultBreathPhase      = 4 * time.Second
	DefaultToastTTL         = 5 * time.Second
	DefaultWelcomeDelay     = 1 * time.Second
	DefaultAppliedFeedback  = 2 * time.Second
	TickResolution          = 250 * time.Millisecond
	// MaxTickGap is the longest gap between ticks treated as normal running.
	MaxTickGap = 10 * time.Second

	// Severity constants
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"

	// Stress tier constants
	StressLow    StressTier = "low"
	StressMedium StressTier = "medium"
	StressHigh   StressTier = "high"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateBreathing
	StateTracker
	StateConfirmQuit
)
