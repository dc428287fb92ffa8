package config

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindfulmeet/internal/constants"
	"github.com/julianstephens/mindfulmeet/internal/errors"
)

// Config holds the tunable constants of a dashboard session. Every field is
// bound to a CLI flag, an environment variable and a key in the optional
// JSON config file.
type Config struct {
	InitialScore     int           `help:"Wellness score at session start." default:"85" env:"MINDFULMEET_INITIAL_SCORE"`
	AIUsageHours     int           `help:"Simulated AI usage for today, in hours." default:"3" name:"ai-usage-hours" env:"MINDFULMEET_AI_USAGE_HOURS"`
	MeetingCount     int           `help:"Simulated number of meetings today." default:"6" env:"MINDFULMEET_MEETING_COUNT"`
	ActivityInterval time.Duration `help:"How often the activity simulator runs." default:"30s" env:"MINDFULMEET_ACTIVITY_INTERVAL"`
	ActivityChance   float64       `help:"Probability that a simulated activity happens on each run." default:"0.3" env:"MINDFULMEET_ACTIVITY_CHANCE"`
	EyeRestInterval  time.Duration `help:"Interval between eye-rest reminders." default:"20m" env:"MINDFULMEET_EYE_REST_INTERVAL"`
	FocusDuration    time.Duration `help:"Length of a focus session." default:"25m" env:"MINDFULMEET_FOCUS_DURATION"`
	BreathPhase      time.Duration `help:"Length of one inhale or exhale phase." default:"4s" env:"MINDFULMEET_BREATH_PHASE"`
	BreathCycles     int           `help:"Full breaths per breathing exercise." default:"5" env:"MINDFULMEET_BREATH_CYCLES"`
	ToastTTL         time.Duration `help:"How long a toast notification stays visible." default:"5s" name:"toast-ttl" env:"MINDFULMEET_TOAST_TTL"`
	WelcomeDelay     time.Duration `help:"Delay before the welcome toast." default:"1s" env:"MINDFULMEET_WELCOME_DELAY"`
	AppliedFeedback  time.Duration `help:"How long a recommendation shows as applied." default:"2s" env:"MINDFULMEET_APPLIED_FEEDBACK"`
	Seed             int64         `help:"Seed for the activity simulator (0 picks one from the clock)." default:"0" env:"MINDFULMEET_SEED"`
}

// Default returns the configuration used when no flags or config file override it.
func Default() Config {
	return Config{
		InitialScore:     constants.DefaultInitialScore,
		AIUsageHours:     constants.DefaultAIUsageHours,
		MeetingCount:     constants.DefaultMeetingCount,
		ActivityInterval: constants.DefaultActivityInterval,
		ActivityChance:   constants.DefaultActivityChance,
		EyeRestInterval:  constants.DefaultEyeRestInterval,
		FocusDuration:    constants.DefaultFocusDuration,
		BreathPhase:      constants.DefaultBreathPhase,
		BreathCycles:     constants.DefaultBreathCycles,
		ToastTTL:         constants.DefaultToastTTL,
		WelcomeDelay:     constants.DefaultWelcomeDelay,
		AppliedFeedback:  constants.DefaultAppliedFeedback,
	}
}

// Validate checks that every value is usable by the scheduler and score model.
func (c Config) Validate() error {
	if c.InitialScore < constants.MinScore || c.InitialScore > constants.MaxScore {
		return invalid("initial score %d is outside %d-%d", c.InitialScore, constants.MinScore, constants.MaxScore)
	}
	if c.AIUsageHours < 0 {
		return invalid("ai usage hours cannot be negative")
	}
	if c.MeetingCount < 0 {
		return invalid("meeting count cannot be negative")
	}
	if c.ActivityChance < 0 || c.ActivityChance > 1 {
		return invalid("activity chance %.2f is outside 0-1", c.ActivityChance)
	}
	if c.BreathCycles < 1 {
		return invalid("breath cycles must be at least 1")
	}

	periodic := []struct {
		name string
		d    time.Duration
	}{
		{"activity interval", c.ActivityInterval},
		{"eye rest interval", c.EyeRestInterval},
		{"focus duration", c.FocusDuration},
		{"breath phase", c.BreathPhase},
		{"toast ttl", c.ToastTTL},
		{"applied feedback", c.AppliedFeedback},
	}
	for _, p := range periodic {
		if p.d <= 0 {
			return invalid("%s must be positive, got %s", p.name, p.d)
		}
	}
	if c.WelcomeDelay < 0 {
		return invalid("welcome delay cannot be negative")
	}

	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
