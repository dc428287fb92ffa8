package wellness

import (
	"github.com/julianstephens/mindfulmeet/internal/constants"
)

// RiskLevel buckets the burnout risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

const (
	LabelExcellent      = "Excellent"
	LabelGood           = "Good"
	LabelFair           = "Fair"
	LabelNeedsAttention = "Needs Attention"
)

// Snapshot is the observable state of the score model after a mutation.
type Snapshot struct {
	Score     int
	Risk      int
	Label     string
	RiskLevel RiskLevel
	Delta     int    // requested change, before clamping
	Applied   int    // change that survived clamping
	Source    string // what caused the change
}

// ChangeFunc is notified after every mutation.
type ChangeFunc func(Snapshot)

// Model holds the bounded wellness score and its derived burnout risk.
type Model struct {
	score     int
	listeners []ChangeFunc
}

func New(initial int) *Model {
	return &Model{score: Clamp(initial)}
}

// OnChange registers fn to be called after every Apply.
func (m *Model) OnChange(fn ChangeFunc) {
	m.listeners = append(m.listeners, fn)
}

// Apply adds delta to the score, clamps it to [0,100] and notifies listeners.
func (m *Model) Apply(source string, delta int) Snapshot {
	prev := m.score
	m.score = Clamp(m.score + delta)
	snap := m.Snapshot()
	snap.Delta = delta
	snap.Applied = m.score - prev
	snap.Source = source
	for _, fn := range m.listeners {
		fn(snap)
	}
	return snap
}

func (m *Model) Score() int {
	return m.score
}

// Risk is always 100 minus the score.
func (m *Model) Risk() int {
	return constants.MaxScore - m.score
}

func (m *Model) Snapshot() Snapshot {
	return Snapshot{
		Score:     m.score,
		Risk:      m.Risk(),
		Label:     ScoreLabel(m.score),
		RiskLevel: RiskLevelFor(m.Risk()),
	}
}

// Clamp bounds a score to [0,100].
func Clamp(score int) int {
	if score < constants.MinScore {
		return constants.MinScore
	}
	if score > constants.MaxScore {
		return constants.MaxScore
	}
	return score
}

func ScoreLabel(score int) string {
	switch {
	case score >= constants.ScoreExcellent:
		return LabelExcellent
	case score >= constants.ScoreGood:
		return LabelGood
	case score >= constants.ScoreFair:
		return LabelFair
	default:
		return LabelNeedsAttention
	}
}

func RiskLevelFor(risk int) RiskLevel {
	switch {
	case risk < constants.RiskLowBelow:
		return RiskLow
	case risk < constants.RiskModerateBelow:
		return RiskModerate
	default:
		return RiskHigh
	}
}
