package wellness

import (
	"testing"
)

func TestApplyClampsToBounds(t *testing.T) {
	starts := []int{0, 1, 50, 85, 99, 100}
	deltas := []int{-1000, -101, -100, -51, -3, -1, 0, 1, 3, 5, 51, 100, 101, 1000}

	for _, start := range starts {
		for _, delta := range deltas {
			m := New(start)
			snap := m.Apply("test", delta)

			if snap.Score < 0 || snap.Score > 100 {
				t.Fatalf("start=%d delta=%d: score %d out of range", start, delta, snap.Score)
			}
			if snap.Risk != 100-snap.Score {
				t.Fatalf("start=%d delta=%d: risk %d != 100-%d", start, delta, snap.Risk, snap.Score)
			}
			want := Clamp(start + delta)
			if snap.Score != want {
				t.Errorf("start=%d delta=%d: score = %d, want %d", start, delta, snap.Score, want)
			}
		}
	}
}

func TestNewClampsInitial(t *testing.T) {
	if got := New(150).Score(); got != 100 {
		t.Errorf("New(150).Score() = %d, want 100", got)
	}
	if got := New(-5).Score(); got != 0 {
		t.Errorf("New(-5).Score() = %d, want 0", got)
	}
}

func TestScoreLabelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, LabelExcellent},
		{80, LabelExcellent},
		{79, LabelGood},
		{60, LabelGood},
		{59, LabelFair},
		{40, LabelFair},
		{39, LabelNeedsAttention},
		{0, LabelNeedsAttention},
	}
	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRiskLevelThresholds(t *testing.T) {
	tests := []struct {
		risk int
		want RiskLevel
	}{
		{0, RiskLow},
		{29, RiskLow},
		{30, RiskModerate},
		{59, RiskModerate},
		{60, RiskHigh},
		{100, RiskHigh},
	}
	for _, tt := range tests {
		if got := RiskLevelFor(tt.risk); got != tt.want {
			t.Errorf("RiskLevelFor(%d) = %q, want %q", tt.risk, got, tt.want)
		}
	}
}

func TestOnChangeReceivesSnapshot(t *testing.T) {
	m := New(85)
	var got []Snapshot
	m.OnChange(func(s Snapshot) { got = append(got, s) })

	m.Apply("Buffer time", 5)
	m.Apply("Excessive screen time", -1)

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Score != 90 || got[0].Delta != 5 || got[0].Source != "Buffer time" {
		t.Errorf("first snapshot = %+v", got[0])
	}
	if got[1].Score != 89 || got[1].Risk != 11 || got[1].RiskLevel != RiskLow {
		t.Errorf("second snapshot = %+v", got[1])
	}
}

func TestAppliedExcludesClampedPart(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		delta   int
		applied int
	}{
		{"within range", 85, 5, 5},
		{"at ceiling", 100, 5, 0},
		{"partly clamped", 97, 5, 3},
		{"floor", 2, -5, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := New(tt.initial).Apply("test", tt.delta)
			if snap.Delta != tt.delta {
				t.Errorf("Delta = %d, want %d", snap.Delta, tt.delta)
			}
			if snap.Applied != tt.applied {
				t.Errorf("Applied = %d, want %d", snap.Applied, tt.applied)
			}
		})
	}
}

func TestInitialRisk(t *testing.T) {
	snap := New(85).Snapshot()
	if snap.Risk != 15 || snap.Label != LabelExcellent || snap.RiskLevel != RiskLow {
		t.Errorf("initial snapshot = %+v", snap)
	}
}
