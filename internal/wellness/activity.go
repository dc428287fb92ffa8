package wellness

import "github.com/julianstephens/mindfulmeet/internal/logger"

// Activity is a simulated event that nudges the wellness score.
type Activity struct {
	Name  string
	Delta int
}

// Activities is the fixed table the simulator draws from.
var Activities = []Activity{
	{Name: "Completed a task", Delta: 1},
	{Name: "Took a short break", Delta: 2},
	{Name: "Long meeting without break", Delta: -1},
	{Name: "Used AI tool efficiently", Delta: 1},
	{Name: "Excessive screen time", Delta: -1},
}

// Rand is the subset of math/rand/v2's *rand.Rand used by the simulator.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Simulator randomly applies activities to a score model.
type Simulator struct {
	model  *Model
	rng    Rand
	chance float64
}

func NewSimulator(model *Model, rng Rand, chance float64) *Simulator {
	return &Simulator{model: model, rng: rng, chance: chance}
}

// Step rolls once. When the roll succeeds it applies a uniformly chosen
// activity and returns it.
func (s *Simulator) Step() (Activity, bool) {
	if s.rng.Float64() >= s.chance {
		return Activity{}, false
	}
	a := Activities[s.rng.IntN(len(Activities))]
	snap := s.model.Apply(a.Name, a.Delta)
	logger.Debug("Simulated activity", "activity", a.Name, "delta", a.Delta, "score", snap.Score)
	return a, true
}
