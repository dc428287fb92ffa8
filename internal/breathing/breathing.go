// Package breathing implements the guided breathing exercise as a state
// machine advanced by an external tick source.
package breathing

import "fmt"

type State int

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

type Phase int

const (
	PhaseNone Phase = iota
	PhaseInhale
	PhaseExhale
)

// Exercise counts half-cycles (one inhale or one exhale per tick).
type Exercise struct {
	state      State
	phase      Phase
	ticks      int
	total      int
	phaseSecs  int
	completion int
}

// New returns an idle exercise of cycles full breaths. phaseSecs is only
// used to word the instructions.
func New(cycles, phaseSecs int) *Exercise {
	if cycles < 1 {
		cycles = 1
	}
	return &Exercise{total: cycles * 2, phaseSecs: phaseSecs}
}

func (e *Exercise) State() State { return e.state }
func (e *Exercise) Phase() Phase { return e.phase }
func (e *Exercise) Ticks() int   { return e.ticks }
func (e *Exercise) Total() int   { return e.total }

// Completions is how many runs have finished since the exercise was opened.
func (e *Exercise) Completions() int { return e.completion }

// CanStart reports whether the start control is enabled.
func (e *Exercise) CanStart() bool {
	return e.state != Running
}

// Start begins a run. It is refused while a run is in progress.
func (e *Exercise) Start() bool {
	if !e.CanStart() {
		return false
	}
	e.state = Running
	e.phase = PhaseNone
	e.ticks = 0
	return true
}

// Tick advances one half-cycle and reports whether this tick finished the run.
// Ticks outside a run are ignored.
func (e *Exercise) Tick() bool {
	if e.state != Running {
		return false
	}
	if e.ticks%2 == 0 {
		e.phase = PhaseInhale
	} else {
		e.phase = PhaseExhale
	}
	e.ticks++
	if e.ticks < e.total {
		return false
	}
	e.state = Completed
	e.phase = PhaseNone
	e.completion++
	return true
}

// Instruction is the text shown under the breathing circle.
func (e *Exercise) Instruction() string {
	switch e.state {
	case Idle:
		return "Press enter to start"
	case Completed:
		return "Great job! You completed the breathing exercise."
	}
	switch e.phase {
	case PhaseInhale:
		return fmt.Sprintf("Breathe in slowly... (%d seconds)", e.phaseSecs)
	case PhaseExhale:
		return fmt.Sprintf("Breathe out slowly... (%d seconds)", e.phaseSecs)
	default:
		return "Get ready..."
	}
}

// ButtonLabel is the label of the start control.
func (e *Exercise) ButtonLabel() string {
	switch e.state {
	case Running:
		return "Breathing..."
	case Completed:
		return "Start Again"
	default:
		return "Start"
	}
}
