package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

// EnergyDrift observes a run and tracks the largest relative deviation of
// specific mechanical energy from its value at step 0.
type EnergyDrift struct {
	initial  float64
	current  float64
	maxDrift float64
	worstAt  float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) OnStep(step int, t float64, s dynamo.State) {
	energy := physics.SpecificEnergy(s)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if e.initial == 0 {
		return
	}
	drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
	if drift > e.maxDrift {
		e.maxDrift = drift
		e.worstAt = t
	}
}

// Value is the maximum relative drift seen so far.
func (e *EnergyDrift) Value() float64 { return e.maxDrift }

// WorstAt is the time at which Value was reached.
func (e *EnergyDrift) WorstAt() float64 { return e.worstAt }

// Current is the specific energy of the last observed state.
func (e *EnergyDrift) Current() float64 { return e.current }

func (e *EnergyDrift) Samples() int { return e.samples }

func (e *EnergyDrift) Reset() {
	*e = EnergyDrift{}
}
