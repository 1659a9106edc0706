package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/physics"
)

// Simulator runs the Euler integrator for a fixed number of steps and
// records positions and sample times. It is not safe for concurrent use
// while observers are being added.
type Simulator struct {
	integrator *integrators.Euler
	observers  []dynamo.Observer
}

func New() *Simulator {
	return &Simulator{
		integrator: integrators.NewEuler(),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run produces cfg.Steps samples starting at x0. Observers see every
// sample, the initial one included, in time order.
func (s *Simulator) Run(x0 dynamo.State, cfg dynamo.Config) (*dynamo.Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	n := cfg.Steps
	result := &dynamo.Result{
		Positions: make(dynamo.Trajectory, n),
		Times:     make([]float64, n),
	}

	x := x0
	result.Positions[0] = x.Pos
	result.Times[0] = 0
	s.notify(0, 0, x)

	for i := 1; i < n; i++ {
		next := s.integrator.Step(x, cfg.Dt)
		t := float64(i) * cfg.Dt

		if cfg.ValidateState && !next.IsValid() {
			result.Positions = result.Positions[:i]
			result.Times = result.Times[:i]
			result.Final = x
			return result, &dynamo.SimulationError{
				Step:    i,
				Time:    t,
				State:   next,
				Wrapped: dynamo.ErrInvalidState,
			}
		}

		x = next
		result.Positions[i] = x.Pos
		result.Times[i] = t
		result.StepsTaken++
		s.notify(i, t, x)
	}

	result.Final = x
	result.EnergyDrift = energyDrift(x0, x)

	return result, nil
}

func (s *Simulator) validateConfig(cfg dynamo.Config) error {
	if cfg.Steps < 1 {
		return fmt.Errorf("%w, got %d", dynamo.ErrInvalidSteps, cfg.Steps)
	}
	return nil
}

func (s *Simulator) notify(step int, t float64, x dynamo.State) {
	for _, obs := range s.observers {
		obs.OnStep(step, t, x)
	}
}

func energyDrift(x0, x dynamo.State) float64 {
	e0 := physics.SpecificEnergy(x0)
	if e0 == 0 {
		return 0
	}
	return math.Abs(physics.SpecificEnergy(x)-e0) / math.Abs(e0)
}
