package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/sim"
)

// Level is one row of a convergence study.
type Level struct {
	Dt      float64
	Steps   int
	Elapsed float64
	Error   float64
	// Order is log2 of the error ratio to the previous level. NaN for the
	// first level.
	Order float64
}

type Study struct {
	Total  float64
	Levels []Level
}

// Convergence integrates from p0, v0 for total seconds, first with dt0 and
// then with dt halved levels-1 more times. Step counts come from
// sim.StepsFor, so every level ends at the same elapsed time whenever total
// is a multiple of dt0.
func Convergence(p0 dynamo.Position, v0 dynamo.Velocity, total, dt0 float64, levels int) (*Study, error) {
	if levels < 1 {
		return nil, fmt.Errorf("analysis: levels must be at least 1, got %d", levels)
	}

	study := &Study{
		Total:  total,
		Levels: make([]Level, 0, levels),
	}

	dt := dt0
	for k := 0; k < levels; k++ {
		n, err := sim.StepsFor(total, dt)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}

		traj, err := sim.Trajectory(p0, v0, dt, n)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", k, err)
		}

		elapsed := float64(n-1) * dt
		ref := Reference(p0, v0, elapsed)

		lvl := Level{
			Dt:      dt,
			Steps:   n,
			Elapsed: elapsed,
			Error:   traj.Last().Vec().Sub(ref.Vec()).Norm(),
			Order:   math.NaN(),
		}
		if k > 0 {
			prev := study.Levels[k-1].Error
			if prev > 0 && lvl.Error > 0 {
				lvl.Order = math.Log2(prev / lvl.Error)
			}
		}

		study.Levels = append(study.Levels, lvl)
		dt /= 2
	}

	return study, nil
}

// Monotone reports whether every level has a strictly smaller error than
// the one before it.
func (s *Study) Monotone() bool {
	for k := 1; k < len(s.Levels); k++ {
		if !(s.Levels[k].Error < s.Levels[k-1].Error) {
			return false
		}
	}
	return true
}

// ObservedOrder averages the per-level orders, skipping undefined ones.
// It returns NaN when no order could be measured.
func (s *Study) ObservedOrder() float64 {
	sum, count := 0.0, 0
	for _, l := range s.Levels {
		if math.IsNaN(l.Order) {
			continue
		}
		sum += l.Order
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
