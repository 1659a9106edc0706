package sim

import (
	"fmt"
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
)

// Trajectory integrates n positions starting from p0 with a fixed step dt.
// Entry 0 is p0 and entry i is the Euler step from entry i-1 and the
// velocity carried across iterations. Only positions are kept.
//
// dt must be positive; it is not checked. n must be at least 1.
func Trajectory(p0 dynamo.Position, v0 dynamo.Velocity, dt float64, n int) (dynamo.Trajectory, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", dynamo.ErrInvalidSteps, n)
	}

	traj := make(dynamo.Trajectory, n)
	traj[0] = p0

	vel := v0
	for i := 1; i < n; i++ {
		traj[i], vel = integrators.EulerStep(traj[i-1], vel, dt)
	}

	return traj, nil
}

// quotients within this relative distance of an integer are snapped to it,
// so 0.99/0.01 counts as 99 intervals and not 99.00000000000001.
const stepSnap = 1e-9

// StepsFor converts a total simulated time into a step count:
//
//	n = ceil(total/dt) + 1
//
// The extra sample is the initial position, so the last sample lands at or
// just past total. A total of zero gives a single sample.
func StepsFor(total, dt float64) (int, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w, got %v", dynamo.ErrInvalidTimestep, dt)
	}
	if !(total >= 0) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w, got %v", dynamo.ErrInvalidDuration, total)
	}

	q := total / dt
	if r := math.Round(q); math.Abs(q-r) <= stepSnap*math.Max(1, r) {
		q = r
	}
	if q >= math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v/%v needs too many steps", dynamo.ErrInvalidSteps, total, dt)
	}

	return int(math.Ceil(q)) + 1, nil
}
