package integrators

import (
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

// Euler advances a projectile with explicit first-order integration: the
// rates at the start of the step are held for the whole step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

// Step returns the state dt seconds after s. dt must be positive; it is not
// checked. s is taken by value and never modified.
func (e *Euler) Step(s dynamo.State, dt float64) dynamo.State {
	pos, vel := EulerStep(s.Pos, s.Vel, dt)
	return dynamo.State{Pos: pos, Vel: vel}
}

// EulerStep is the explicit Euler update for position and velocity.
// Both results are computed from the inputs only:
//
//	pos' = pos + dt*vel
//	vel' = (vel.X, vel.Y + dt*a)
func EulerStep(pos dynamo.Position, vel dynamo.Velocity, dt float64) (dynamo.Position, dynamo.Velocity) {
	next := pos.Advance(vel, dt)
	nextVel := dynamo.Velocity{
		X: vel.X,
		Y: vel.Y + dt*physics.Acceleration(),
	}
	return next, nextVel
}
