package analysis

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

// Reference returns the exact position t seconds after launch from p0 with
// velocity v0:
//
//	x(t) = x0 + t*vx0
//	y(t) = y0 + t*vy0 + a*t²/2
func Reference(p0 dynamo.Position, v0 dynamo.Velocity, t float64) dynamo.Position {
	return dynamo.Position{
		X: p0.X + t*v0.X,
		Y: p0.Y + t*v0.Y + 0.5*physics.Acceleration()*t*t,
	}
}

// ReferenceAt samples Reference at each of times.
func ReferenceAt(p0 dynamo.Position, v0 dynamo.Velocity, times []float64) dynamo.Trajectory {
	out := make(dynamo.Trajectory, len(times))
	for i, t := range times {
		out[i] = Reference(p0, v0, t)
	}
	return out
}

// EulerBias is the vertical distance between the explicit Euler solution
// and the exact one after t seconds of steps of size dt, when t is a
// multiple of dt. Horizontal motion is integrated exactly.
func EulerBias(dt, t float64) float64 {
	return math.Abs(physics.Acceleration()) * dt * t / 2
}
