package physics

import "github.com/san-kum/trajsim/internal/dynamo"

// Gravity is the vertical acceleration in m/s². Negative points down.
const Gravity = -9.8

// Acceleration returns the vertical acceleration acting on the projectile.
func Acceleration() float64 {
	return Gravity
}

// AccelerationVec returns the full acceleration vector. There is no
// horizontal component.
func AccelerationVec() dynamo.Vec2 {
	return dynamo.Vec2{X: 0, Y: Acceleration()}
}

// SpecificEnergy returns kinetic plus potential energy per unit mass, with
// potential measured from y = 0.
func SpecificEnergy(s dynamo.State) float64 {
	v := s.Vel.Vec()
	return 0.5*(v.X*v.X+v.Y*v.Y) - Acceleration()*s.Pos.Y
}
