// Package dynamo provides the value types shared by the projectile
// simulation:
//
//   - [Vec2]: immutable two-component vector
//   - [Position], [Velocity]: Vec2 in metres and metres/second
//   - [State]: position and velocity at one instant
//   - [Trajectory]: positions indexed by time step
//
// Every type here is a value type. Functions that advance a [State] take it
// by value and return a new one, so an initial state kept by the caller is
// never overwritten by a later step.
//
// # Example
//
//	x0 := dynamo.State{
//		Pos: dynamo.Position{X: 0, Y: 10},
//		Vel: dynamo.Velocity{X: 0.5, Y: 4},
//	}
//	s := sim.New()
//	result, _ := s.Run(x0, dynamo.Config{Dt: 0.01, Steps: 100})
package dynamo
