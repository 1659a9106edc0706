package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a two-component vector. All methods take and return values, so a
// Vec2 handed to a function can never be changed behind the caller's back.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{v.X * factor, v.Y * factor}
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsValid() bool {
	return !(math.IsNaN(v.X) || math.IsInf(v.X, 0) || math.IsNaN(v.Y) || math.IsInf(v.Y, 0))
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", v.X, v.Y)
}

// Position is a point in the plane, in metres.
type Position Vec2

// Velocity is a rate of change of position, in metres per second.
type Velocity Vec2

func (p Position) Vec() Vec2 { return Vec2(p) }
func (v Velocity) Vec() Vec2 { return Vec2(v) }

// Advance returns p + dt*v.
func (p Position) Advance(v Velocity, dt float64) Position {
	return Position(p.Vec().Add(v.Vec().Scale(dt)))
}

func (p Position) String() string { return p.Vec().String() }
func (v Velocity) String() string { return v.Vec().String() }

// State is the position and velocity of a body at one instant.
type State struct {
	Pos Position
	Vel Velocity
}

func (s State) IsValid() bool {
	return s.Pos.Vec().IsValid() && s.Vel.Vec().IsValid()
}

// Trajectory holds one position per time step. Entry 0 is the initial
// position and entry i was produced from the state at entry i-1.
type Trajectory []Position

// Last returns the final position, or the zero Position for an empty
// trajectory.
func (t Trajectory) Last() Position {
	if len(t) == 0 {
		return Position{}
	}
	return t[len(t)-1]
}

// Xs returns the horizontal coordinates as a plain slice.
func (t Trajectory) Xs() []float64 {
	out := make([]float64, len(t))
	for i, p := range t {
		out[i] = p.X
	}
	return out
}

// Ys returns the vertical coordinates as a plain slice.
func (t Trajectory) Ys() []float64 {
	out := make([]float64, len(t))
	for i, p := range t {
		out[i] = p.Y
	}
	return out
}

type Observer interface {
	OnStep(step int, t float64, s State)
}

type Config struct {
	Dt            float64
	Steps         int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Steps:         100,
		ValidateState: true,
	}
}

type Result struct {
	Positions   Trajectory
	Times       []float64
	Final       State
	EnergyDrift float64
	StepsTaken  int
}

// Elapsed is the simulated time covered by the result.
func (r *Result) Elapsed() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	return r.Times[len(r.Times)-1]
}
