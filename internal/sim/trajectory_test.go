package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
)

func TestTrajectory_LengthAndStart(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000} {
		traj, err := Trajectory(p0, v0, 0.01, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(traj) != n {
			t.Errorf("n=%d: got %d positions", n, len(traj))
		}
		if traj[0] != p0 {
			t.Errorf("n=%d: entry 0 = %v, want %v", n, traj[0], p0)
		}
	}
}

func TestTrajectory_SingleSample(t *testing.T) {
	tests := []struct {
		name string
		v    dynamo.Velocity
		dt   float64
	}{
		{"default", v0, 0.01},
		{"large dt", v0, 100},
		{"fast", dynamo.Velocity{X: -300, Y: 900}, 0.5},
		{"at rest", dynamo.Velocity{}, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traj, err := Trajectory(p0, tt.v, tt.dt, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(traj) != 1 || traj[0] != p0 {
				t.Errorf("got %v, want [%v]", traj, p0)
			}
		})
	}
}

func TestTrajectory_RejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		traj, err := Trajectory(p0, v0, 0.01, n)
		if !errors.Is(err, dynamo.ErrInvalidSteps) {
			t.Errorf("n=%d: expected ErrInvalidSteps, got %v", n, err)
		}
		if traj != nil {
			t.Errorf("n=%d: expected nil trajectory, got %v", n, traj)
		}
	}
}

func TestTrajectory_FirstStep(t *testing.T) {
	traj, err := Trajectory(p0, v0, 0.01, 2)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(traj[1].X-0.005) > 1e-12 || math.Abs(traj[1].Y-10.04) > 1e-12 {
		t.Errorf("entry 1 = %v, want (0.005, 10.04)", traj[1])
	}
}

func TestTrajectory_AgainstClosedForm(t *testing.T) {
	traj, err := Trajectory(p0, v0, 0.01, 100)
	if err != nil {
		t.Fatal(err)
	}

	// Euler's vertical error grows as |a|*dt*t/2.
	got := traj[99].Y
	want := exactY(0.99)
	if e := math.Abs(got - want); e > 0.05 {
		t.Errorf("dt=0.01: error %g exceeds 0.05", e)
	}
	if math.Abs(traj[99].X-(p0.X+0.99*v0.X)) > 1e-9 {
		t.Errorf("horizontal motion should be exact, got %g", traj[99].X)
	}

	fine, err := Trajectory(p0, v0, 0.001, 991)
	if err != nil {
		t.Fatal(err)
	}
	if e := math.Abs(fine[990].Y - want); e >= 0.01 {
		t.Errorf("dt=0.001: error %g, want < 0.01", e)
	}
}

func TestStepsFor(t *testing.T) {
	tests := []struct {
		total, dt float64
		want      int
	}{
		{0.99, 0.01, 100},
		{1.0, 0.1, 11},
		{0.95, 0.1, 11},
		{0.3, 0.1, 4},
		{2.0, 0.001, 2001},
		{0, 0.1, 1},
		{0.001, 1.0, 2},
	}

	for _, tt := range tests {
		got, err := StepsFor(tt.total, tt.dt)
		if err != nil {
			t.Errorf("StepsFor(%v, %v): %v", tt.total, tt.dt, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StepsFor(%v, %v) = %d, want %d", tt.total, tt.dt, got, tt.want)
		}
	}
}

func TestStepsFor_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		total, dt float64
		want      error
	}{
		{"zero dt", 1.0, 0, dynamo.ErrInvalidTimestep},
		{"negative dt", 1.0, -0.1, dynamo.ErrInvalidTimestep},
		{"NaN dt", 1.0, math.NaN(), dynamo.ErrInvalidTimestep},
		{"negative total", -1.0, 0.1, dynamo.ErrInvalidDuration},
		{"NaN total", math.NaN(), 0.1, dynamo.ErrInvalidDuration},
		{"infinite total", math.Inf(1), 0.1, dynamo.ErrInvalidDuration},
		{"too many steps", 1e9, 1e-6, dynamo.ErrInvalidSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StepsFor(tt.total, tt.dt)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
