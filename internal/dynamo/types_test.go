package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestVec2_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		valid bool
	}{
		{"zero", Vec2{}, true},
		{"normal", Vec2{1.0, -2.0}, true},
		{"with NaN", Vec2{1.0, math.NaN()}, false},
		{"with +Inf", Vec2{math.Inf(1), 0}, false},
		{"with -Inf", Vec2{0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if sum := a.Add(b); sum != (Vec2{5, 8}) {
		t.Errorf("Add failed: got %v", sum)
	}
	if diff := b.Sub(a); diff != (Vec2{3, 4}) {
		t.Errorf("Sub failed: got %v", diff)
	}
	if scaled := a.Scale(2); scaled != (Vec2{2, 4}) {
		t.Errorf("Scale failed: got %v", scaled)
	}
	if n := b.Sub(a).Norm(); math.Abs(n-5) > 1e-12 {
		t.Errorf("Norm failed: got %v", n)
	}

	if a != (Vec2{1, 2}) || b != (Vec2{4, 6}) {
		t.Errorf("operands changed: a=%v b=%v", a, b)
	}
}

func TestPosition_Advance(t *testing.T) {
	p := Position{X: 1, Y: 2}
	v := Velocity{X: 10, Y: -20}

	got := p.Advance(v, 0.5)
	want := Position{X: 6, Y: -8}
	if got != want {
		t.Errorf("Advance = %v, want %v", got, want)
	}
	if p != (Position{X: 1, Y: 2}) {
		t.Errorf("receiver changed: %v", p)
	}
}

func TestTrajectory_Accessors(t *testing.T) {
	var empty Trajectory
	if empty.Last() != (Position{}) {
		t.Error("Last of empty trajectory should be zero")
	}

	traj := Trajectory{{X: 0, Y: 1}, {X: 2, Y: 3}}
	if traj.Last() != (Position{X: 2, Y: 3}) {
		t.Errorf("Last = %v", traj.Last())
	}
	xs, ys := traj.Xs(), traj.Ys()
	if xs[0] != 0 || xs[1] != 2 || ys[0] != 1 || ys[1] != 3 {
		t.Errorf("Xs/Ys = %v %v", xs, ys)
	}
}

func TestSimulationError_Unwrap(t *testing.T) {
	err := &SimulationError{Step: 3, Time: 0.03, Wrapped: ErrInvalidState}

	if !errors.Is(err, ErrInvalidState) {
		t.Error("expected errors.Is to match ErrInvalidState")
	}
	if err.Error() != "step 3 (t=0.0300): dynamo: invalid state (NaN or Inf detected)" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
