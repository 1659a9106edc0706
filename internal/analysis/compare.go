package analysis

import (
	"github.com/san-kum/trajsim/internal/dynamo"
)

// Comparison holds the distance between a numerical trajectory and the
// exact one, sample by sample.
type Comparison struct {
	Reference  dynamo.Trajectory
	Errors     []float64
	MaxError   float64
	MaxAt      int
	FinalError float64
}

// Compare measures traj, sampled every dt seconds from p0 and v0, against
// Reference. Errors are Euclidean distances in metres.
func Compare(traj dynamo.Trajectory, p0 dynamo.Position, v0 dynamo.Velocity, dt float64) Comparison {
	c := Comparison{
		Reference: make(dynamo.Trajectory, len(traj)),
		Errors:    make([]float64, len(traj)),
	}

	for i, p := range traj {
		ref := Reference(p0, v0, float64(i)*dt)
		e := p.Vec().Sub(ref.Vec()).Norm()

		c.Reference[i] = ref
		c.Errors[i] = e
		if e > c.MaxError {
			c.MaxError = e
			c.MaxAt = i
		}
	}

	if len(c.Errors) > 0 {
		c.FinalError = c.Errors[len(c.Errors)-1]
	}

	return c
}
