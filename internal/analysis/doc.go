// Package analysis validates numerical trajectories against the exact
// solution for constant acceleration.
//
//   - [Reference]: closed-form position at elapsed time t
//   - [Compare]: per-sample error of a trajectory against [Reference]
//   - [Convergence]: error as dt is repeatedly halved over a fixed duration
//
// Nothing in this package feeds back into the integrator; it only reads
// trajectories that were already computed.
//
// # Convergence
//
// Explicit Euler is first order. For this system the vertical error at time
// t is exactly |a|*dt*t/2 (see [EulerBias]), so halving dt halves the error
// and the observed order reported by [Study] approaches 1.
package analysis
