// Package physics holds the force model for a projectile in uniform
// gravity.
//
// The only acceleration is vertical and constant: [Acceleration] returns
// [Gravity], and every other package reads the value through it so it is
// defined in exactly one place. Horizontal motion is unaccelerated.
//
// Specific mechanical energy (energy per unit mass) is conserved by the
// exact motion, which makes it a convenient drift measure for numerical
// integrators:
//
//	e0 := physics.SpecificEnergy(x0)
//	drift := math.Abs(physics.SpecificEnergy(x)-e0) / math.Abs(e0)
package physics
