// Package physics provides the vector fields driven by the renderer.
//
// [Lorenz] implements [dynamo.Field] and [dynamo.Configurable], so its
// sigma, rho and beta coefficients can be replaced while a session runs:
//
//	l := physics.NewLorenz()
//	_ = l.SetParam("rho", 99.96)
//
// [Step] is the closed-form forward Euler step used as the reference for the
// pluggable integrators.
package physics
