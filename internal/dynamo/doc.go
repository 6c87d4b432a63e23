// Package dynamo provides the core value types shared by the Lorenz tail
// renderer.
//
// The package defines the fundamental types and interfaces of the pipeline:
//
//   - [State3]: a point in phase space
//   - [Slot]: a trajectory buffer entry that may not have been written yet
//   - [Point2]: a projected point in the view plane
//   - [Field]: a vector field dX/dt = f(X)
//   - [Integrator]: a fixed-step numerical integrator
//
// # Example
//
//	field := physics.NewLorenz()
//	integ := integrators.NewEuler()
//	next := integ.Step(field, dynamo.State3{X: 0.1}, 0.01)
//
// # Thread Safety
//
// All types are plain values. Nothing in this package holds shared state.
package dynamo
