package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

// RK4 is the classic fourth order Runge-Kutta method with a fixed step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f dynamo.Field, x dynamo.State3, dt float64) dynamo.State3 {
	k1 := f.Derive(x)
	k2 := f.Derive(x.Add(k1.Scale(dt * 0.5)))
	k3 := f.Derive(x.Add(k2.Scale(dt * 0.5)))
	k4 := f.Derive(x.Add(k3.Scale(dt)))

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return x.Add(sum.Scale(dt / 6.0))
}
