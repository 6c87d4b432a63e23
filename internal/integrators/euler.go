package integrators

import "github.com/san-kum/lorenz/internal/dynamo"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f dynamo.Field, x dynamo.State3, dt float64) dynamo.State3 {
	return x.Add(f.Derive(x).Scale(dt))
}
