package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// rotation is x' = y, y' = -x, z' = 0; the exact flow is a rotation.
type rotation struct{}

func (rotation) Derive(x dynamo.State3) dynamo.State3 {
	return dynamo.State3{X: x.Y, Y: -x.X}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	x := dynamo.State3{X: 1}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(rotation{}, x, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x.X-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x.X, expectedX)
	}
	if math.Abs(x.Y-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x.Y, expectedV)
	}
	if x.Z != 0 {
		t.Errorf("z drifted to %v", x.Z)
	}
}

func TestEulerMatchesRK4ForSmallStep(t *testing.T) {
	e, r := NewEuler(), NewRK4()
	x := dynamo.State3{X: 1}

	xe := e.Step(rotation{}, x, 1e-6)
	xr := r.Step(rotation{}, x, 1e-6)
	if xe.Sub(xr).Norm() > 1e-11 {
		t.Errorf("euler %v and rk4 %v diverge on a tiny step", xe, xr)
	}
}
