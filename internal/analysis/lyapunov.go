package analysis

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// companion trajectory d0 away from the reference and pulling it back to
// distance d0 after every step. The first transient steps are discarded.
//
// A positive value indicates chaos; a negative one a stable fixed point.
func LyapunovExponent(
	integ dynamo.Integrator,
	f dynamo.Field,
	x0 dynamo.State3,
	dt float64,
	transient, steps int,
	d0 float64,
) float64 {
	if steps <= 0 || !(dt > 0) || !(d0 > 0) {
		return 0
	}

	x := x0
	for i := 0; i < transient; i++ {
		x = integ.Step(f, x, dt)
	}
	xp := x.Add(dynamo.State3{X: d0})

	sumLog := 0.0
	count := 0
	for i := 0; i < steps; i++ {
		x = integ.Step(f, x, dt)
		xp = integ.Step(f, xp, dt)

		sep := xp.Sub(x).Norm()
		if !(sep > 0) || math.IsInf(sep, 0) {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		// renormalize along the current separation
		xp = x.Add(xp.Sub(x).Scale(d0 / sep))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
