package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

const (
	DefaultSigma = 10.0
	DefaultRho   = 28.0
	DefaultBeta  = 8.0 / 3.0
)

// Lorenz is the classic three-variable convection model.
type Lorenz struct{ Sigma, Rho, Beta float64 }

var (
	_ dynamo.Field        = (*Lorenz)(nil)
	_ dynamo.Configurable = (*Lorenz)(nil)
)

func NewLorenz() *Lorenz { return &Lorenz{DefaultSigma, DefaultRho, DefaultBeta} }

// NewLorenzWith returns a system with the given coefficients.
func NewLorenzWith(sigma, rho, beta float64) *Lorenz { return &Lorenz{sigma, rho, beta} }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State3) dynamo.State3 {
	return dynamo.State3{
		X: l.Sigma * (s.Y - s.X),
		Y: s.X*(l.Rho-s.Z) - s.Y,
		Z: s.X*s.Y - l.Beta*s.Z,
	}
}

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.Sigma, "rho": l.Rho, "beta": l.Beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &dynamo.ParamError{Name: n, Value: v, Wrapped: dynamo.ErrParameterBounds}
	}
	switch n {
	case "sigma":
		l.Sigma = v
	case "rho":
		l.Rho = v
	case "beta":
		l.Beta = v
	default:
		return fmt.Errorf("lorenz %q: %w", n, dynamo.ErrUnknownParam)
	}
	return nil
}

// Step advances s by one forward Euler step of the Lorenz field.
func Step(s dynamo.State3, sigma, rho, beta, dt float64) dynamo.State3 {
	l := Lorenz{sigma, rho, beta}
	return s.Add(l.Derive(s).Scale(dt))
}
