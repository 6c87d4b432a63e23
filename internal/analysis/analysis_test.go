package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
)

func TestLyapunovClassicIsChaotic(t *testing.T) {
	l := physics.NewLorenz()
	lambda := LyapunovExponent(&integrators.Euler{}, l, dynamo.State3{X: 0.1}, 0.01, 2000, 30000, 1e-8)
	if lambda < 0.5 || lambda > 1.5 {
		t.Errorf("lambda = %.3f, want near 0.9", lambda)
	}
}

func TestLyapunovSteadyIsStable(t *testing.T) {
	l := physics.NewLorenzWith(10, 14, 8.0/3.0)
	lambda := LyapunovExponent(&integrators.RK4{}, l, dynamo.State3{X: 0.1}, 0.01, 5000, 10000, 1e-8)
	if lambda >= 0 {
		t.Errorf("lambda = %.3f, want negative for rho=14", lambda)
	}
}

func TestLyapunovDegenerateInputs(t *testing.T) {
	l := physics.NewLorenz()
	if got := LyapunovExponent(&integrators.Euler{}, l, dynamo.State3{X: 1}, 0.01, 0, 0, 1e-8); got != 0 {
		t.Errorf("zero steps gave %v", got)
	}
	if got := LyapunovExponent(&integrators.Euler{}, l, dynamo.State3{X: 1}, 0, 0, 10, 1e-8); got != 0 {
		t.Errorf("zero dt gave %v", got)
	}
}

func TestDominantFrequency(t *testing.T) {
	const dt = 0.01
	data := make([]float64, 1000)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*5*float64(i)*dt)
	}
	if got := DominantFrequency(data, dt); math.Abs(got-5) > 1e-9 {
		t.Errorf("dominant frequency = %v, want 5", got)
	}
}

func TestPowerSpectrum(t *testing.T) {
	if PowerSpectrum(nil) != nil {
		t.Error("empty input should give nil")
	}
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ps := PowerSpectrum(data)
	if len(ps) != 5 {
		t.Errorf("len = %d, want 5", len(ps))
	}
	if data[0] != 1 || data[7] != 8 {
		t.Error("input was modified")
	}
}
