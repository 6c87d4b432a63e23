package integrators

import (
	"testing"

	"github.com/san-kum/lorenz/internal/physics"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	f := physics.NewLorenz()
	x := seed

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(f, x, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	f := physics.NewLorenz()
	x := seed

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(f, x, 0.01)
	}
}

func BenchmarkGenerate10k(b *testing.B) {
	integrator := NewEuler()
	f := physics.NewLorenz()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Generate(integrator, f, seed, 0.01, 10000)
	}
}
