package integrators

import (
	"errors"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/physics"
)

var seed = dynamo.State3{X: 0.1}

func TestGenerateDeterministic(t *testing.T) {
	f := physics.NewLorenz()
	a := Generate(NewEuler(), f, seed, 0.01, 5000)
	b := Generate(NewEuler(), f, seed, 0.01, 5000)

	if len(a) != 5000 || len(b) != 5000 {
		t.Fatalf("expected 5000 points, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateEqualsRepeatedSteps(t *testing.T) {
	f := physics.NewLorenz()
	const n = 1000
	bulk := Generate(NewEuler(), f, seed, 0.01, n)

	x := seed
	if bulk[0] != x {
		t.Fatalf("first point %v is not the seed", bulk[0])
	}
	for i := 1; i < n; i++ {
		x = physics.Step(x, f.Sigma, f.Rho, f.Beta, 0.01)
		if bulk[i] != x {
			t.Fatalf("point %d: bulk %v, stepped %v", i, bulk[i], x)
		}
	}
}

func TestGenerateEdgeCounts(t *testing.T) {
	f := physics.NewLorenz()
	if got := Generate(NewEuler(), f, seed, 0.01, 0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
	if got := Generate(NewEuler(), f, seed, 0.01, 1); len(got) != 1 || got[0] != seed {
		t.Errorf("expected only the seed for n=1, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"euler", "rk4"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("rk45"); !errors.Is(err, dynamo.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
	if names := Names(); len(names) != 2 || names[0] != "euler" {
		t.Errorf("Names() = %v", names)
	}
}
