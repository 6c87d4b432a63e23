package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Generate integrates n points starting at seed. The first point is the seed
// itself, so n points take n-1 steps.
func Generate(integ dynamo.Integrator, f dynamo.Field, seed dynamo.State3, dt float64, n int) []dynamo.State3 {
	if n <= 0 {
		return nil
	}
	points := make([]dynamo.State3, n)
	points[0] = seed
	for i := 1; i < n; i++ {
		points[i] = integ.Step(f, points[i-1], dt)
	}
	return points
}

var registry = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
}

// Lookup returns a new integrator registered under name.
func Lookup(name string) (dynamo.Integrator, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("integrator %q (available: %v): %w", name, Names(), dynamo.ErrUnknownIntegrator)
	}
	return ctor(), nil
}

// Names lists the registered integrator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
