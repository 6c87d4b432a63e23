package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lorenz/internal/analysis"
	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/spf13/cobra"
)

func newTraceCmd(o *options) *cobra.Command {
	var (
		steps    int
		coord    string
		height   int
		width    int
		spectrum bool
		lyapunov bool
	)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "integrate a trajectory and plot one coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pick, ok := coordinates[coord]
			if !ok {
				return fmt.Errorf("unknown coordinate %q (want x, y or z)", coord)
			}
			if steps < 2 {
				return fmt.Errorf("steps must be at least 2, got %d", steps)
			}

			cfg, _, err := o.resolve()
			if err != nil {
				return err
			}
			integ, err := integrators.Lookup(cfg.Integrator)
			if err != nil {
				return err
			}

			field := physics.NewLorenzWith(cfg.Sigma, cfg.Rho, cfg.Beta)
			states := integrators.Generate(integ, field, cfg.Seed(), cfg.Dt, steps)

			data := make([]float64, len(states))
			for i, s := range states {
				data[i] = pick(s)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, asciigraph.Plot(data,
				asciigraph.Height(height),
				asciigraph.Width(width),
				asciigraph.Caption(fmt.Sprintf("%s over %d steps (sigma=%g rho=%g beta=%.4g dt=%g)",
					coord, steps, cfg.Sigma, cfg.Rho, cfg.Beta, cfg.Dt)),
			))
			fmt.Fprintln(out)

			if spectrum {
				ps := analysis.PowerSpectrum(data)
				fmt.Fprintln(out, asciigraph.Plot(ps[1:],
					asciigraph.Height(height),
					asciigraph.Width(width),
					asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", coord)),
				))
				fmt.Fprintf(out, "dominant frequency: %.4f\n\n", analysis.DominantFrequency(data, cfg.Dt))
			}

			lo, hi := bounds(states)
			last := states[len(states)-1]
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tx\ty\tz")
			fmt.Fprintf(w, "final\t%.4f\t%.4f\t%.4f\n", last.X, last.Y, last.Z)
			fmt.Fprintf(w, "min\t%.4f\t%.4f\t%.4f\n", lo.X, lo.Y, lo.Z)
			fmt.Fprintf(w, "max\t%.4f\t%.4f\t%.4f\n", hi.X, hi.Y, hi.Z)
			if err := w.Flush(); err != nil {
				return err
			}

			if lyapunov {
				lambda := analysis.LyapunovExponent(integ, field, cfg.Seed(), cfg.Dt, 1000, 20000, 1e-8)
				fmt.Fprintf(out, "\nlargest lyapunov exponent: %.4f\n", lambda)
			}
			return nil
		},
	}
	traceCmd.Flags().IntVar(&steps, "steps", 2000, "number of points, seed included")
	traceCmd.Flags().StringVar(&coord, "coord", "x", "coordinate to plot: x, y or z")
	traceCmd.Flags().IntVar(&height, "height", 15, "plot height in rows")
	traceCmd.Flags().IntVar(&width, "width", 80, "plot width in columns")
	traceCmd.Flags().BoolVar(&spectrum, "spectrum", false, "also plot the power spectrum")
	traceCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the largest lyapunov exponent")
	return traceCmd
}

var coordinates = map[string]func(dynamo.State3) float64{
	"x": func(s dynamo.State3) float64 { return s.X },
	"y": func(s dynamo.State3) float64 { return s.Y },
	"z": func(s dynamo.State3) float64 { return s.Z },
}

// bounds returns the componentwise minimum and maximum of the finite states.
func bounds(states []dynamo.State3) (lo, hi dynamo.State3) {
	lo = dynamo.State3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = dynamo.State3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, s := range states {
		if !s.IsValid() {
			continue
		}
		lo = dynamo.State3{X: math.Min(lo.X, s.X), Y: math.Min(lo.Y, s.Y), Z: math.Min(lo.Z, s.Z)}
		hi = dynamo.State3{X: math.Max(hi.X, s.X), Y: math.Max(hi.Y, s.Y), Z: math.Max(hi.Z, s.Z)}
	}
	return lo, hi
}
