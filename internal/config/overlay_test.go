package config

import (
	"errors"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/spf13/pflag"
)

func TestOverlayEnv(t *testing.T) {
	t.Setenv("LORENZ_RHO", "99.96")
	t.Setenv("LORENZ_RENDER_HUE_SHIFT", "30")
	t.Setenv("LORENZ_MODE", "explore")

	cfg := DefaultConfig()
	applied := Overlay(cfg, NewViper())

	if cfg.Rho != 99.96 || cfg.Render.HueShift != 30 || cfg.Mode != ModeExplore {
		t.Errorf("env not applied: rho=%v hue=%v mode=%s", cfg.Rho, cfg.Render.HueShift, cfg.Mode)
	}
	if cfg.Sigma != 10 {
		t.Errorf("unset key changed sigma to %v", cfg.Sigma)
	}
	want := []string{"mode", "render.hue_shift", "rho"}
	if len(applied) != len(want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Errorf("applied = %v, want %v", applied, want)
		}
	}
}

func TestOverlayFlagBeatsEnv(t *testing.T) {
	t.Setenv("LORENZ_SIGMA", "12")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("sigma", 10, "")
	fs.Float64("beta", 8.0/3.0, "")
	if err := fs.Parse([]string{"--sigma=20"}); err != nil {
		t.Fatal(err)
	}

	v := NewViper()
	v.BindPFlag("sigma", fs.Lookup("sigma"))
	v.BindPFlag("beta", fs.Lookup("beta"))

	cfg := DefaultConfig()
	cfg.Beta = 1.5
	Overlay(cfg, v)

	if cfg.Sigma != 20 {
		t.Errorf("sigma = %v, want the flag value 20", cfg.Sigma)
	}
	if cfg.Beta != 1.5 {
		t.Errorf("unchanged flag overwrote beta with %v", cfg.Beta)
	}
}

func TestOverlayNaNIncrementFailsValidation(t *testing.T) {
	t.Setenv("LORENZ_VIEW_INCREMENT_PITCH", "NaN")

	cfg := DefaultConfig()
	Overlay(cfg, NewViper())
	if err := cfg.Validate(); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("Validate() = %v, want %v", err, dynamo.ErrParameterBounds)
	}
}
