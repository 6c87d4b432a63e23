package sim

import (
	"testing"

	"github.com/san-kum/lorenz/internal/config"
)

func BenchmarkFrameAnimate(b *testing.B) {
	s, err := New(FromConfig(config.DefaultConfig()))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < s.Buffer().Cap(); i++ {
		s.Frame()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Frame()
	}
}

func BenchmarkFrameExplore(b *testing.B) {
	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeExplore
	s, err := New(FromConfig(cfg))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Frame()
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{Yaw, "yaw"},
		{Pitch, "pitch"},
		{Roll, "roll"},
		{Axis(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.want {
			t.Errorf("Axis(%d).String() = %q, want %q", tt.axis, got, tt.want)
		}
	}
}
