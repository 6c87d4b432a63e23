package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewPlain(&buf, "warn")

	log.Info().Msg("hidden")
	log.Warn().Float64("rho", 28).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "rho=28") {
		t.Errorf("warn message missing: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain logger wrote color codes: %q", out)
	}
}

func TestSampled(t *testing.T) {
	var buf bytes.Buffer
	log := Sampled(NewPlain(&buf, "trace"), 2, time.Hour, 1000)

	for i := 0; i < 10; i++ {
		log.Trace().Int("frame", i).Msg("frame")
	}

	// the burst of two, then the first of every thousand
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("expected 3 sampled lines, got %d:\n%s", got, buf.String())
	}
}
