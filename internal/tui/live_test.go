package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/lorenz/internal/config"
	"github.com/san-kum/lorenz/internal/sim"
)

func newLive(t *testing.T, buf *bytes.Buffer) *LiveRenderer {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.MaxLength = 200
	cfg.Render.FPS = 1000
	s, err := sim.New(sim.FromConfig(cfg))
	if err != nil {
		t.Fatal(err)
	}
	return NewLiveRenderer(buf, s, cfg, 30, 10)
}

func TestLiveRun(t *testing.T) {
	var buf bytes.Buffer
	r := newLive(t, &buf)
	r.Color = false

	if err := r.Run(context.Background(), 3); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if got := strings.Count(out, clearScreen); got != 3 {
		t.Errorf("expected 3 frames, got %d", got)
	}
	if !strings.HasPrefix(out, hideCursor) || !strings.HasSuffix(out, showCursor) {
		t.Error("cursor not hidden and restored")
	}
	if !strings.Contains(out, "frame 3") {
		t.Errorf("last frame header missing:\n%s", out)
	}
}

func TestLiveRunCancelled(t *testing.T) {
	var buf bytes.Buffer
	r := newLive(t, &buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), clearScreen); got != 1 {
		t.Errorf("expected one frame before stopping, got %d", got)
	}
}
