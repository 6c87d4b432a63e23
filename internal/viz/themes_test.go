package viz

import "testing"

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("ocean theme not found")
	}
	if GetTheme("nonexistent").Name != "night" {
		t.Error("unknown theme should fall back to night")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestThemeRGBA(t *testing.T) {
	c := RGBA(ThemeOcean.Background)
	if c.R != 0 || c.G != 0x1a || c.B != 0x33 || c.A != 255 {
		t.Errorf("ocean background = %v", c)
	}
	if c := RGBA("not a color"); c.R != 0 || c.A != 255 {
		t.Errorf("fallback = %v, want opaque black", c)
	}
}
