package render

import (
	"errors"
	"testing"
)

func TestPaletteFor(t *testing.T) {
	dark, light := PaletteFor(ThemeDark), PaletteFor(ThemeLight)
	if dark == light {
		t.Fatal("Expected distinct palettes")
	}
	if PaletteFor(ThemeDark) != dark {
		t.Error("Expected deterministic palette")
	}
	if PaletteFor(Theme(9)) != dark {
		t.Error("Expected unknown theme to fall back to dark")
	}

	// Dark draws light on dark, light the reverse
	lum := func(c RGB) int { return int(c.R) + int(c.G) + int(c.B) }
	if lum(dark.Particle) <= lum(dark.Background) {
		t.Error("Dark theme particles must be brighter than background")
	}
	if lum(light.Particle) >= lum(light.Background) {
		t.Error("Light theme particles must be darker than background")
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		err  bool
	}{
		{"dark", ThemeDark, false},
		{" Light ", ThemeLight, false},
		{"sepia", ThemeDark, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("%q: unexpected error state %v", tt.in, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownTheme) {
			t.Errorf("%q: expected ErrUnknownTheme, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Error("Toggle must swap themes")
	}
}
