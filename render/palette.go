package render

import (
	"strings"

	"github.com/pkg/errors"
)

// Theme selects the color palette
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ErrUnknownTheme is returned by ParseTheme
var ErrUnknownTheme = errors.New("unknown theme")

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts "dark" or "light", case-insensitive
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, errors.Wrapf(ErrUnknownTheme, "%q", s)
}

// Palette is the full color set for one theme
type Palette struct {
	Background RGB
	Line       RGB
	LineAlpha  float64 // Peak edge opacity, scaled by both endpoint lives
	Particle   RGB
	Glow       RGB
	GlowMode   BlendMode
	HUD        RGB
}

// palettes are resolved once from HSL definitions
var palettes = [...]Palette{
	ThemeDark: {
		Background: HSL(222, 0.47, 0.06),
		Line:       HSL(200, 0.80, 0.60),
		LineAlpha:  0.3,
		Particle:   HSL(210, 1.00, 0.85),
		Glow:       HSL(200, 1.00, 0.70),
		GlowMode:   BlendScreen,
		HUD:        HSL(210, 0.40, 0.75),
	},
	ThemeLight: {
		Background: HSL(210, 0.40, 0.98),
		Line:       HSL(210, 0.70, 0.50),
		LineAlpha:  0.4,
		Particle:   HSL(220, 0.80, 0.55),
		Glow:       HSL(210, 0.70, 0.50),
		GlowMode:   BlendAlpha,
		HUD:        HSL(220, 0.30, 0.35),
	},
}

// PaletteFor returns the palette of theme, unknown values fall back to dark
func PaletteFor(t Theme) Palette {
	if int(t) >= len(palettes) {
		return palettes[ThemeDark]
	}
	return palettes[t]
}
