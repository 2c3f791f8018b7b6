package render

import (
	"testing"
)

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := Blend(dst, src, 1); got != src {
		t.Errorf("Expected full alpha to return src, got %v", got)
	}
	if got := Blend(dst, src, 0); got != dst {
		t.Errorf("Expected zero alpha to return dst, got %v", got)
	}
	if got := Blend(dst, src, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half blend {100 50 25}, got %v", got)
	}
}

func TestScreen(t *testing.T) {
	tests := []struct {
		name     string
		dst, src RGB
		want     RGB
	}{
		{"black is identity", RGB{10, 20, 30}, RGB{0, 0, 0}, RGB{10, 20, 30}},
		{"white saturates", RGB{10, 20, 30}, RGB{255, 255, 255}, RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Screen(tt.dst, tt.src, 1); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	// Screen never darkens
	a, b := RGB{120, 40, 200}, RGB{60, 180, 10}
	got := Screen(a, b, 1)
	if got.R < a.R || got.G < a.G || got.B < a.B {
		t.Errorf("Screen darkened %v to %v", a, got)
	}
}

func TestLerpScale(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{100, 200, 250}
	if got := Lerp(a, b, 0.5); got != (RGB{50, 100, 125}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Expected clamp to b, got %v", got)
	}
	if got := Scale(b, 2); got != (RGB{200, 255, 255}) {
		t.Errorf("Expected clamped scale, got %v", got)
	}
}

func TestHSL(t *testing.T) {
	if got := HSL(0, 1, 0.5); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected pure red, got %v", got)
	}
	if got := HSL(0, 0, 1); got != (RGB{255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}
