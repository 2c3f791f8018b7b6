package render

import (
	"strings"
	"testing"
)

func TestStats_Line(t *testing.T) {
	s := Stats{
		Phase:     "assembled",
		Ticks:     42,
		Cycles:    3,
		Particles: 800,
		Links:     12345,
		Synapses:  7,
		FPS:       59.94,
		Theme:     ThemeLight,
		Paused:    true,
	}
	line := s.Line()
	for _, want := range []string{"assembled 42", "cycle 3", "800 particles", "12,345 links", "7 synapses", "59.9 fps", "light", "paused"} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
	s.Paused = false
	if strings.Contains(s.Line(), "paused") {
		t.Error("Expected no pause marker")
	}
}

func TestHUD_Fade(t *testing.T) {
	h := NewHUD(60, false)
	if h.Opacity() != 0 {
		t.Fatalf("Expected hidden HUD at 0, got %v", h.Opacity())
	}

	h.SetVisible(true)
	prev := 0.0
	for i := 0; i < 120; i++ {
		h.Step()
		if h.Opacity() < prev-1e-9 {
			t.Fatalf("Critically damped fade-in went backwards at step %d", i)
		}
		if h.Opacity() > 1 {
			t.Fatalf("Opacity overshoot %v", h.Opacity())
		}
		prev = h.Opacity()
	}
	if h.Opacity() < 0.95 {
		t.Errorf("Expected fade-in within two seconds, got %v", h.Opacity())
	}

	h.SetVisible(false)
	for i := 0; i < 120; i++ {
		h.Step()
	}
	if h.Opacity() > 0.05 {
		t.Errorf("Expected fade-out, got %v", h.Opacity())
	}
}

func TestHUD_DrawSkipsWhenHidden(t *testing.T) {
	c := NewCanvas(60, 3)
	NewHUD(60, false).Draw(c, PaletteFor(ThemeDark), Stats{Phase: "x"})
	for col := 0; col < c.Cols(); col++ {
		if c.overlay[2*c.Cols()+col].r != 0 {
			t.Fatal("Expected no overlay for hidden HUD")
		}
	}
	NewHUD(60, true).Draw(c, PaletteFor(ThemeDark), Stats{Phase: "x"})
	if c.overlay[2*c.Cols()+1].r != 'x' {
		t.Error("Expected status text on the bottom row")
	}
}
