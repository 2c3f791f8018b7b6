package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brainwave/vmath"
)

func TestCanvas_Dimensions(t *testing.T) {
	c := NewCanvas(80, 24)
	if c.Width() != 80 || c.Height() != 48 {
		t.Fatalf("Expected 80x48 pixels, got %dx%d", c.Width(), c.Height())
	}
	if c.Resize(80, 24) {
		t.Error("Expected no change for identical size")
	}
	if !c.Resize(10, 5) || c.Height() != 10 {
		t.Errorf("Expected shrink to 10x10 pixels, got %dx%d", c.Width(), c.Height())
	}
	if !c.Resize(-3, 0) || c.Width() != 0 {
		t.Error("Expected negative size to clamp to empty")
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(-1, 0, RGB{255, 0, 0}, 1, BlendReplace)
	c.Set(0, 4, RGB{255, 0, 0}, 1, BlendReplace)
	c.Set(4, 0, RGB{255, 0, 0}, 1, BlendReplace)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != RGBBlack {
				t.Fatalf("Unexpected write at (%d,%d)", x, y)
			}
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(7, 3)
	bg := RGB{1, 2, 3}
	c.Clear(bg)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != bg {
				t.Fatalf("Pixel (%d,%d) = %v, expected %v", x, y, c.At(x, y), bg)
			}
		}
	}
}

func TestCanvas_FlushHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(3, 2)

	c := NewCanvas(3, 2)
	top, bottom := RGB{255, 0, 0}, RGB{0, 0, 255}
	c.Set(1, 2, top, 1, BlendReplace)
	c.Set(1, 3, bottom, 1, BlendReplace)
	c.Flush(screen)

	r, _, style, _ := screen.GetContent(1, 1)
	if r != halfBlock {
		t.Errorf("Expected half block, got %q", r)
	}
	want := tcell.StyleDefault.Foreground(top.Color()).Background(bottom.Color())
	if style != want {
		t.Errorf("Expected fg=top bg=bottom style, got %v", style)
	}
}

func TestCanvas_TextOverlay(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(5, 1)

	c := NewCanvas(5, 1)
	c.Text(3, 0, "abc", RGB{255, 255, 255}, 1)
	c.Flush(screen)

	for x, want := range map[int]rune{0: halfBlock, 3: 'a', 4: 'b'} {
		if r, _, _, _ := screen.GetContent(x, 0); r != want {
			t.Errorf("Cell %d: expected %q, got %q", x, want, r)
		}
	}

	// Clear drops overlay text
	c.Clear(RGBBlack)
	c.Flush(screen)
	if r, _, _, _ := screen.GetContent(3, 0); r != halfBlock {
		t.Errorf("Expected overlay cleared, got %q", r)
	}
}

func TestCanvas_Primitives(t *testing.T) {
	c := NewCanvas(20, 10)
	white := RGB{255, 255, 255}

	c.Line(vmath.V2(0.5, 0.5), vmath.V2(19.5, 0.5), white, 1, BlendReplace)
	for x := 0; x < 20; x++ {
		if c.At(x, 0) != white {
			t.Fatalf("Expected horizontal line pixel at x=%d", x)
		}
	}

	// Sub-pixel disc still lights its centre pixel
	c.Disc(vmath.V2(5.2, 10.9), 0.1, white, 1, BlendReplace)
	if c.At(5, 10) != white {
		t.Error("Expected tiny disc to light containing pixel")
	}

	// Glow is brightest at the centre
	c.Clear(RGBBlack)
	c.Glow(vmath.V2(10, 10), 3, 5, white, 1, BlendAlpha)
	centre, edge := c.At(10, 10).R, c.At(12, 10).R
	if centre <= edge || edge == 0 {
		t.Errorf("Expected falloff from centre %d to edge %d", centre, edge)
	}
	if c.At(14, 10) != RGBBlack {
		t.Error("Expected nothing beyond glow radius")
	}
}
