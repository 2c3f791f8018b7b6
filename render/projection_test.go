package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/brainwave/vmath"
)

func TestProjection(t *testing.T) {
	p := NewProjection(800, 400, 400, 0.1)
	if p.Scale != 1 {
		t.Errorf("Expected scale 1 on the shorter side, got %v", p.Scale)
	}
	if p.Center != vmath.V2(400, 240) {
		t.Errorf("Expected centre (400,240), got %v", p.Center)
	}

	local := vmath.V2(-37.5, 120)
	back := p.ToLocal(p.ToPixel(local))
	if math.Abs(back.X-local.X) > 1e-9 || math.Abs(back.Y-local.Y) > 1e-9 {
		t.Errorf("Round trip drifted: %v -> %v", local, back)
	}
}

func TestProjection_Empty(t *testing.T) {
	p := NewProjection(0, 0, 400, 0.1)
	if got := p.ToLocal(vmath.V2(10, 10)); got != (vmath.Vec2{}) {
		t.Errorf("Expected origin for zero scale, got %v", got)
	}
}
