package render

import (
	"github.com/lixenwraith/brainwave/vmath"
)

// Projection maps silhouette local space onto canvas pixels
type Projection struct {
	Scale  float64    // Pixels per local unit
	Center vmath.Vec2 // Pixel position of the local origin
}

// NewProjection fits extent local units into the shorter canvas side
// The centre sits verticalOffset of the height below the canvas middle
func NewProjection(width, height int, extent, verticalOffset float64) Projection {
	w, h := float64(width), float64(height)
	scale := 0.0
	if extent > 0 {
		scale = min(w, h) / extent
	}
	return Projection{
		Scale:  scale,
		Center: vmath.V2(w/2, h/2+h*verticalOffset),
	}
}

// ToPixel maps a local point to canvas pixels
func (p Projection) ToPixel(local vmath.Vec2) vmath.Vec2 {
	return p.Center.Add(local.Scale(p.Scale))
}

// ToLocal maps a canvas pixel to local space, a zero scale maps everything to the origin
func (p Projection) ToLocal(px vmath.Vec2) vmath.Vec2 {
	if p.Scale == 0 {
		return vmath.Vec2{}
	}
	return px.Sub(p.Center).Scale(1 / p.Scale)
}

// Length converts a local distance to pixels
func (p Projection) Length(local float64) float64 {
	return local * p.Scale
}
