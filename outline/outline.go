// Package outline provides the closed silhouette particles assemble into
package outline

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/brainwave/vmath"
)

var (
	// ErrTooFewPoints is returned for outlines with fewer than three vertices
	ErrTooFewPoints = errors.New("outline needs at least 3 points")

	// ErrDegenerate is returned when the bounding box is not strictly positive on both axes
	ErrDegenerate = errors.New("outline encloses no area")
)

// Outline is an immutable closed polygon in local space, the last point connects back to the first
type Outline struct {
	points []vmath.Vec2
	bounds vmath.Rect
}

// New copies points into an Outline, validation is separate so a bad shape can be reported at mount
func New(points []vmath.Vec2) *Outline {
	pts := make([]vmath.Vec2, len(points))
	copy(pts, points)
	return &Outline{
		points: pts,
		bounds: vmath.Bounds(pts),
	}
}

// Validate checks the vertex count and that the bounding box has positive area
func (o *Outline) Validate() error {
	if len(o.points) < 3 {
		return errors.Wrapf(ErrTooFewPoints, "got %d", len(o.points))
	}
	if !(o.bounds.Width() > 0) || !(o.bounds.Height() > 0) {
		return errors.Wrapf(ErrDegenerate, "bounds %.2fx%.2f", o.bounds.Width(), o.bounds.Height())
	}
	return nil
}

// Points returns a copy of the vertex sequence
func (o *Outline) Points() []vmath.Vec2 {
	pts := make([]vmath.Vec2, len(o.points))
	copy(pts, o.points)
	return pts
}

// Len returns the vertex count
func (o *Outline) Len() int {
	return len(o.points)
}

// Bounds returns the bounding box
func (o *Outline) Bounds() vmath.Rect {
	return o.bounds
}

// Contains reports whether p lies inside the outline using ray-casting parity
func (o *Outline) Contains(p vmath.Vec2) bool {
	if !o.bounds.Contains(p) {
		return false
	}
	return vmath.PointInPolygon(p, o.points)
}

// InteriorPoint returns a deterministic point inside the outline
// The vertex centroid when it is inside, otherwise the midpoint of the first inside span
// of the scanline through the centroid, falling back to the bounds centre
func (o *Outline) InteriorPoint() vmath.Vec2 {
	c := vmath.Centroid(o.points)
	if o.Contains(c) {
		return c
	}
	xs := vmath.ScanlineCrossings(c.Y, o.points)
	for i := 0; i+1 < len(xs); i += 2 {
		mid := vmath.V2((xs[i]+xs[i+1])/2, c.Y)
		if o.Contains(mid) {
			return mid
		}
	}
	return o.bounds.Center()
}

var brain = sync.OnceValue(func() *Outline {
	return New(brainPoints)
})

// Brain returns the shared brain silhouette, the same instance on every call
func Brain() *Outline {
	return brain()
}
