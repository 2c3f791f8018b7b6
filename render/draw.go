package render

import (
	"math"

	"github.com/lixenwraith/brainwave/vmath"
)

// Line draws a one pixel wide segment between two pixel positions
func (c *Canvas) Line(a, b vmath.Vec2, col RGB, alpha float64, mode BlendMode) {
	if alpha <= 0 {
		return
	}
	vmath.Traverse(a, b, func(x, y int, _ float64) bool {
		c.Set(x, y, col, alpha, mode)
		return true
	})
}

// Disc fills pixels whose centres lie within radius of center
// A disc smaller than one pixel still lights the pixel containing its centre
func (c *Canvas) Disc(center vmath.Vec2, radius float64, col RGB, alpha float64, mode BlendMode) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	x0, x1 := int(math.Floor(center.X-radius)), int(math.Floor(center.X+radius))
	y0, y1 := int(math.Floor(center.Y-radius)), int(math.Floor(center.Y+radius))
	rSq := radius * radius

	hit := false
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= rSq {
				c.Set(x, y, col, alpha, mode)
				hit = true
			}
		}
	}
	if !hit {
		c.Set(int(math.Floor(center.X)), int(math.Floor(center.Y)), col, alpha, mode)
	}
}

// Glow fills a disc of radius with a radial gradient fading linearly to transparent at falloff
func (c *Canvas) Glow(center vmath.Vec2, radius, falloff float64, col RGB, alpha float64, mode BlendMode) {
	if alpha <= 0 || radius <= 0 || falloff <= 0 {
		return
	}
	x0, x1 := int(math.Floor(center.X-radius)), int(math.Floor(center.X+radius))
	y0, y1 := int(math.Floor(center.Y-radius)), int(math.Floor(center.Y+radius))

	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			d := math.Sqrt(dx*dx + dy*dy)
			if d > radius {
				continue
			}
			c.Set(x, y, col, alpha*(1-min(d/falloff, 1)), mode)
		}
	}
}
