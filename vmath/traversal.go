package vmath

import "math"

// --- 2D Traversal (DDA) ---

// Traverse visits every pixel cell intersected by the segment from a to b (pixel space)
// callback receives the cell and the segment parameter t in [0,1] at the cell entry, returning false stops
// Terminates by checking target bounds before stepping
func Traverse(a, b Vec2, callback func(x, y int, t float64) bool) {
	ix, iy := int(math.Floor(a.X)), int(math.Floor(a.Y))
	targetX, targetY := int(math.Floor(b.X)), int(math.Floor(b.Y))

	if ix == targetX && iy == targetY {
		callback(ix, iy, 0)
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Segment parameter at the next vertical/horizontal cell boundary
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	tDeltaX, tDeltaY := math.Inf(1), math.Inf(1)
	if dx != 0 {
		tDeltaX = 1 / dx
		fracX := a.X - math.Floor(a.X)
		if stepX > 0 {
			tMaxX = (1 - fracX) * tDeltaX
		} else {
			tMaxX = fracX * tDeltaX
		}
	}
	if dy != 0 {
		tDeltaY = 1 / dy
		fracY := a.Y - math.Floor(a.Y)
		if stepY > 0 {
			tMaxY = (1 - fracY) * tDeltaY
		} else {
			tMaxY = fracY * tDeltaY
		}
	}

	if !callback(ix, iy, 0) {
		return
	}

	for ix != targetX || iy != targetY {
		var t float64
		if tMaxX < tMaxY {
			if ix != targetX {
				t = tMaxX
				ix += stepX
				tMaxX += tDeltaX
			} else {
				t = tMaxY
				iy += stepY
				tMaxY += tDeltaY
			}
		} else {
			if iy != targetY {
				t = tMaxY
				iy += stepY
				tMaxY += tDeltaY
			} else {
				t = tMaxX
				ix += stepX
				tMaxX += tDeltaX
			}
		}

		if !callback(ix, iy, Clamp(t, 0, 1)) {
			return
		}
	}
}
