package physics

import (
	"github.com/lixenwraith/brainwave/vmath"
)

// Repel pushes pos away from the pointer when closer than radius
// Returns the displaced position and true if the pointer was in range
// The push is an impulse on position scaled by (radius-dist)/radius, not an integrated velocity
func Repel(pos, pointer vmath.Vec2, radius, force float64) (vmath.Vec2, bool) {
	if radius <= 0 {
		return pos, false
	}
	away := pos.Sub(pointer)
	distSq := away.LenSq()
	if distSq >= radius*radius {
		return pos, false
	}

	dist := away.Len()
	dir := vmath.V2(1, 0)
	if dist > 0 {
		dir = away.Scale(1 / dist)
	}
	strength := (radius - dist) / radius
	return pos.Add(dir.Scale(strength * force)), true
}

// Seek eases pos toward target by rate of the remaining gap
// Converges without overshoot for rate in (0,1], a particle already on target is unchanged
func Seek(pos, target vmath.Vec2, rate float64) vmath.Vec2 {
	return pos.Add(target.Sub(pos).Scale(rate))
}

// Drift advances pos by a constant velocity
func Drift(pos, vel vmath.Vec2) vmath.Vec2 {
	return pos.Add(vel)
}

// Decay lowers life by step, clamped at zero so life stays in [0,1]
func Decay(life, step float64) float64 {
	life -= step
	// Snap float residue from repeated subtraction so life reaches exactly zero on schedule
	if life < 1e-9 {
		return 0
	}
	return life
}
