package engine

import (
	"github.com/lixenwraith/brainwave/outline"
	"github.com/lixenwraith/brainwave/parameter"
	"github.com/lixenwraith/brainwave/physics"
	"github.com/lixenwraith/brainwave/vmath"
)

// Pointer is the last observed pointer position in local space
// Present is false until the first pointer event, or when the host reports none
type Pointer struct {
	Pos     vmath.Vec2
	Present bool
}

// Particle is a single animated point of the silhouette
type Particle struct {
	Pos    vmath.Vec2 // Current position
	Origin vmath.Vec2 // Interior point sampled at spawn
	Target vmath.Vec2 // Seek destination, defaults to Origin
	Vel    vmath.Vec2 // Constant drift used while disassembling
	Life   float64    // 1 at spawn, non-increasing, dead at <= 0
}

// NewParticle places a particle whose origin and target are home, starting at a random fly-in position
func NewParticle(home vmath.Vec2, rng *vmath.FastRand) Particle {
	return Particle{
		Pos: vmath.V2(
			rng.Range(-parameter.SpawnFlyInExtent, parameter.SpawnFlyInExtent),
			rng.Range(-parameter.SpawnFlyInExtent, parameter.SpawnFlyInExtent),
		),
		Origin: home,
		Target: home,
		Vel: vmath.V2(
			rng.Range(-parameter.DriftSpeed, parameter.DriftSpeed),
			rng.Range(-parameter.DriftSpeed, parameter.DriftSpeed),
		),
		Life: 1,
	}
}

// SpawnInside rejection-samples the outline bounds for an interior home point
// Returns false once maxAttempts draws all miss
func SpawnInside(o *outline.Outline, rng *vmath.FastRand, maxAttempts int) (Particle, bool) {
	bounds := o.Bounds()
	for i := 0; i < maxAttempts; i++ {
		p := bounds.RandomPoint(rng)
		if o.Contains(p) {
			return NewParticle(p, rng), true
		}
	}
	return Particle{}, false
}

// Advance applies pointer repulsion when in range, otherwise eases toward target
func (p *Particle) Advance(pointer Pointer, prof physics.Profile) {
	if pointer.Present {
		if pos, hit := physics.Repel(p.Pos, pointer.Pos, prof.RepulsionRadius, prof.RepulsionForce); hit {
			p.Pos = pos
			return
		}
	}
	p.Pos = physics.Seek(p.Pos, p.Target, prof.SeekRate)
}

// DriftFree moves by the constant drift velocity and loses life
func (p *Particle) DriftFree(decay float64) {
	p.Pos = physics.Drift(p.Pos, p.Vel)
	p.Life = physics.Decay(p.Life, decay)
}

// Dead reports whether the particle has faded out
func (p *Particle) Dead() bool {
	return p.Life <= 0
}
