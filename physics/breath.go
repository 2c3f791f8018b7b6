package physics

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/brainwave/vmath"
)

// Breather produces the bounded breathing displacement applied when drawing particles
// The displacement is recomputed from the particle origin each frame and never accumulates into position
type Breather struct {
	noise      opensimplex.Noise
	amplitude  float64
	periodTick int
	noiseScale float64
}

// NewBreather creates a breather, zero amplitude disables the effect
func NewBreather(seed int64, amplitude float64, periodTicks int, noiseScale float64) *Breather {
	return &Breather{
		noise:      opensimplex.New(seed),
		amplitude:  amplitude,
		periodTick: periodTicks,
		noiseScale: noiseScale,
	}
}

// Offset returns the displacement for a particle whose origin is origin at the given tick
// Radial from the local centre, magnitude never exceeds the amplitude
func (b *Breather) Offset(origin vmath.Vec2, tick uint64) vmath.Vec2 {
	if b == nil || b.amplitude == 0 {
		return vmath.Vec2{}
	}
	wave := vmath.Oscillate(tick, b.periodTick)
	n := b.noise.Eval2(origin.X*b.noiseScale, origin.Y*b.noiseScale)
	// n in [-1,1] nudges each region slightly out of phase
	gain := 0.75 + 0.25*vmath.Clamp(n, -1, 1)
	mag := b.amplitude * wave * gain

	dir := origin.Normalize()
	if dir == (vmath.Vec2{}) {
		return vmath.Vec2{}
	}
	return dir.Scale(mag)
}

// Amplitude returns the configured peak displacement
func (b *Breather) Amplitude() float64 {
	if b == nil {
		return 0
	}
	return math.Abs(b.amplitude)
}
