package render

import (
	"github.com/lixenwraith/brainwave/engine"
	"github.com/lixenwraith/brainwave/parameter"
	"github.com/lixenwraith/brainwave/physics"
	"github.com/lixenwraith/brainwave/vmath"
)

// Scene composites one simulation frame onto a canvas
// Layer order: background, link lines, particles, synapse glows
type Scene struct {
	extent         float64
	verticalOffset float64
	breather       *physics.Breather

	// Per-frame pixel positions indexed like the particle slice
	screen []vmath.Vec2
}

// NewScene creates a scene, a nil breather draws particles at their simulated positions
func NewScene(extent, verticalOffset float64, breather *physics.Breather) *Scene {
	return &Scene{
		extent:         extent,
		verticalOffset: verticalOffset,
		breather:       breather,
	}
}

// Projection returns the local-to-pixel mapping for the canvas current size
func (s *Scene) Projection(c *Canvas) Projection {
	return NewProjection(c.Width(), c.Height(), s.extent, s.verticalOffset)
}

// Draw renders state into c, tick drives the breathing phase
func (s *Scene) Draw(c *Canvas, st *engine.State, pal Palette, tick uint64) {
	c.Clear(pal.Background)
	if c.Width() == 0 || c.Height() == 0 {
		return
	}
	proj := s.Projection(c)
	particles := st.Particles()
	breathing := st.Phase() == engine.PhaseAssembling || st.Phase() == engine.PhaseAssembled

	if cap(s.screen) < len(particles) {
		s.screen = make([]vmath.Vec2, len(particles))
	}
	s.screen = s.screen[:len(particles)]
	for i := range particles {
		pos := particles[i].Pos
		if breathing {
			pos = pos.Add(s.breather.Offset(particles[i].Origin, tick))
		}
		s.screen[i] = proj.ToPixel(pos)
	}

	for _, l := range st.Links() {
		alpha := pal.LineAlpha * particles[l.I].Life * particles[l.J].Life
		c.Line(s.screen[l.I], s.screen[l.J], pal.Line, alpha, BlendAlpha)
	}

	radius := max(proj.Length(parameter.ParticleRadius), parameter.MinPixelRadius)
	for i := range particles {
		c.Disc(s.screen[i], radius, pal.Particle, particles[i].Life, BlendAlpha)
	}

	core := max(proj.Length(parameter.SynapseCoreRadius), parameter.MinGlowPixelRadius)
	falloff := max(proj.Length(parameter.SynapseGlowRadius), core+1)
	for _, syn := range st.Synapses() {
		// Synapse endpoints share the breathing displacement of their particles
		at := vmath.LerpV(s.screen[syn.From], s.screen[syn.To], syn.Progress)
		c.Glow(at, core, falloff, pal.Glow, 1, pal.GlowMode)
	}
}
