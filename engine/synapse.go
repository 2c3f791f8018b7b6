package engine

import "github.com/lixenwraith/brainwave/vmath"

// Synapse is a pulse travelling between two particles of the current collection
// From and To index the owning State's particle slice, they never outlive it
type Synapse struct {
	From, To int
	Progress float64 // 0 at spawn, removed once >= 1
	Speed    float64 // Progress added per tick
}

// Advance moves the pulse along its edge
func (s *Synapse) Advance() {
	s.Progress += s.Speed
}

// Done reports whether the pulse reached the far particle
func (s *Synapse) Done() bool {
	return s.Progress >= 1
}

// Position interpolates between the current positions of both particles
func (s *Synapse) Position(particles []Particle) vmath.Vec2 {
	return vmath.LerpV(particles[s.From].Pos, particles[s.To].Pos, s.Progress)
}

// pairKey packs an unordered particle pair for in-flight lookup
type pairKey uint64

func makePairKey(i, j int) pairKey {
	if i > j {
		i, j = j, i
	}
	return pairKey(uint64(uint32(i))<<32 | uint64(uint32(j)))
}
