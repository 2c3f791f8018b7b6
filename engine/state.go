package engine

import (
	"log"

	"github.com/lixenwraith/brainwave/config"
	"github.com/lixenwraith/brainwave/outline"
	"github.com/lixenwraith/brainwave/parameter"
	"github.com/lixenwraith/brainwave/physics"
	"github.com/lixenwraith/brainwave/vmath"
)

// Input is the per-tick external state read by the simulation
type Input struct {
	Pointer Pointer
}

// Report summarises what one tick did, consumed by the driver for logging and audio cues
type Report struct {
	Phase    Phase // Phase after the tick
	Entered  bool  // Phase changed during this tick
	Spawned  int   // Synapses created
	Expired  int   // Synapses that completed
	Fallback bool  // Seeding pass exhausted rejection sampling
}

// phaseNode holds the lifecycle hooks of one phase
type phaseNode struct {
	onEnter  func(s *State)
	onUpdate func(s *State, in Input, r *Report)
	exit     func(s *State) bool
}

// State owns the particle collection and drives the assembly cycle
// Not safe for concurrent use, the driver ticks and renders it from a single goroutine
type State struct {
	sim     config.Simulation
	prof    physics.Profile
	outline *outline.Outline
	rng     *vmath.FastRand

	phase  Phase
	ticks  int    // Ticks spent in current phase, reset on every transition
	frame  uint64 // Ticks since construction
	cycles int    // Completed assembly cycles

	particles []Particle
	synapses  []Synapse
	links     []Link
	inFlight  map[pairKey]struct{}
	grid      *linkGrid

	fallbacks int
	nodes     [4]phaseNode
}

// NewState creates a simulation in the disassembled phase with no particles
func NewState(sim config.Simulation, prof physics.Profile, o *outline.Outline, rng *vmath.FastRand) *State {
	s := &State{
		sim:      sim,
		prof:     prof,
		outline:  o,
		rng:      rng,
		phase:    PhaseDisassembled,
		inFlight: make(map[pairKey]struct{}),
		grid:     newLinkGrid(sim.ConnectionDistance),
	}

	s.nodes[PhaseDisassembled] = phaseNode{
		onEnter:  (*State).enterDisassembled,
		onUpdate: func(*State, Input, *Report) {},
		exit:     func(s *State) bool { return s.ticks >= s.sim.DisassembledTicks },
	}
	s.nodes[PhaseAssembling] = phaseNode{
		onEnter:  (*State).enterAssembling,
		onUpdate: (*State).updateAssembling,
		exit:     func(s *State) bool { return s.ticks >= s.sim.AssemblingTicks },
	}
	s.nodes[PhaseAssembled] = phaseNode{
		onEnter:  func(*State) {},
		onUpdate: (*State).updateAssembled,
		exit:     func(s *State) bool { return s.ticks >= s.sim.AssembledTicks },
	}
	s.nodes[PhaseDisassembling] = phaseNode{
		onEnter:  func(*State) {},
		onUpdate: (*State).updateDisassembling,
		exit:     (*State).allDead,
	}

	return s
}

// Tick advances the simulation by one frame
// Order: phase update, exit guard and transition, synapse advance/expiry, link recomputation
func (s *State) Tick(in Input) Report {
	s.frame++
	s.ticks++

	var r Report
	node := &s.nodes[s.phase]
	node.onUpdate(s, in, &r)
	if node.exit(s) {
		r.Fallback = s.transition(s.phase.Next())
		r.Entered = true
	}

	r.Expired = s.advanceSynapses()
	s.links = s.grid.collect(s.links, s.particles)

	r.Phase = s.phase
	return r
}

// transition enters next, returning true if the entry seeding fell back
func (s *State) transition(next Phase) bool {
	fallbacks := s.fallbacks
	log.Printf("phase %s -> %s after %d ticks (frame %d)", s.phase, next, s.ticks, s.frame)
	s.phase = next
	s.ticks = 0
	s.nodes[next].onEnter(s)
	return s.fallbacks != fallbacks
}

func (s *State) enterDisassembled() {
	s.particles = s.particles[:0]
	s.clearSynapses()
	s.links = s.links[:0]
	s.cycles++
}

func (s *State) enterAssembling() {
	s.clearSynapses()
	s.seed()
}

// seed fills the particle collection with interior homes
// The first exhausted sample fails the whole pass, every particle then homes on the deterministic interior point
func (s *State) seed() {
	n := s.sim.Particles
	if cap(s.particles) < n {
		s.particles = make([]Particle, 0, n)
	}
	s.particles = s.particles[:0]

	for len(s.particles) < n {
		p, ok := SpawnInside(s.outline, s.rng, s.sim.SpawnMaxAttempts)
		if !ok {
			home := s.outline.InteriorPoint()
			log.Printf("seeding exhausted after %d particles, falling back to %v", len(s.particles), home)
			s.particles = s.particles[:0]
			for len(s.particles) < n {
				s.particles = append(s.particles, NewParticle(home, s.rng))
			}
			s.fallbacks++
			return
		}
		s.particles = append(s.particles, p)
	}
}

func (s *State) updateAssembling(in Input, _ *Report) {
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos = physics.Seek(p.Pos, p.Target, s.prof.AssembleRate)
		p.Advance(in.Pointer, s.prof)
	}
}

func (s *State) updateAssembled(in Input, r *Report) {
	for i := range s.particles {
		s.particles[i].Advance(in.Pointer, s.prof)
	}
	r.Spawned = s.spawnSynapses()
}

func (s *State) updateDisassembling(_ Input, _ *Report) {
	for i := range s.particles {
		s.particles[i].DriftFree(s.prof.LifeDecay)
	}
}

func (s *State) allDead() bool {
	for i := range s.particles {
		if !s.particles[i].Dead() {
			return false
		}
	}
	return true
}

// spawnSynapses rolls each current link once, skipping pairs with a pulse already in flight
func (s *State) spawnSynapses() int {
	spawned := 0
	for _, l := range s.links {
		if len(s.synapses) >= s.sim.MaxSynapses {
			break
		}
		if !s.rng.Chance(s.sim.SynapseChance) {
			continue
		}
		key := makePairKey(l.I, l.J)
		if _, busy := s.inFlight[key]; busy {
			continue
		}
		from, to := l.I, l.J
		if s.rng.Intn(2) == 1 {
			from, to = to, from
		}
		s.inFlight[key] = struct{}{}
		s.synapses = append(s.synapses, Synapse{
			From:  from,
			To:    to,
			Speed: s.rng.Range(parameter.SynapseMinSpeed, parameter.SynapseMaxSpeed),
		})
		spawned++
	}
	return spawned
}

// advanceSynapses moves every pulse and drops those that completed this tick
func (s *State) advanceSynapses() int {
	expired := 0
	kept := s.synapses[:0]
	for _, syn := range s.synapses {
		syn.Advance()
		if syn.Done() {
			delete(s.inFlight, makePairKey(syn.From, syn.To))
			expired++
			continue
		}
		kept = append(kept, syn)
	}
	s.synapses = kept
	return expired
}

func (s *State) clearSynapses() {
	s.synapses = s.synapses[:0]
	clear(s.inFlight)
}

// Phase returns the current phase
func (s *State) Phase() Phase { return s.phase }

// TicksInPhase returns ticks spent in the current phase
func (s *State) TicksInPhase() int { return s.ticks }

// Frame returns ticks since construction
func (s *State) Frame() uint64 { return s.frame }

// Cycles returns the number of completed assembly cycles
func (s *State) Cycles() int { return s.cycles }

// Fallbacks returns how many seeding passes fell back to the interior point
func (s *State) Fallbacks() int { return s.fallbacks }

// Outline returns the silhouette particles assemble into
func (s *State) Outline() *outline.Outline { return s.outline }

// Particles returns the live collection, valid until the next Tick and not to be modified
func (s *State) Particles() []Particle { return s.particles }

// Synapses returns the in-flight pulses, valid until the next Tick and not to be modified
func (s *State) Synapses() []Synapse { return s.synapses }

// Links returns the connected pairs computed at the end of the last Tick
func (s *State) Links() []Link { return s.links }
