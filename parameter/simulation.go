package parameter

// Phase Durations (ticks at FramesPerSecond)
const (
	// DisassembledTicks is the idle pause with an empty field before particles fly in
	DisassembledTicks = 120

	// AssemblingTicks is how long particles converge on the silhouette
	AssemblingTicks = 240

	// AssembledTicks is how long the assembled brain holds and fires synapses
	AssembledTicks = 400
)

// Particle Population
const (
	// ParticleCount is the number of particles seeded on each assembly
	ParticleCount = 800

	// MaxParticleCount caps configured populations, link computation is quadratic in the worst case
	MaxParticleCount = 5000

	// SpawnMaxAttempts bounds rejection sampling per particle before the seeding pass falls back
	SpawnMaxAttempts = 1000

	// SpawnFlyInExtent is the half-width of the square particles fly in from (local units)
	SpawnFlyInExtent = 200.0

	// DriftSpeed is the half-range of the random drift velocity per axis (local units per tick)
	DriftSpeed = 0.1
)

// Links & Synapses
const (
	// ConnectionDistance is the maximum local distance for two particles to be linked
	ConnectionDistance = 35.0

	// SynapseChance is the per-link per-tick probability of firing a synapse while assembled
	SynapseChance = 0.001

	// MaxSynapses caps concurrently travelling synapses
	MaxSynapses = 100

	// SynapseMinSpeed and SynapseMaxSpeed bound the progress fraction added per tick
	SynapseMinSpeed = 0.01
	SynapseMaxSpeed = 0.035
)
