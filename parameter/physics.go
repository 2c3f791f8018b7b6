package parameter

// Particle Dynamics (local units, per tick)
const (
	// RepulsionRadius is the pointer influence radius
	RepulsionRadius = 40.0

	// RepulsionForce is the displacement applied at zero distance from the pointer
	RepulsionForce = 2.0

	// SeekRate is the fraction of the gap to target closed per tick
	SeekRate = 0.05

	// AssembleRate is the extra pull toward target applied while assembling
	AssembleRate = 0.07

	// LifeDecay is the life lost per tick while disassembling
	LifeDecay = 0.005
)

// Breathing
const (
	// BreathAmplitude is the peak radial displacement of the breathing effect (local units)
	BreathAmplitude = 2.5

	// BreathPeriodTicks is the length of one full breath (~12.5s at 60 FPS, matches a 2s/rad sine)
	BreathPeriodTicks = 754

	// BreathNoiseScale maps origin coordinates into noise space
	BreathNoiseScale = 0.02
)
