package physics

import "github.com/lixenwraith/brainwave/parameter"

// Profile defines particle dynamics parameters, all in local units per tick
type Profile struct {
	RepulsionRadius float64 // Pointer influence radius
	RepulsionForce  float64 // Displacement at zero distance from pointer
	SeekRate        float64 // Fraction of the gap to target closed per tick
	AssembleRate    float64 // Extra pull toward target while assembling
	LifeDecay       float64 // Life lost per tick while drifting
}

// DefaultProfile returns the tuned parameter set
func DefaultProfile() Profile {
	return Profile{
		RepulsionRadius: parameter.RepulsionRadius,
		RepulsionForce:  parameter.RepulsionForce,
		SeekRate:        parameter.SeekRate,
		AssembleRate:    parameter.AssembleRate,
		LifeDecay:       parameter.LifeDecay,
	}
}
