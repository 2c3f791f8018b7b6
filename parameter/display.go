package parameter

// Projection
const (
	// ReferenceExtent is the local-space span mapped onto the shorter canvas side
	ReferenceExtent = 400.0

	// VerticalOffset shifts the silhouette centre down by this fraction of canvas height
	VerticalOffset = 0.1

	// DensityX and DensityY are canvas pixels per terminal cell (half-block rendering)
	DensityX = 1
	DensityY = 2
)

// Primitive Sizes (local units, scaled by projection)
const (
	// ParticleRadius is the drawn particle radius
	ParticleRadius = 1.0

	// SynapseCoreRadius is the filled radius of a synapse pulse
	SynapseCoreRadius = 1.8

	// SynapseGlowRadius is the outer radius of the synapse glow gradient
	SynapseGlowRadius = 5.0

	// MinPixelRadius keeps primitives visible on small terminals
	MinPixelRadius = 0.5

	// MinGlowPixelRadius keeps synapse glows at least this wide
	MinGlowPixelRadius = 1.5
)

// HUD
const (
	// HUDSpringFrequency and HUDSpringDamping drive the HUD fade spring
	HUDSpringFrequency = 6.0
	HUDSpringDamping   = 1.0

	// HUDMinVisible is the opacity below which the HUD is skipped entirely
	HUDMinVisible = 0.02
)
