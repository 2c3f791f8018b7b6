package parameter

import "time"

// Audio Cues
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain for all cues
	AudioDefaultVolume = 0.6

	// PulseCueCooldown rate-limits synapse pings
	PulseCueCooldown = 250 * time.Millisecond

	// PulseCueDuration, AssembleCueDuration, ScatterCueDuration are cue lengths
	PulseCueDuration    = 60 * time.Millisecond
	AssembleCueDuration = 900 * time.Millisecond
	ScatterCueDuration  = 1200 * time.Millisecond
)
