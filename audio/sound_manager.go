package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/brainwave/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// Cue pitches
const (
	assembleRoot = 220.0
	scatterFrom  = 520.0
	scatterTo    = 90.0
	pulseBase    = 880.0
)

// SoundManager plays the phase and synapse cues
// Every method is a no-op until Initialize succeeds, so the visualization runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPulse   time.Time
	pulses      uint32
	now         func() time.Time
}

// NewSoundManager creates a new sound manager at volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
		now:    time.Now,
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds, the speaker itself stays open for a later Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume changes the gain of cues started afterwards
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = clampVolume(v)
	sm.mu.Unlock()
}

// Volume returns the current gain
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Assemble plays the rising chord when particles start gathering
func (sm *SoundManager) Assemble() {
	sm.play(NewChordGenerator(sampleRate, assembleRoot, parameter.AssembleCueDuration))
}

// Scatter plays the falling sweep when the silhouette dissolves
func (sm *SoundManager) Scatter() {
	sm.play(NewSweepGenerator(sampleRate, scatterFrom, scatterTo, parameter.ScatterCueDuration, uint32(sm.now().UnixNano())))
}

// Pulse plays one ping for a batch of n new synapses, rate-limited by PulseCueCooldown
func (sm *SoundManager) Pulse(n int) {
	if n <= 0 {
		return
	}
	sm.mu.Lock()
	if !sm.initialized || !sm.pulseAllowed(sm.now()) {
		sm.mu.Unlock()
		return
	}
	// Walk a pentatonic ladder so consecutive pings differ
	step := [5]float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}[sm.pulses%5]
	sm.pulses++
	sm.mu.Unlock()

	sm.play(NewPingGenerator(sampleRate, pulseBase*step, parameter.PulseCueDuration))
}

// pulseAllowed records now as the last ping when the cooldown elapsed, caller holds mu
func (sm *SoundManager) pulseAllowed(now time.Time) bool {
	if !sm.lastPulse.IsZero() && now.Sub(sm.lastPulse) < parameter.PulseCueCooldown {
		return false
	}
	sm.lastPulse = now
	return true
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	gain := &effects.Gain{Streamer: s, Gain: sm.volume - 1}
	speaker.Lock()
	sm.mixer.Add(gain)
	speaker.Unlock()
}
