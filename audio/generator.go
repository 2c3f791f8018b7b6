package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// envelope is a linear attack then exponential release over the cue length
func envelope(pos, total int, attack float64) float64 {
	if total <= 0 {
		return 0
	}
	x := float64(pos) / float64(total)
	if x < attack {
		return x / attack
	}
	return math.Exp(-4 * (x - attack) / (1 - attack))
}

// ChordGenerator plays a rising major triad, one voice entering after another
type ChordGenerator struct {
	sr      beep.SampleRate
	root    float64
	pos     int
	samples int
}

// NewChordGenerator creates a chord on root Hz lasting d
func NewChordGenerator(sr beep.SampleRate, root float64, d time.Duration) *ChordGenerator {
	return &ChordGenerator{sr: sr, root: root, samples: sr.N(d)}
}

func (g *ChordGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	ratios := [3]float64{1, 1.25, 1.5}
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		x := float64(g.pos) / float64(g.samples)

		sample := 0.0
		for v, r := range ratios {
			// Voices enter at 0, 1/6 and 1/3 of the cue
			if x < float64(v)/6 {
				continue
			}
			sample += 0.12 * math.Sin(2*math.Pi*g.root*r*t)
		}
		sample *= envelope(g.pos, g.samples, 0.1)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChordGenerator) Err() error {
	return nil
}

// SweepGenerator is filtered noise over a falling tone, the scatter cue
type SweepGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	pos     int
	samples int
	phase   float64
	seed    uint32
	lp      float64
}

// NewSweepGenerator creates a sweep falling from Hz to Hz over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, seed uint32) *SweepGenerator {
	if seed == 0 {
		seed = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d), seed: seed}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		x := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*x
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// xorshift32 white noise through a one-pole low-pass
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.lp += 0.08 * (noise - g.lp)

		sample := (0.2*math.Sin(2*math.Pi*g.phase) + 0.35*g.lp) * envelope(g.pos, g.samples, 0.05)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// PingGenerator is a short decaying sine, one per synapse batch
type PingGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewPingGenerator creates a ping at freq Hz lasting d
func NewPingGenerator(sr beep.SampleRate, freq float64, d time.Duration) *PingGenerator {
	return &PingGenerator{sr: sr, freq: freq, samples: sr.N(d)}
}

func (g *PingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		sample := 0.2 * math.Sin(2*math.Pi*g.freq*t) * envelope(g.pos, g.samples, 0.02)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PingGenerator) Err() error {
	return nil
}
