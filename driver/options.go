package driver

import (
	"time"

	"github.com/lixenwraith/brainwave/outline"
)

// Cues receives simulation events worth a sound
type Cues interface {
	Assemble()
	Scatter()
	Pulse(n int)
}

type nopCues struct{}

func (nopCues) Assemble()   {}
func (nopCues) Scatter()    {}
func (nopCues) Pulse(n int) {}

type options struct {
	outline  *outline.Outline
	cues     Cues
	interval time.Duration
}

// Option customizes Mount
type Option func(*options)

// WithOutline replaces the brain silhouette
func WithOutline(o *outline.Outline) Option {
	return func(opts *options) { opts.outline = o }
}

// WithCues routes phase and synapse events to c, nil disables
func WithCues(c Cues) Option {
	return func(opts *options) {
		if c == nil {
			c = nopCues{}
		}
		opts.cues = c
	}
}

// WithFrameInterval overrides the frame period derived from the configured fps
func WithFrameInterval(d time.Duration) Option {
	return func(opts *options) { opts.interval = d }
}
