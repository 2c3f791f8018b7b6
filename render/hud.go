package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/brainwave/parameter"
)

// Stats is the status line content
type Stats struct {
	Phase     string
	Ticks     int // Ticks in current phase
	Cycles    int
	Particles int
	Links     int
	Synapses  int
	FPS       float64
	Theme     Theme
	Paused    bool
}

// Line formats the status line
func (s Stats) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s %d", s.Phase, s.Ticks)
	fmt.Fprintf(&b, " | cycle %s", humanize.Comma(int64(s.Cycles)))
	fmt.Fprintf(&b, " | %s particles", humanize.Comma(int64(s.Particles)))
	fmt.Fprintf(&b, " | %s links", humanize.Comma(int64(s.Links)))
	fmt.Fprintf(&b, " | %s synapses", humanize.Comma(int64(s.Synapses)))
	fmt.Fprintf(&b, " | %s fps", humanize.FtoaWithDigits(s.FPS, 1))
	fmt.Fprintf(&b, " | %s", s.Theme)
	if s.Paused {
		b.WriteString(" | paused")
	}
	b.WriteByte(' ')
	return b.String()
}

// HUD is the status line overlay, faded in and out by a critically damped spring
type HUD struct {
	spring   harmonica.Spring
	visible  bool
	opacity  float64
	velocity float64
}

// NewHUD creates a HUD stepping at fps, starting fully shown or hidden
func NewHUD(fps int, visible bool) *HUD {
	h := &HUD{
		spring:  harmonica.NewSpring(harmonica.FPS(max(fps, 1)), parameter.HUDSpringFrequency, parameter.HUDSpringDamping),
		visible: visible,
	}
	if visible {
		h.opacity = 1
	}
	return h
}

// SetVisible sets the fade target
func (h *HUD) SetVisible(v bool) { h.visible = v }

// Visible reports the fade target
func (h *HUD) Visible() bool { return h.visible }

// Opacity returns the current opacity in [0,1]
func (h *HUD) Opacity() float64 { return h.opacity }

// Step advances the fade by one frame
func (h *HUD) Step() {
	target := 0.0
	if h.visible {
		target = 1
	}
	h.opacity, h.velocity = h.spring.Update(h.opacity, h.velocity, target)
	if h.opacity < 0 {
		h.opacity, h.velocity = 0, 0
	} else if h.opacity > 1 {
		h.opacity, h.velocity = 1, 0
	}
}

// Draw places the status line on the bottom cell row
func (h *HUD) Draw(c *Canvas, pal Palette, stats Stats) {
	if h.opacity < parameter.HUDMinVisible || c.Rows() == 0 {
		return
	}
	c.Text(0, c.Rows()-1, stats.Line(), pal.HUD, h.opacity)
}
