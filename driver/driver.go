// Package driver mounts the simulation on a terminal screen and runs the frame loop
package driver

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/brainwave/config"
	"github.com/lixenwraith/brainwave/core"
	"github.com/lixenwraith/brainwave/engine"
	"github.com/lixenwraith/brainwave/outline"
	"github.com/lixenwraith/brainwave/parameter"
	"github.com/lixenwraith/brainwave/physics"
	"github.com/lixenwraith/brainwave/render"
	"github.com/lixenwraith/brainwave/vmath"
)

var (
	// ErrNoSurface is returned when there is no screen to mount on
	ErrNoSurface = errors.New("no rendering surface")
	// ErrGeometry is returned when the silhouette cannot be sampled
	ErrGeometry = errors.New("invalid geometry")
)

// pointerCell is the last mouse position in terminal cells
type pointerCell struct {
	X, Y    int
	Present bool
}

type size struct {
	Cols, Rows int
}

// Driver owns the screen binding, the simulation state and both goroutines
type Driver struct {
	screen tcell.Screen
	cfg    config.Config
	opts   options

	// Frame goroutine only
	state    *engine.State
	scene    *render.Scene
	canvas   *render.Canvas
	hud      *render.HUD
	fps      float64
	lastTick time.Time

	// Written by the observer, read once per frame
	pointer Latest[pointerCell]
	size    Latest[size]
	theme   Latest[render.Theme]
	hudOn   Latest[bool]
	paused  Latest[bool]
	quitReq Latest[bool]

	frames atomic.Uint64
	stats  Latest[Summary]

	quit     chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Summary is the end-of-run counters
type Summary struct {
	Frames    uint64
	Cycles    int
	Fallbacks int
	Phase     engine.Phase
}

// Mount validates the silhouette, binds input on screen and starts rendering
// The screen must already be initialized, Mount never calls Init or Fini
func Mount(screen tcell.Screen, cfg config.Config, opts ...Option) (*Driver, error) {
	if screen == nil {
		return nil, ErrNoSurface
	}

	o := options{
		outline: outline.Brain(),
		cues:    nopCues{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.outline == nil {
		return nil, errors.Wrap(ErrGeometry, "nil outline")
	}
	if err := o.outline.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeometry, err)
	}
	if o.interval <= 0 {
		o.interval = time.Second / time.Duration(max(cfg.Display.FPS, 1))
	}

	theme, err := render.ParseTheme(cfg.Display.Theme)
	if err != nil {
		return nil, errors.Wrap(err, "mount")
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)
	breather := physics.NewBreather(int64(seed), cfg.Physics.BreathAmplitude, cfg.Physics.BreathPeriod, parameter.BreathNoiseScale)

	d := &Driver{
		screen: screen,
		cfg:    cfg,
		opts:   o,
		state:  engine.NewState(cfg.Simulation, cfg.Physics.Profile(), o.outline, rng),
		scene:  render.NewScene(cfg.Display.Extent, cfg.Display.VerticalOffset, breather),
		canvas: render.NewCanvas(0, 0),
		hud:    render.NewHUD(cfg.Display.FPS, cfg.Display.HUD),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	cols, rows := screen.Size()
	d.size.Store(size{cols, rows})
	d.theme.Store(theme)
	d.hudOn.Store(cfg.Display.HUD)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	log.Printf("mounted %dx%d cells, %d particles, seed %d, frame %s", cols, rows, cfg.Simulation.Particles, seed, o.interval)

	d.wg.Add(2)
	core.Go(func() {
		defer d.wg.Done()
		d.observe()
	})
	core.Go(func() {
		defer d.wg.Done()
		d.loop()
	})

	return d, nil
}

// Teardown stops the frame loop and the event observer and releases mouse capture
// Returns after both goroutines exited, no tick runs afterwards, safe to call repeatedly
func (d *Driver) Teardown() {
	d.stopOnce.Do(func() {
		close(d.quit)
		// Wake the observer blocked in PollEvent
		_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
		d.wg.Wait()
		d.screen.DisableMouse()
		d.screen.DisableFocus()
		s := d.stats.Load()
		log.Printf("teardown after %d frames, %d cycles", s.Frames, s.Cycles)
	})
}

// Done is closed when the frame loop ends, by Teardown or a quit key
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Frames returns the number of simulation ticks executed
func (d *Driver) Frames() uint64 {
	return d.frames.Load()
}

// Summary returns counters as of the last rendered frame
func (d *Driver) Summary() Summary {
	return d.stats.Load()
}

func (d *Driver) loop() {
	defer close(d.done)

	ticker := time.NewTicker(d.opts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.quit:
			return
		case now := <-ticker.C:
			if d.quitReq.Load() {
				return
			}
			d.frame(now)
		}
	}
}

// frame runs one tick and one render
func (d *Driver) frame(now time.Time) {
	sz := d.size.Load()
	d.canvas.Resize(sz.Cols, sz.Rows)
	proj := d.scene.Projection(d.canvas)
	theme := d.theme.Load()
	pal := render.PaletteFor(theme)
	paused := d.paused.Load()

	if !d.lastTick.IsZero() {
		if dt := now.Sub(d.lastTick).Seconds(); dt > 0 {
			// Exponential moving average over roughly half a second
			const alpha = 0.05
			if d.fps == 0 {
				d.fps = 1 / dt
			} else {
				d.fps += alpha * (1/dt - d.fps)
			}
		}
	}
	d.lastTick = now

	if !paused {
		in := engine.Input{Pointer: d.localPointer(proj)}
		r := d.state.Tick(in)
		d.frames.Add(1)
		d.cue(r)
	}

	d.scene.Draw(d.canvas, d.state, pal, d.state.Frame())

	d.hud.SetVisible(d.hudOn.Load())
	d.hud.Step()
	d.hud.Draw(d.canvas, pal, render.Stats{
		Phase:     d.state.Phase().String(),
		Ticks:     d.state.TicksInPhase(),
		Cycles:    d.state.Cycles(),
		Particles: len(d.state.Particles()),
		Links:     len(d.state.Links()),
		Synapses:  len(d.state.Synapses()),
		FPS:       d.fps,
		Theme:     theme,
		Paused:    paused,
	})

	d.canvas.Flush(d.screen)
	d.screen.Show()

	d.stats.Store(Summary{
		Frames:    d.frames.Load(),
		Cycles:    d.state.Cycles(),
		Fallbacks: d.state.Fallbacks(),
		Phase:     d.state.Phase(),
	})
}

// localPointer maps the last mouse cell to silhouette space, targeting the centre of the cell
func (d *Driver) localPointer(proj render.Projection) engine.Pointer {
	pc := d.pointer.Load()
	if !pc.Present {
		return engine.Pointer{}
	}
	px := vmath.V2(
		(float64(pc.X)+0.5)*parameter.DensityX,
		(float64(pc.Y)+0.5)*parameter.DensityY,
	)
	return engine.Pointer{Pos: proj.ToLocal(px), Present: true}
}

func (d *Driver) cue(r engine.Report) {
	if r.Entered {
		switch r.Phase {
		case engine.PhaseAssembling:
			d.opts.cues.Assemble()
		case engine.PhaseDisassembling:
			d.opts.cues.Scatter()
		}
	}
	if r.Spawned > 0 {
		d.opts.cues.Pulse(r.Spawned)
	}
}
