// Package config loads runtime settings from defaults, an optional TOML file and command-line flags
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/brainwave/parameter"
	"github.com/lixenwraith/brainwave/physics"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Simulation Simulation `toml:"simulation"`
	Physics    Physics    `toml:"physics"`
	Display    Display    `toml:"display"`
	Audio      Audio      `toml:"audio"`
	Log        Log        `toml:"log"`
}

// Simulation controls the assembly cycle and particle population
type Simulation struct {
	Particles          int     `toml:"particles"`
	SpawnMaxAttempts   int     `toml:"spawn_max_attempts"`
	ConnectionDistance float64 `toml:"connection_distance"`
	SynapseChance      float64 `toml:"synapse_chance"`
	MaxSynapses        int     `toml:"max_synapses"`
	DisassembledTicks  int     `toml:"disassembled_ticks"`
	AssemblingTicks    int     `toml:"assembling_ticks"`
	AssembledTicks     int     `toml:"assembled_ticks"`
	Seed               uint64  `toml:"seed"` // 0 = time based
}

// Physics controls particle dynamics
type Physics struct {
	RepulsionRadius float64 `toml:"repulsion_radius"`
	RepulsionForce  float64 `toml:"repulsion_force"`
	SeekRate        float64 `toml:"seek_rate"`
	AssembleRate    float64 `toml:"assemble_rate"`
	LifeDecay       float64 `toml:"life_decay"`
	BreathAmplitude float64 `toml:"breath_amplitude"`
	BreathPeriod    int     `toml:"breath_period_ticks"`
}

// Display controls the surface mapping and overlays
type Display struct {
	Theme          string  `toml:"theme"` // "dark" or "light"
	FPS            int     `toml:"fps"`
	Extent         float64 `toml:"extent"`
	VerticalOffset float64 `toml:"vertical_offset"`
	HUD            bool    `toml:"hud"`
}

// Audio controls optional sound cues
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Log controls the debug log file
type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the tuned configuration
func Default() Config {
	return Config{
		Simulation: Simulation{
			Particles:          parameter.ParticleCount,
			SpawnMaxAttempts:   parameter.SpawnMaxAttempts,
			ConnectionDistance: parameter.ConnectionDistance,
			SynapseChance:      parameter.SynapseChance,
			MaxSynapses:        parameter.MaxSynapses,
			DisassembledTicks:  parameter.DisassembledTicks,
			AssemblingTicks:    parameter.AssemblingTicks,
			AssembledTicks:     parameter.AssembledTicks,
		},
		Physics: Physics{
			RepulsionRadius: parameter.RepulsionRadius,
			RepulsionForce:  parameter.RepulsionForce,
			SeekRate:        parameter.SeekRate,
			AssembleRate:    parameter.AssembleRate,
			LifeDecay:       parameter.LifeDecay,
			BreathAmplitude: parameter.BreathAmplitude,
			BreathPeriod:    parameter.BreathPeriodTicks,
		},
		Display: Display{
			Theme:          "dark",
			FPS:            parameter.FramesPerSecond,
			Extent:         parameter.ReferenceExtent,
			VerticalOffset: parameter.VerticalOffset,
			HUD:            false,
		},
		Audio: Audio{
			Enabled: false,
			Volume:  parameter.AudioDefaultVolume,
		},
		Log: Log{
			Debug: false,
			Dir:   "logs",
		},
	}
}

// Load decodes a TOML file over the defaults, unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Wrapf(ErrInvalid, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks ranges, the first failure is returned
func (c Config) Validate() error {
	s, p, d := c.Simulation, c.Physics, c.Display
	checks := []struct {
		ok  bool
		msg string
	}{
		{s.Particles > 0 && s.Particles <= parameter.MaxParticleCount, fmt.Sprintf("simulation.particles must be in 1..%d", parameter.MaxParticleCount)},
		{s.SpawnMaxAttempts > 0, "simulation.spawn_max_attempts must be positive"},
		{s.ConnectionDistance > 0, "simulation.connection_distance must be positive"},
		{s.SynapseChance >= 0 && s.SynapseChance <= 1, "simulation.synapse_chance must be in [0,1]"},
		{s.MaxSynapses >= 0, "simulation.max_synapses must not be negative"},
		{s.DisassembledTicks > 0 && s.AssemblingTicks > 0 && s.AssembledTicks > 0, "simulation phase ticks must be positive"},
		{p.RepulsionRadius >= 0 && p.RepulsionForce >= 0, "physics.repulsion_* must not be negative"},
		{p.SeekRate > 0 && p.SeekRate <= 1, "physics.seek_rate must be in (0,1]"},
		{p.AssembleRate >= 0 && p.AssembleRate <= 1, "physics.assemble_rate must be in [0,1]"},
		{p.LifeDecay > 0 && p.LifeDecay <= 1, "physics.life_decay must be in (0,1]"},
		{p.BreathAmplitude >= 0, "physics.breath_amplitude must not be negative"},
		{p.BreathPeriod > 0, "physics.breath_period_ticks must be positive"},
		{d.Theme == "dark" || d.Theme == "light", "display.theme must be dark or light"},
		{d.FPS >= parameter.MinFPS && d.FPS <= parameter.MaxFPS, fmt.Sprintf("display.fps must be in %d..%d", parameter.MinFPS, parameter.MaxFPS)},
		{d.Extent > 0, "display.extent must be positive"},
		{d.VerticalOffset > -0.5 && d.VerticalOffset < 0.5, "display.vertical_offset must be in (-0.5,0.5)"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0,1]"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return errors.Wrap(ErrInvalid, chk.msg)
		}
	}
	return nil
}

// Profile converts physics settings to the dynamics profile
func (p Physics) Profile() physics.Profile {
	return physics.Profile{
		RepulsionRadius: p.RepulsionRadius,
		RepulsionForce:  p.RepulsionForce,
		SeekRate:        p.SeekRate,
		AssembleRate:    p.AssembleRate,
		LifeDecay:       p.LifeDecay,
	}
}

// Flags holds command-line overrides, unset flags leave file values intact
type Flags struct {
	ConfigPath string
	theme      string
	particles  int
	fps        int
	seed       uint64
	sound      bool
	debug      bool
	hud        bool
	set        map[string]bool
}

// RegisterFlags binds override flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to TOML config file")
	fs.StringVar(&f.theme, "theme", "dark", "Color theme: dark, light")
	fs.IntVar(&f.particles, "particles", parameter.ParticleCount, "Particles per assembly")
	fs.IntVar(&f.fps, "fps", parameter.FramesPerSecond, "Frames per second")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed (0 = time based)")
	fs.BoolVar(&f.sound, "sound", false, "Enable audio cues")
	fs.BoolVar(&f.debug, "debug", false, "Write debug log to logs/")
	fs.BoolVar(&f.hud, "hud", false, "Show status line on start")
	return f
}

// Resolve loads the config file and applies explicitly set flags on top
func (f *Flags) Resolve(fs *flag.FlagSet) (Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if f.set["theme"] {
		cfg.Display.Theme = strings.ToLower(f.theme)
	}
	if f.set["particles"] {
		cfg.Simulation.Particles = f.particles
	}
	if f.set["fps"] {
		cfg.Display.FPS = f.fps
	}
	if f.set["seed"] {
		cfg.Simulation.Seed = f.seed
	}
	if f.set["sound"] {
		cfg.Audio.Enabled = f.sound
	}
	if f.set["debug"] {
		cfg.Log.Debug = f.debug
	}
	if f.set["hud"] {
		cfg.Display.HUD = f.hud
	}
	if v := os.Getenv("BRAINWAVE_THEME"); v != "" && !f.set["theme"] {
		cfg.Display.Theme = strings.ToLower(v)
	}

	return cfg, cfg.Validate()
}
