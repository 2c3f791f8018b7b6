package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/brainwave/parameter"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config must validate: %v", err)
	}
}

func TestDefault_MatchesParameters(t *testing.T) {
	cfg := Default()
	if cfg.Simulation.DisassembledTicks != 120 || cfg.Simulation.AssemblingTicks != 240 || cfg.Simulation.AssembledTicks != 400 {
		t.Errorf("Unexpected phase ticks: %+v", cfg.Simulation)
	}
	if cfg.Simulation.MaxSynapses != parameter.MaxSynapses {
		t.Errorf("Expected max synapses %d, got %d", parameter.MaxSynapses, cfg.Simulation.MaxSynapses)
	}
	if cfg.Physics.Profile().SeekRate != parameter.SeekRate {
		t.Error("Profile must carry the seek rate")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero particles", func(c *Config) { c.Simulation.Particles = 0 }},
		{"too many particles", func(c *Config) { c.Simulation.Particles = parameter.MaxParticleCount + 1 }},
		{"chance above one", func(c *Config) { c.Simulation.SynapseChance = 1.5 }},
		{"zero seek", func(c *Config) { c.Physics.SeekRate = 0 }},
		{"zero decay", func(c *Config) { c.Physics.LifeDecay = 0 }},
		{"bad theme", func(c *Config) { c.Display.Theme = "sepia" }},
		{"fps too low", func(c *Config) { c.Display.FPS = 1 }},
		{"negative extent", func(c *Config) { c.Display.Extent = -1 }},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); errors.Cause(err) != ErrInvalid {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brainwave.toml")
	content := `
[simulation]
particles = 300
seed = 99

[display]
theme = "light"
hud = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Simulation.Particles != 300 || cfg.Simulation.Seed != 99 {
		t.Errorf("Simulation not decoded: %+v", cfg.Simulation)
	}
	if cfg.Display.Theme != "light" || !cfg.Display.HUD {
		t.Errorf("Display not decoded: %+v", cfg.Display)
	}
	// Untouched sections keep defaults
	if cfg.Physics.SeekRate != parameter.SeekRate {
		t.Errorf("Expected default seek rate, got %v", cfg.Physics.SeekRate)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[display]\nglitter = true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); errors.Cause(err) != ErrInvalid {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
	if cfg != Default() {
		t.Error("Expected defaults for empty path")
	}
}

func TestFlags_OverrideOnlySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("[simulation]\nparticles = 250\n[display]\nfps = 30\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-fps", "45", "-theme", "LIGHT"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg, err := f.Resolve(fs)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Simulation.Particles != 250 {
		t.Errorf("Expected file particles 250 to survive, got %d", cfg.Simulation.Particles)
	}
	if cfg.Display.FPS != 45 {
		t.Errorf("Expected flag fps 45, got %d", cfg.Display.FPS)
	}
	if cfg.Display.Theme != "light" {
		t.Errorf("Expected lowercased theme, got %q", cfg.Display.Theme)
	}
}
