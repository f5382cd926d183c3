package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	// With no custom path and no config files around, Load falls back
	// to the embedded YAML, which must match the hardcoded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("embedded defaults diverge from Default():\n got  %+v\n want %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
screen:
  width: 288
  height: 400
  fps: 30
bird:
  start_x: 100
  start_y: 200
  width: 34
  height: 24
  jump_impulse: -8
  max_displacement: 12
  rise_boost: 1
  ground_y: 360
pipe:
  spawn_x: 350
  width: 52
  segment_height: 320
  gap: 100
  speed: 3
  min_height: 25
  max_height: 225
base:
  y: 350
  width: 336
  speed: 3
reward:
  pass_bonus: 1
  crash_penalty: -1
  distance_scale: 205
  gap_offset_x: 75
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Screen.Width != 288 || cfg.Screen.Height != 400 {
		t.Errorf("screen = %dx%d, want 288x400", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Bird.JumpImpulse != -8 {
		t.Errorf("jump_impulse = %v, want -8", cfg.Bird.JumpImpulse)
	}
	if cfg.Pipe.SpawnX != 350 {
		t.Errorf("spawn_x = %v, want 350", cfg.Pipe.SpawnX)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }},
		{"zero fps", func(c *Config) { c.Screen.FPS = 0 }},
		{"empty pipe range", func(c *Config) { c.Pipe.MinHeight = 450; c.Pipe.MaxHeight = 450 }},
		{"zero pipe speed", func(c *Config) { c.Pipe.Speed = 0 }},
		{"zero distance scale", func(c *Config) { c.Reward.DistanceScale = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.validate(); err == nil {
				t.Error("validate() should reject this config")
			}
		})
	}
}
