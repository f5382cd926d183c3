// Package config provides YAML-based configuration loading for the
// environment. All fixed-layout constants (screen size, physics, reward
// shaping) live here so the simulation carries no magic numbers.
package config

// Config aggregates every tunable of the environment. It is built once
// and injected at construction; the environment never mutates it.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipe   PipeConfig   `yaml:"pipe"`
	Base   BaseConfig   `yaml:"base"`
	Reward RewardConfig `yaml:"reward"`
}

// ScreenConfig defines the observation surface and frame pacing.
type ScreenConfig struct {
	Width  int `yaml:"width"`  // Observation width in pixels
	Height int `yaml:"height"` // Observation height in pixels
	FPS    int `yaml:"fps"`    // Frame cap for interactive display
}

// BirdConfig defines the bird's spawn point, hitbox and physics.
type BirdConfig struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Velocity set on jump (negative = up)
	MaxDisplacement float64 `yaml:"max_displacement"` // Per-tick fall clamp
	RiseBoost       float64 `yaml:"rise_boost"`       // Extra upward displacement while rising
	GroundY         float64 `yaml:"ground_y"`         // Bird bottom at or past this y is a crash
}

// PipeConfig defines pipe geometry, spawning and scroll speed.
type PipeConfig struct {
	SpawnX        float64 `yaml:"spawn_x"`
	Width         float64 `yaml:"width"`
	SegmentHeight float64 `yaml:"segment_height"` // Height of each pipe segment sprite
	Gap           float64 `yaml:"gap"`            // Vertical opening between segments
	Speed         float64 `yaml:"speed"`          // Leftward scroll per tick
	MinHeight     int     `yaml:"min_height"`     // Lower bound for gap placement
	MaxHeight     int     `yaml:"max_height"`     // Upper bound for gap placement (exclusive)
}

// BaseConfig defines the scrolling ground.
type BaseConfig struct {
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"` // Width of one ground tile
	Speed float64 `yaml:"speed"`
}

// RewardConfig defines the shaping signal.
type RewardConfig struct {
	PassBonus     float64 `yaml:"pass_bonus"`     // Reward for clearing a pipe
	CrashPenalty  float64 `yaml:"crash_penalty"`  // Reward on termination
	DistanceScale float64 `yaml:"distance_scale"` // Normalizer for the closeness signal
	GapOffsetX    float64 `yaml:"gap_offset_x"`   // Horizontal offset approximating the gap's effective x
}

// Default returns the built-in configuration. The values reproduce the
// reference layout: a 576x800 surface, bird spawn at (222, 376), pipes
// entering at x=700 with a 200px gap, and ground contact at y=730.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  576,
			Height: 800,
			FPS:    60,
		},
		Bird: BirdConfig{
			StartX:          222,
			StartY:          376,
			Width:           68,
			Height:          48,
			JumpImpulse:     -10.5,
			MaxDisplacement: 16,
			RiseBoost:       2,
			GroundY:         730,
		},
		Pipe: PipeConfig{
			SpawnX:        700,
			Width:         104,
			SegmentHeight: 640,
			Gap:           200,
			Speed:         5,
			MinHeight:     50,
			MaxHeight:     450,
		},
		Base: BaseConfig{
			Y:     700,
			Width: 672,
			Speed: 5,
		},
		Reward: RewardConfig{
			PassBonus:     1,
			CrashPenalty:  -1,
			DistanceScale: 410,
			GapOffsetX:    150,
		},
	}
}
