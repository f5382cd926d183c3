// Package entity implements the moving parts of the simulation: the
// bird, the pipes, the scrolling ground and the static background.
// Each entity owns its kinematic state and per-tick update rule; the
// episode controller decides when updates happen.
package entity

import (
	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/geom"
)

// Bird is the agent-controlled entity. Its x position is constant for
// the whole episode; only y and the vertical velocity change.
type Bird struct {
	X   float64
	Y   float64
	Vel float64

	tick int // Ticks since the last jump, drives the easing curve

	cfg config.BirdConfig
}

// NewBird creates a bird at its spawn position with zero velocity.
func NewBird(cfg config.BirdConfig) *Bird {
	return &Bird{
		X:   cfg.StartX,
		Y:   cfg.StartY,
		cfg: cfg,
	}
}

// Jump gives the bird its upward impulse and restarts the easing curve.
func (b *Bird) Jump() {
	b.Vel = b.cfg.JumpImpulse
	b.tick = 0
}

// Move advances the bird by one tick of gravity. Displacement follows
// d = v*t + 1.5*t^2 over the per-jump tick counter, clamped so the
// fall speed never exceeds MaxDisplacement per tick; while still
// rising, RiseBoost is added for a snappier arc.
func (b *Bird) Move() {
	b.tick++
	t := float64(b.tick)

	d := b.Vel*t + 1.5*t*t
	if d >= b.cfg.MaxDisplacement {
		d = b.cfg.MaxDisplacement
	}
	if d < 0 {
		d -= b.cfg.RiseBoost
	}

	b.Y += d
}

// Rect returns the bird's bounding box for collision tests.
func (b *Bird) Rect() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.cfg.Width, b.cfg.Height)
}

// Height returns the bird's hitbox height.
func (b *Bird) Height() float64 {
	return b.cfg.Height
}

// Grounded reports whether the bird's lower edge has reached the
// ground threshold.
func (b *Bird) Grounded() bool {
	return b.Y+b.cfg.Height >= b.cfg.GroundY
}
