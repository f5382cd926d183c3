package entity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-gym/internal/config"
)

func TestBirdJumpThenRise(t *testing.T) {
	cfg := config.Default().Bird
	b := NewBird(cfg)
	startY := b.Y

	b.Jump()
	b.Move()

	if b.Y >= startY {
		t.Errorf("bird should rise after jump, was %v, now %v", startY, b.Y)
	}
}

func TestBirdFallSpeedClamped(t *testing.T) {
	cfg := config.Default().Bird
	b := NewBird(cfg)

	// Let gravity build up well past the clamp point.
	prev := b.Y
	for i := 0; i < 30; i++ {
		prev = b.Y
		b.Move()
	}

	if d := b.Y - prev; d != cfg.MaxDisplacement {
		t.Errorf("terminal fall displacement = %v, want %v", d, cfg.MaxDisplacement)
	}
}

func TestBirdXConstant(t *testing.T) {
	cfg := config.Default().Bird
	b := NewBird(cfg)
	x := b.X

	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			b.Jump()
		}
		b.Move()
	}

	if b.X != x {
		t.Errorf("bird x changed from %v to %v during episode", x, b.X)
	}
}

func TestBirdQuadraticArc(t *testing.T) {
	cfg := config.Default().Bird
	b := NewBird(cfg)
	b.Jump()

	// First tick after a jump: d = -10.5*1 + 1.5*1 = -9, minus the
	// rise boost of 2 -> the bird moves up by 11.
	startY := b.Y
	b.Move()
	if got := b.Y - startY; got != -11 {
		t.Errorf("first displacement after jump = %v, want -11", got)
	}
}

func TestPipeGapPlacement(t *testing.T) {
	cfg := config.Default().Pipe
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		p := NewPipe(cfg.SpawnX, rng, cfg)

		if p.Height < float64(cfg.MinHeight) || p.Height >= float64(cfg.MaxHeight) {
			t.Fatalf("gap placement %v outside [%d, %d)", p.Height, cfg.MinHeight, cfg.MaxHeight)
		}
		if p.Top != p.Height-cfg.SegmentHeight {
			t.Fatalf("top = %v, want %v", p.Top, p.Height-cfg.SegmentHeight)
		}
		if p.Bottom != p.Height+cfg.Gap {
			t.Fatalf("bottom = %v, want %v", p.Bottom, p.Height+cfg.Gap)
		}
		if got, want := p.GapCenterY(), p.Height+cfg.Gap/2; got != want {
			t.Fatalf("gap center = %v, want %v", got, want)
		}
	}
}

func TestPipeMove(t *testing.T) {
	cfg := config.Default().Pipe
	rng := rand.New(rand.NewSource(1))
	p := NewPipe(cfg.SpawnX, rng, cfg)

	p.Move()
	p.Move()

	if p.X != cfg.SpawnX-2*cfg.Speed {
		t.Errorf("pipe x = %v, want %v", p.X, cfg.SpawnX-2*cfg.Speed)
	}
}

func TestPipeCollide(t *testing.T) {
	pipeCfg := config.Default().Pipe
	birdCfg := config.Default().Bird
	rng := rand.New(rand.NewSource(1))

	p := NewPipe(pipeCfg.SpawnX, rng, pipeCfg)
	// Pin the gap for a deterministic scenario.
	p.Height = 300
	p.Top = p.Height - pipeCfg.SegmentHeight
	p.Bottom = p.Height + pipeCfg.Gap

	b := NewBird(birdCfg)

	// Far from the pipe: no collision regardless of altitude.
	if p.Collide(b) {
		t.Error("bird far from pipe should not collide")
	}

	// Overlap the pipe horizontally, inside the gap: still safe.
	p.X = b.X
	b.Y = 320
	if p.Collide(b) {
		t.Error("bird inside gap should not collide")
	}

	// Up into the top segment.
	b.Y = 200
	if !p.Collide(b) {
		t.Error("bird in top segment should collide")
	}

	// Down into the bottom segment.
	b.Y = 520
	if !p.Collide(b) {
		t.Error("bird in bottom segment should collide")
	}
}

func TestBaseWrapsSeamlessly(t *testing.T) {
	cfg := config.Default().Base
	b := NewBase(cfg)

	// Scroll long enough for several wraps.
	for i := 0; i < 1000; i++ {
		b.Move()

		// Neither tile may ever be fully off-screen after an update.
		if b.X1+cfg.Width < 0 || b.X2+cfg.Width < 0 {
			t.Fatalf("tile fully off-screen after move %d: x1=%v x2=%v", i, b.X1, b.X2)
		}
		// Tiles stay exactly one width apart in either order.
		gap := b.X2 - b.X1
		if gap != cfg.Width && gap != -cfg.Width {
			t.Fatalf("tiles lost seamless spacing after move %d: x1=%v x2=%v", i, b.X1, b.X2)
		}
	}

	if b.Y != cfg.Y {
		t.Errorf("base row moved from %v to %v", cfg.Y, b.Y)
	}
}
