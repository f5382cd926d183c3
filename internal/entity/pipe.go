package entity

import (
	"math/rand"

	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/geom"
)

// Pipe is a pair of vertical segments with a fixed-height gap between
// them. Height is the top edge of the gap (and of the bottom segment's
// opening); Top is where the upper segment starts so that its sprite
// ends exactly at Height; Bottom is the top edge of the lower segment.
type Pipe struct {
	X      float64
	Height float64
	Top    float64
	Bottom float64
	Passed bool

	cfg config.PipeConfig
}

// NewPipe creates a pipe at the given x with its gap placed uniformly
// at random within the configured valid range.
func NewPipe(x float64, rng *rand.Rand, cfg config.PipeConfig) *Pipe {
	h := float64(cfg.MinHeight + rng.Intn(cfg.MaxHeight-cfg.MinHeight))
	return &Pipe{
		X:      x,
		Height: h,
		Top:    h - cfg.SegmentHeight,
		Bottom: h + cfg.Gap,
		cfg:    cfg,
	}
}

// Move scrolls the pipe left by its configured speed.
func (p *Pipe) Move() {
	p.X -= p.cfg.Speed
}

// TopRect returns the bounding box of the upper segment.
func (p *Pipe) TopRect() geom.Rect {
	return geom.NewRect(p.X, p.Top, p.cfg.Width, p.cfg.SegmentHeight)
}

// BottomRect returns the bounding box of the lower segment.
func (p *Pipe) BottomRect() geom.Rect {
	return geom.NewRect(p.X, p.Bottom, p.cfg.Width, p.cfg.SegmentHeight)
}

// Collide reports whether the bird's bounding box overlaps either
// segment. Bounding-box overlap is the collision contract; there is no
// pixel-mask refinement at this layer.
func (p *Pipe) Collide(b *Bird) bool {
	r := b.Rect()
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}

// GapCenterY returns the vertical midpoint of the passable opening.
func (p *Pipe) GapCenterY() float64 {
	return (p.Bottom + p.Height) / 2
}

// RightEdge returns the x-coordinate of the pipe's right edge.
func (p *Pipe) RightEdge() float64 {
	return p.X + p.cfg.Width
}

// Width returns the pipe's sprite width.
func (p *Pipe) Width() float64 {
	return p.cfg.Width
}
