package entity

import "github.com/vovakirdan/flappy-gym/internal/config"

// Base is the scrolling ground: two tiles side by side that move left
// together. When a tile has fully left the screen it wraps behind the
// other, giving the illusion of an infinite strip.
type Base struct {
	X1 float64
	X2 float64
	Y  float64

	cfg config.BaseConfig
}

// NewBase creates the ground at its configured row with the two tiles
// laid out back to back.
func NewBase(cfg config.BaseConfig) *Base {
	return &Base{
		X1:  0,
		X2:  cfg.Width,
		Y:   cfg.Y,
		cfg: cfg,
	}
}

// Move scrolls both tiles left and wraps whichever has gone fully
// off-screen to the right of the other.
func (b *Base) Move() {
	b.X1 -= b.cfg.Speed
	b.X2 -= b.cfg.Speed

	if b.X1+b.cfg.Width < 0 {
		b.X1 = b.X2 + b.cfg.Width
	}
	if b.X2+b.cfg.Width < 0 {
		b.X2 = b.X1 + b.cfg.Width
	}
}

// Width returns the width of one ground tile.
func (b *Base) Width() float64 {
	return b.cfg.Width
}
