package render

import (
	"github.com/vovakirdan/flappy-gym/internal/config"
	"github.com/vovakirdan/flappy-gym/internal/entity"
)

// Default palette, loosely matching the classic sprite colors.
var (
	SkyColor    = Color{R: 115, G: 197, B: 220}
	PipeColor   = Color{R: 90, G: 190, B: 70}
	PipeLip     = Color{R: 70, G: 160, B: 55}
	GroundColor = Color{R: 222, G: 184, B: 135}
	GroundSeam  = Color{R: 200, G: 160, B: 110}
	BirdColor   = Color{R: 250, G: 200, B: 60}
)

// Height of the darker lip band drawn at a pipe segment's gap-facing
// edge and of the seam strip at the top of a ground tile.
const (
	pipeLipHeight    = 24
	groundSeamHeight = 8
)

// Renderer draws entities as flat-color sprites into a Frame.
type Renderer struct {
	cfg config.Config
}

// New creates a renderer for the given layout.
func New(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// DrawBackground paints the backdrop over the whole frame.
func (r *Renderer) DrawBackground(f *Frame, bg *entity.Background) {
	f.Fill(SkyColor)
}

// DrawPipe paints both segments of a pipe with a darker lip at each
// gap-facing edge.
func (r *Renderer) DrawPipe(f *Frame, p *entity.Pipe) {
	w := r.cfg.Pipe.Width
	segH := r.cfg.Pipe.SegmentHeight

	f.FillRect(p.X, p.Top, w, segH, PipeColor)
	f.FillRect(p.X, p.Height-pipeLipHeight, w, pipeLipHeight, PipeLip)

	f.FillRect(p.X, p.Bottom, w, segH, PipeColor)
	f.FillRect(p.X, p.Bottom, w, pipeLipHeight, PipeLip)
}

// DrawBase paints both ground tiles from their row down to the bottom
// of the frame, with a seam strip marking each tile's top edge.
func (r *Renderer) DrawBase(f *Frame, b *entity.Base) {
	h := float64(f.Height()) - b.Y

	f.FillRect(b.X1, b.Y, b.Width(), h, GroundColor)
	f.FillRect(b.X2, b.Y, b.Width(), h, GroundColor)
	f.FillRect(b.X1, b.Y, b.Width(), groundSeamHeight, GroundSeam)
	f.FillRect(b.X2, b.Y, b.Width(), groundSeamHeight, GroundSeam)
}

// DrawBird paints the bird's hitbox.
func (r *Renderer) DrawBird(f *Frame, b *entity.Bird) {
	rect := b.Rect()
	f.FillRect(rect.X, rect.Y, rect.W, rect.H, BirdColor)
}
