package entity

// Background is the static backdrop. It keeps no per-tick state; it
// exists so the renderer and the info snapshot have a concrete entity
// to reference.
type Background struct{}

// NewBackground creates the backdrop.
func NewBackground() *Background {
	return &Background{}
}

// Anchor returns the backdrop's upper-left corner.
func (bg *Background) Anchor() (x, y float64) {
	return 0, 0
}
