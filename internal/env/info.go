package env

// Info is a read-only snapshot of the episode state, returned alongside
// every observation. It exposes the exact entity coordinates that the
// pixel observation only shows implicitly, which is what makes the
// environment debuggable and lets scripted policies act on state
// instead of pixels.
type Info struct {
	Background BackgroundInfo `json:"background"`
	Pipes      []PipeInfo     `json:"pipes"`
	Base       BaseInfo       `json:"base"`
	Bird       BirdInfo       `json:"bird"`
	LastAction Action         `json:"last_action"`
	Score      int            `json:"score"`
}

// BackgroundInfo locates the static backdrop.
type BackgroundInfo struct {
	UpperLeft [2]float64 `json:"upper_left"`
}

// PipeInfo describes one pipe's geometry.
type PipeInfo struct {
	X      float64 `json:"x"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// BaseInfo describes the two ground tiles.
type BaseInfo struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	Y  float64 `json:"y"`
}

// BirdInfo describes the bird's position.
type BirdInfo struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// snapshot assembles the info view of the current episode state.
func (e *Env) snapshot() Info {
	bgX, bgY := e.background.Anchor()

	pipes := make([]PipeInfo, len(e.pipes))
	for i, p := range e.pipes {
		pipes[i] = PipeInfo{
			X:      p.X,
			Height: p.Height,
			Top:    p.Top,
			Bottom: p.Bottom,
		}
	}

	return Info{
		Background: BackgroundInfo{UpperLeft: [2]float64{bgX, bgY}},
		Pipes:      pipes,
		Base: BaseInfo{
			X1: e.base.X1,
			X2: e.base.X2,
			Y:  e.base.Y,
		},
		Bird: BirdInfo{
			X: e.bird.X,
			Y: e.bird.Y,
		},
		LastAction: e.lastAction,
		Score:      e.score,
	}
}
