// Package term implements the environment's human render mode on a
// terminal: frames are downsampled to half-block cells and presented
// synchronously through tcell, paced to the configured frame rate.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-gym/internal/render"
)

// Display presents frames on a tcell screen. Present blocks until the
// frame is drawn and the frame budget has elapsed, which gives the
// environment its real-time pacing in human mode.
type Display struct {
	screen    tcell.Screen
	fps       int
	lastFrame time.Time
	closed    bool
}

// Open initializes the terminal screen. Fails with a wrapped error if
// no usable terminal is available.
func Open(fps int) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	screen.Clear()

	return &Display{screen: screen, fps: fps}, nil
}

// Present draws the frame and sleeps out the remainder of the frame
// budget. Each character cell shows two vertically stacked pixels via
// the upper-half-block rune.
func (d *Display) Present(f *render.Frame) error {
	if d.closed {
		return fmt.Errorf("term: display is closed")
	}

	cols, rows := d.screen.Size()
	if cols < 1 || rows < 1 {
		return nil
	}

	// Nearest-neighbor downsample: one cell covers one source column
	// step and two row steps.
	sx := float64(f.Width()) / float64(cols)
	sy := float64(f.Height()) / float64(rows*2)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := f.At(int(float64(cx)*sx), int(float64(cy*2)*sy))
			bot := f.At(int(float64(cx)*sx), int(float64(cy*2+1)*sy))

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			d.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	d.screen.Show()

	// Frame cap: wait out the rest of the tick budget.
	if d.fps > 0 {
		budget := time.Second / time.Duration(d.fps)
		if !d.lastFrame.IsZero() {
			if wait := budget - time.Since(d.lastFrame); wait > 0 {
				time.Sleep(wait)
			}
		}
		d.lastFrame = time.Now()
	}

	return nil
}

// Close releases the terminal. Idempotent.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.screen.Fini()
	return nil
}
