package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-gym/internal/render"
)

// FrameView downsamples an RGB frame into a half-block string for
// terminal display. Each character cell shows two vertically stacked
// pixels: the upper-half-block rune takes the top pixel as foreground
// and the bottom pixel as background. Adjacent cells with identical
// colors are grouped to keep the ANSI output small.
func FrameView(f *render.Frame, cols, rows int) string {
	if f == nil || cols < 1 || rows < 1 {
		return ""
	}

	sx := float64(f.Width()) / float64(cols)
	sy := float64(f.Height()) / float64(rows*2)

	var sb strings.Builder
	sb.Grow(cols*rows*8 + rows)

	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			sb.WriteRune('\n')
		}

		cx := 0
		for cx < cols {
			top := f.At(int(float64(cx)*sx), int(float64(cy*2)*sy))
			bot := f.At(int(float64(cx)*sx), int(float64(cy*2+1)*sy))

			// Collect the run of cells with the same color pair.
			runLen := 1
			for cx+runLen < cols {
				nt := f.At(int(float64(cx+runLen)*sx), int(float64(cy*2)*sy))
				nb := f.At(int(float64(cx+runLen)*sx), int(float64(cy*2+1)*sy))
				if nt != top || nb != bot {
					break
				}
				runLen++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bot)))
			sb.WriteString(style.Render(strings.Repeat("▀", runLen)))
			cx += runLen
		}
	}

	return sb.String()
}

// hexColor formats a color for lipgloss.
func hexColor(c render.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
