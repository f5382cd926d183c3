// Package render implements the drawing collaborator of the
// environment: a software renderer that paints entities as flat-color
// sprites into an RGB pixel frame. The frame is the observation the
// agent sees; no window or display is involved at this layer.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Frame is a fixed-size RGB pixel surface. Pixels are stored row-major
// in (height, width, channel) order, one byte per channel, which is
// exactly the observation layout the environment exposes.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame creates a frame of the given dimensions with all pixels black.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pix returns the underlying pixel buffer in (height, width, channel)
// order. The slice is live; it changes when the frame is redrawn.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds coordinates return black.
func (f *Frame) At(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Color{}
	}
	i := (y*f.width + x) * 3
	return Color{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}
}

// Fill paints every pixel with the given color.
func (f *Frame) Fill(c Color) {
	for i := 0; i < len(f.pix); i += 3 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
	}
}

// FillRect paints an axis-aligned rectangle, clipped to the frame.
// Coordinates are truncated to whole pixels.
func (f *Frame) FillRect(x, y, w, h float64, c Color) {
	x0, y0 := int(x), int(y)
	x1, y1 := int(x+w), int(y+h)

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > f.width {
		x1 = f.width
	}
	if y1 > f.height {
		y1 = f.height
	}

	for py := y0; py < y1; py++ {
		row := py * f.width * 3
		for px := x0; px < x1; px++ {
			i := row + px*3
			f.pix[i] = c.R
			f.pix[i+1] = c.G
			f.pix[i+2] = c.B
		}
	}
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	out := NewFrame(f.width, f.height)
	copy(out.pix, f.pix)
	return out
}

// EncodePNG writes the frame as a PNG image.
func (f *Frame) EncodePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			src := (y*f.width + x) * 3
			dst := img.PixOffset(x, y)
			img.Pix[dst] = f.pix[src]
			img.Pix[dst+1] = f.pix[src+1]
			img.Pix[dst+2] = f.pix[src+2]
			img.Pix[dst+3] = 0xff
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: cannot encode frame: %w", err)
	}
	return nil
}
