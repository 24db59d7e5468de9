// buffer.go — ARGB pixel buffer exchanged with the decode/encode boundary.
package steg

import (
	"image"
	"image/color"
)

// Pixel is a single non-premultiplied ARGB sample, each channel in [0,255].
type Pixel struct {
	A, R, G, B uint8
}

// Buffer is a width×height grid of ARGB pixels. Each transform allocates a
// fresh Buffer for its output and never mutates its input.
type Buffer struct {
	width, height int
	pix           []Pixel
}

// NewBuffer creates a zeroed buffer. Negative dimensions are clamped to 0.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at (x, y). Coordinates outside the buffer return the
// zero Pixel.
func (b *Buffer) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Pixel{}
	}
	return b.pix[y*b.width+x]
}

// Set stores p at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = p
}

// FromImage converts a decoded image into a Buffer. Channel values are taken
// non-premultiplied so the low-order bits survive the conversion intact.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.pix[y*buf.width+x] = Pixel{A: c.A, R: c.R, G: c.G, B: c.B}
		}
	}
	return buf
}

// Image converts the buffer into an image for an external encoder. The result
// shares no memory with the buffer.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.pix[y*b.width+x]
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}
